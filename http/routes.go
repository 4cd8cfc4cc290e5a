package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"maragu.dev/httph"
)

// setupRoutes as well as middleware.
func (s *Server) setupRoutes() {
	r := s.r

	r.Use(middleware.Compress(5))
	r.Use(middleware.RealIP)
	r.Use(OpenTelemetry)
	r.Use(Log(s.log))

	protection := http.NewCrossOriginProtection()
	if err := protection.AddTrustedOrigin(s.baseURL); err != nil {
		panic("error adding trusted origin to CrossOriginProtection middleware (with " + s.baseURL + "): " + err.Error())
	}
	r.Use(protection.Handler)

	NotFound(r)

	Health(r.Mux, s.log, s.db)
	Metrics(r.Mux, s.gatherer)
	Favicon(r.Mux)

	// HTML
	r.Group(func(r *Router) {
		r.Use(httph.NoClickjacking)
		r.Use(s.sm.LoadAndSave, ClientID(s.sm), Authenticate(s.backend))

		Notification(r.Mux, s.hub)

		Login(r, s.log, s.sm)
		Register(r, s.log, s.sm)
		Logout(r)

		r.Group(func(r *Router) {
			r.Use(RequireAuth(s.sm))

			r.Mux.Get("/", func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			})

			Dashboard(r, s.log, s.backend)
			AddProduct(r, s.log, s.backend)
			Product(r, s.log, s.backend)
		})
	})
}
