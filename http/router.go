package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/http"

	"github.com/pricenotifier/web/html"
	"github.com/pricenotifier/web/notify"
)

type Router struct {
	Hub *notify.Hub
	Mux chi.Router
}

func (r *Router) Get(path string, cb func(props html.PageProps) (Node, error)) {
	r.Mux.Get(path, Adapt(func(w http.ResponseWriter, req *http.Request) (Node, error) {
		return cb(r.getProps(w, req))
	}))
}

func (r *Router) Post(path string, cb func(props html.PageProps) (Node, error)) {
	r.Mux.Post(path, Adapt(func(w http.ResponseWriter, req *http.Request) (Node, error) {
		return cb(r.getProps(w, req))
	}))
}

func (r *Router) getProps(w http.ResponseWriter, req *http.Request) html.PageProps {
	props := html.PageProps{
		Ctx: req.Context(),
		R:   req,
		W:   w,
	}

	if s := GetSessionFromContext(req.Context()); s != nil {
		props.Authenticated = s.IsAuthenticated()
		props.Email = s.Email()
	}

	if r.Hub == nil {
		return props
	}
	if surface := r.Hub.FromContext(req.Context()); surface != nil {
		props.Notification = surface
	}

	return props
}

func (r *Router) Group(cb func(r *Router)) {
	r.Mux.Group(func(mux chi.Router) {
		cb(&Router{Hub: r.Hub, Mux: mux})
	})
}

func (r *Router) Route(pattern string, cb func(r *Router)) {
	r.Mux.Route(pattern, func(mux chi.Router) {
		cb(&Router{Hub: r.Hub, Mux: mux})
	})
}

func (r *Router) Use(middlewares ...Middleware) {
	r.Mux.Use(middlewares...)
}

func (r *Router) NotFound(h http.HandlerFunc) {
	r.Mux.NotFound(h)
}
