package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/mileusna/useragent"
)

type Middleware = func(next http.Handler) http.Handler

// contextKey is a custom type to be used for storing keys in a [context.Context].
type contextKey string

// Log requests after they are handled, with the status, duration, and parsed user agent.
func Log(log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			ua := useragent.Parse(r.UserAgent())
			log.Info("Handled request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"browser", ua.Name,
				"os", ua.OS,
				"bot", ua.Bot,
			)
		})
	}
}
