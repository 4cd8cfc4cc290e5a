package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	. "maragu.dev/gomponents"

	"github.com/pricenotifier/web/client"
	"github.com/pricenotifier/web/html"
	"github.com/pricenotifier/web/model"
	"github.com/pricenotifier/web/notify"
	"github.com/pricenotifier/web/session"
)

const contextSessionKey = contextKey("session")

const (
	sessionClientIDKey   = "clientID"
	sessionReturnPathKey = "returnPath"
)

type sessionGetter interface {
	GetString(ctx context.Context, key string) string
}

type sessionPutter interface {
	Put(ctx context.Context, key string, val any)
}

type sessionPopper interface {
	PopString(ctx context.Context, key string) string
}

type sessionGetPutter interface {
	sessionGetter
	sessionPutter
}

type authenticator interface {
	Authenticate(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
	Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error)
}

// ClientID is [Middleware] that gives every browser a random ID, kept in the browser session.
// The ID is stored in the request context, where the notification hub picks it up.
func ClientID(sm sessionGetPutter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := sm.GetString(r.Context(), sessionClientIDKey)
			if id == "" {
				id = uuid.NewString()
				sm.Put(r.Context(), sessionClientIDKey, id)
			}

			if span := GetRootSpanFromContext(r.Context()); span != nil {
				span.SetAttributes(attribute.String("app.client_id", id))
			}

			next.ServeHTTP(w, r.WithContext(notify.WithClientID(r.Context(), id)))
		})
	}
}

// Authenticate is [Middleware] that sets up the session state from the token cookie.
// The state is stored in the request context, and can be retrieved using [GetSessionFromContext].
// If there is a token, it's also stored in the context for the backend client.
// Logging out redirects to the login page.
func Authenticate(auth authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := session.NewState(session.NewStateOptions{
				Auth: auth,
				Jar:  session.NewRequestJar(w, r),
				Navigator: session.NavigatorFunc(func(path string) {
					http.Redirect(w, r, path, http.StatusSeeOther)
				}),
			})

			ctx := context.WithValue(r.Context(), contextSessionKey, s)
			if token, ok := s.Token(); ok && token != "" {
				ctx = client.WithToken(ctx, token)
			}

			if span := GetRootSpanFromContext(ctx); span != nil {
				span.SetAttributes(attribute.Bool("app.authenticated", s.IsAuthenticated()))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth is [Middleware] that redirects to the login page if not authenticated.
// For GET requests, the requested path is remembered, so login can redirect back to it.
func RequireAuth(sm sessionPutter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s := GetSessionFromContext(r.Context()); s != nil && s.IsAuthenticated() {
				next.ServeHTTP(w, r)
				return
			}

			if r.Method == http.MethodGet {
				sm.Put(r.Context(), sessionReturnPathKey, r.URL.RequestURI())
			}
			http.Redirect(w, r, session.LoginPath, http.StatusSeeOther)
		})
	}
}

// GetSessionFromContext, which may be nil if the [Authenticate] middleware hasn't run.
func GetSessionFromContext(ctx context.Context) *session.State {
	s := ctx.Value(contextSessionKey)
	if s == nil {
		return nil
	}
	return s.(*session.State)
}

func Login(r *Router, log *slog.Logger, sm sessionPopper) {
	r.Get("/login", func(props html.PageProps) (Node, error) {
		if props.Authenticated {
			http.Redirect(props.W, props.R, "/dashboard", http.StatusSeeOther)
			return nil, nil
		}
		return html.LoginPage(props, "", ""), nil
	})

	r.Post("/login", func(props html.PageProps) (Node, error) {
		s := GetSessionFromContext(props.Ctx)

		req := model.LoginRequest{
			Email:    model.EmailAddress(props.R.PostFormValue("email")),
			Password: props.R.PostFormValue("password"),
		}

		if _, err := s.Login(props.Ctx, req); err != nil {
			log.Info("Error logging in", "error", err)
			return html.LoginPage(props, req.Email.String(), html.LoginFailedMessage), nil
		}

		http.Redirect(props.W, props.R, returnPath(props.Ctx, sm), http.StatusSeeOther)
		return nil, nil
	})
}

func Register(r *Router, log *slog.Logger, sm sessionPopper) {
	r.Get("/register", func(props html.PageProps) (Node, error) {
		if props.Authenticated {
			http.Redirect(props.W, props.R, "/dashboard", http.StatusSeeOther)
			return nil, nil
		}
		return html.RegisterPage(props, model.RegisterRequest{}, ""), nil
	})

	r.Post("/register", func(props html.PageProps) (Node, error) {
		s := GetSessionFromContext(props.Ctx)

		req := model.RegisterRequest{
			FirstName: strings.TrimSpace(props.R.PostFormValue("firstName")),
			LastName:  strings.TrimSpace(props.R.PostFormValue("lastName")),
			Email:     model.EmailAddress(props.R.PostFormValue("email")),
			Password:  props.R.PostFormValue("password"),
		}

		if !req.Email.IsValid() || req.Password == "" {
			return html.RegisterPage(props, req, html.RegisterInvalidFormMessage), nil
		}

		if _, err := s.Register(props.Ctx, req); err != nil {
			log.Info("Error registering", "error", err)
			return html.RegisterPage(props, req, html.RegisterFailedMessage), nil
		}

		http.Redirect(props.W, props.R, returnPath(props.Ctx, sm), http.StatusSeeOther)
		return nil, nil
	})
}

func Logout(r *Router) {
	r.Post("/logout", func(props html.PageProps) (Node, error) {
		if s := GetSessionFromContext(props.Ctx); s != nil {
			s.Logout()
			return nil, nil
		}
		http.Redirect(props.W, props.R, session.LoginPath, http.StatusSeeOther)
		return nil, nil
	})
}

// returnPath remembered by [RequireAuth], or the dashboard.
func returnPath(ctx context.Context, sm sessionPopper) string {
	if p := sm.PopString(ctx, sessionReturnPathKey); isLocalPath(p) {
		return p
	}
	return "/dashboard"
}

// isLocalPath is true for absolute paths on this site, so redirects can't go elsewhere.
func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}
