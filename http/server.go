package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pricenotifier/web/model"
	"github.com/pricenotifier/web/notify"
)

// backend is the price tracking backend, as used by the handlers.
type backend interface {
	Authenticate(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error)
	Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error)
	GetProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.ProductDetails, error)
	AddProductByName(ctx context.Context, name string) (model.Product, error)
	AddProductByURL(ctx context.Context, u string) (model.Product, error)
	DeleteProduct(ctx context.Context, id model.ProductID) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	backend  backend
	baseURL  string
	db       pinger
	gatherer prometheus.Gatherer
	hub      *notify.Hub
	log      *slog.Logger
	mux      *chi.Mux
	port     int
	r        *Router
	server   *http.Server
	sm       *scs.SessionManager
}

type NewServerOptions struct {
	Backend backend
	BaseURL string
	// DB holding the browser sessions, checked by the health endpoint. Optional.
	DB       pinger
	Gatherer prometheus.Gatherer
	Hub      *notify.Hub
	Log      *slog.Logger
	Port     int
	// SecureCookie for the browser session cookie.
	SecureCookie bool
	// SessionStore for browser sessions. If nil, sessions are kept in memory.
	SessionStore scs.Store
}

func NewServer(opts NewServerOptions) *Server {
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}

	if opts.Port == 0 {
		opts.Port = 8080
	}

	if opts.BaseURL == "" {
		opts.BaseURL = fmt.Sprintf("http://localhost:%d", opts.Port)
	}

	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	if opts.Hub == nil {
		opts.Hub = notify.NewHub(notify.NewHubOptions{Log: opts.Log})
	}

	mux := chi.NewRouter()

	sm := scs.New()
	if opts.SessionStore != nil {
		sm.Store = opts.SessionStore
	}
	sm.Lifetime = 365 * 24 * time.Hour
	sm.Cookie.Name = "session"
	sm.Cookie.Secure = opts.SecureCookie
	// Lax so that the return path survives the redirect back from login
	sm.Cookie.SameSite = http.SameSiteLaxMode

	return &Server{
		backend:  opts.Backend,
		baseURL:  opts.BaseURL,
		db:       opts.DB,
		gatherer: opts.Gatherer,
		hub:      opts.Hub,
		log:      opts.Log,
		mux:      mux,
		port:     opts.Port,
		r:        &Router{Mux: mux, Hub: opts.Hub},
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", opts.Port),
			Handler:      mux,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		sm: sm,
	}
}

// Start the server by setting up routes and listening on the supplied address.
func (s *Server) Start() error {
	s.log.Info("Starting server", "address", fmt.Sprintf("http://localhost:%d", s.port))

	s.setupRoutes()

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop the Server gracefully, waiting for existing HTTP connections to finish.
func (s *Server) Stop() error {
	s.log.Info("Stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}

	s.log.Info("Stopped server")

	return nil
}

// Handler with all routes set up, for tests.
func (s *Server) Handler() http.Handler {
	s.setupRoutes()
	return s.mux
}
