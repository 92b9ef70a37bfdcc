// Package api - Thin, deterministic API layer.
// The API is only responsible for input ingestion, engine invocation,
// and output serialization. It never performs pricing logic.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"creator-rates/internal/config"
	"creator-rates/internal/observability"
)

// Server is the API server
type Server struct {
	router  chi.Router
	version string
}

// NewServer creates a new API server
func NewServer(version string) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		version: version,
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(observability.Middleware)

	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/quote", s.handleQuote)
		r.Get("/tables/{name}", s.handleTable)
	})

	s.router.Get("/health", s.handleHealth)
	s.router.Get("/version", s.handleVersion)
	s.router.Method(http.MethodGet, "/metrics", observability.MetricsHandler())
}

// Listen builds an http.Server from config and serves until it fails
func (s *Server) Listen(cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
	}
	return srv.ListenAndServe()
}
