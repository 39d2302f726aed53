package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ignite/contact-directory/internal/config"
	"github.com/ignite/contact-directory/internal/metrics"
	"github.com/ignite/contact-directory/internal/service/contact"
)

// Server represents the HTTP server
type Server struct {
	config   config.ServerConfig
	handlers *Handlers
	router   *chi.Mux
	server   *http.Server
}

// NewServer creates a new server. rec may be nil to disable /metrics.
func NewServer(cfg config.ServerConfig, svc *contact.Service, rec *metrics.Recorder) (*Server, error) {
	views, err := NewViews()
	if err != nil {
		return nil, fmt.Errorf("load views: %w", err)
	}

	var metricsHandler http.Handler
	if rec != nil {
		metricsHandler = rec.Handler()
	}

	handlers := NewHandlers(svc, views)
	router := SetupRoutes(handlers, cfg.AllowedOrigins, metricsHandler)
	return &Server{
		config:   cfg,
		handlers: handlers,
		router:   router,
		server: &http.Server{
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout(),
			ReadHeaderTimeout: cfg.ReadTimeout(),
			WriteTimeout:      cfg.WriteTimeout(),
			IdleTimeout:       120 * time.Second,
		},
	}, nil
}

// ListenAndServe starts the HTTP server on addr. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) ListenAndServe(addr string) error {
	s.server.Addr = addr
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing
func (s *Server) Handler() http.Handler {
	return s.router
}
