package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"brentwatch/internal/config"
	"brentwatch/internal/store"
)

// Server exposes the dashboard API over HTTP.
type Server struct {
	cfg    *config.Config
	store  store.Store
	server *http.Server
}

// New creates the HTTP server with all routes registered.
func New(cfg *config.Config, st store.Store) *Server {
	s := &Server{cfg: cfg, store: st}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	s.server = &http.Server{
		Addr:         addr,
		Handler:      withLogging(s.routes()),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start runs the server until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("[INFO] API listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("[INFO] shutting down HTTP server")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
