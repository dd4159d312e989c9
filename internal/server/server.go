package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/pantry-chef/config"
)

const shutdownTimeout = 5 * time.Second

// Server owns the HTTP listener lifecycle around a prepared handler.
type Server struct {
	http   *http.Server
	logger *zap.Logger
}

// New creates a server for the configured address.
func New(cfg *config.Config, handler http.Handler, logger *zap.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start serves until the context is cancelled or the listener fails, then
// drains in-flight requests before returning.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// Stop shuts the server down without waiting for the start context.
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
