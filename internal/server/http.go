package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ashakirov/go-fit-keeper/internal/config"
	"github.com/ashakirov/go-fit-keeper/internal/logger"
)

// DebugServer serves the diagnostics endpoints on the configured address.
type DebugServer struct {
	server *http.Server
	logger *logger.Logger
}

// NewDebugServer wires the handler's routes into an http.Server. Returns nil
// when cfg.HTTPAddress is empty: diagnostics are opt-in.
func NewDebugServer(cfg config.ClientDebug, handler *Handler, logger *logger.Logger) *DebugServer {
	if cfg.HTTPAddress == "" {
		return nil
	}

	return &DebugServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler.Init(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Run starts listening. It blocks until the server is shut down.
func (s *DebugServer) Run() {
	s.logger.Info().Str("address", s.server.Addr).Msg("diagnostics server listening")

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Err(err).Msg("diagnostics server stopped")
	}
}

// Shutdown stops the server gracefully.
func (s *DebugServer) Shutdown(ctx context.Context) {
	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Err(err).Msg("diagnostics server shutdown")
	}
}
