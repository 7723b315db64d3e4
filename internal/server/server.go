// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the add-on's HTTP server with graceful shutdown on
// stop signals from the host.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-addon-kit/internal/config"
	"github.com/MKhiriev/go-addon-kit/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// Server wraps an http.Server listening on the configured add-on port.
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

func NewServer(router http.Handler, cfg *config.Config, logger *logger.Logger) *Server {
	logger.Info().Msg("creating new server...")
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Run serves until ctx is cancelled or the listener fails, then drains
// in-flight requests within a bounded shutdown window. The host stops
// add-ons with SIGTERM; [RunContext] is the usual way to obtain ctx.
func (s *Server) Run(ctx context.Context) error {
	listenErr := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("launching HTTP server")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("HTTP server ListenAndServe: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}

	s.logger.Info().Msg("server shut down gracefully")
	return nil
}

// RunContext returns a context cancelled by the stop signals the host
// sends, plus the stop function releasing the signal handler.
func RunContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
}
