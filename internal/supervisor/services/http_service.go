// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultShutdownTimeout bounds graceful HTTP shutdown.
const DefaultShutdownTimeout = 10 * time.Second

// HTTPServer is the subset of *http.Server the service drives. Tests swap in
// a fake to exercise listener failures and slow shutdowns without binding a
// port.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService adapts the blocking ListenAndServe/Shutdown pair of an
// http.Server to suture's context-driven Serve.
//
// Lifecycle:
//
//  1. Serve starts ListenAndServe on its own goroutine.
//  2. If the listener fails (port in use, accept error) Serve returns that
//     error wrapped, and the supervisor restarts the service with backoff.
//  3. When the supervisor cancels ctx, Serve calls Shutdown under a fresh
//     deadline of shutdownTimeout so in-flight recommendations can finish,
//     then waits for the listener goroutine before returning ctx.Err().
//
// A Shutdown that misses its deadline is reported as an error; the
// supervisor is already stopping at that point, so it is logged, not retried.
//
//	server := &http.Server{Addr: ":5000", Handler: router.SetupChi()}
//	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	name            string
}

// NewHTTPServerService wraps server. shutdownTimeout is how long Shutdown may
// wait for open connections to drain; a non-positive value uses
// DefaultShutdownTimeout.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		name:            "http-server",
	}
}

// Serve implements suture.Service. It blocks until the listener fails or ctx
// is canceled.
//
// Return values:
//   - wrapped listener error: the server died and should be restarted
//   - nil: ListenAndServe returned http.ErrServerClosed without ctx being
//     canceled, i.e. something else closed the server
//   - ctx.Err(): graceful shutdown completed
//   - wrapped Shutdown error: connections did not drain before the deadline
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		// ctx is already canceled; shutdown needs its own deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		<-errCh
		return ctx.Err()
	}
}

// String names the service in supervisor logs.
func (h *HTTPServerService) String() string {
	return h.name
}
