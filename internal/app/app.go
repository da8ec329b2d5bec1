// Package app provides application lifecycle management for the registry server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dataelementhub/dehub-registry/internal/config"
)

// RegistryApp encapsulates all components needed to run the registry API server
// It provides lifecycle management and graceful shutdown capabilities
type RegistryApp struct {
	config          *config.Config
	components      *AppComponents
	httpServer      *http.Server
	gracefulTimeout time.Duration

	stopOnce sync.Once
	stopErr  error
}

// Run serves HTTP until ctx is cancelled or the server fails, then shuts the
// application down within the graceful timeout
func (app *RegistryApp) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(app.Start)
	g.Go(func() error {
		<-gctx.Done()
		return app.Stop(app.gracefulTimeout)
	})

	return g.Wait()
}

// Start starts the HTTP server
// This method blocks until the HTTP server stops or encounters an error
func (app *RegistryApp) Start() error {
	slog.Info("Server listening", "address", app.httpServer.Addr)
	if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	return nil
}

// Stop gracefully stops the application with the given timeout. In-flight
// requests are drained before the database pool is closed. Later calls return
// the result of the first one.
func (app *RegistryApp) Stop(timeout time.Duration) error {
	app.stopOnce.Do(func() {
		slog.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var errs []error
		if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("server forced to shutdown: %w", err))
		}
		if err := app.components.close(shutdownCtx); err != nil {
			errs = append(errs, err)
		}

		app.stopErr = errors.Join(errs...)
		if app.stopErr == nil {
			slog.Info("Server shutdown complete")
		}
	})
	return app.stopErr
}

// GetConfig returns the application configuration
func (app *RegistryApp) GetConfig() *config.Config {
	return app.config
}

// GetHTTPServer returns the HTTP server (useful for testing to get the actual port)
func (app *RegistryApp) GetHTTPServer() *http.Server {
	return app.httpServer
}
