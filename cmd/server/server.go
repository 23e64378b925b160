package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

const (
	// In-flight PUT /api/tasks requests get this long to finish their
	// write before the backend is closed under them.
	drainTimeout      = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// startHTTPServer exposes the task API until SIGINT, SIGTERM or ctx ends
// it. Requests are drained before the store backend is closed, so no write
// is cut off between the repository and the backend.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		app.logger.Info("task API listening",
			slog.Int("port", app.config.Server.Port),
			slog.String("backend", app.backend.Name),
			slog.String("table", app.config.Store.TableName))
		serveErr <- server.ListenAndServe()
	}()

	var listenErr error
	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("task API stopped accepting requests", slog.String("error", err.Error()))
			listenErr = fmt.Errorf("listen on port %d: %w", app.config.Server.Port, err)
		}
	case <-ctx.Done():
		app.logger.Info("draining task API requests", slog.Duration("timeout", drainTimeout))
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	shutdownErr := server.Shutdown(drainCtx)
	app.cleanup()

	if shutdownErr != nil {
		app.logger.Error("task API did not drain in time", slog.String("error", shutdownErr.Error()))
		return errors.Join(listenErr, fmt.Errorf("drain requests: %w", shutdownErr))
	}
	if listenErr != nil {
		return listenErr
	}

	app.logger.Info("task API stopped; backend closed")
	return nil
}
