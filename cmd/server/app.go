package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-repository/internal/config"
	"github.com/phrazzld/task-repository/internal/platform/backend"
	"github.com/phrazzld/task-repository/internal/repository"
	"github.com/phrazzld/task-repository/internal/store"
)

// application holds the shared dependencies and releases them on shutdown.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	backend *backend.Backend
	tasks   store.TaskStore
}

// newApplication opens the configured backend and builds the repository.
// PostgreSQL migrations are applied on startup.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	b, err := backend.Open(ctx, cfg, true, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store backend: %w", err)
	}

	app := &application{
		config:  cfg,
		logger:  logger,
		backend: b,
		tasks:   repository.New(cfg.Store.TableName, b.Client, logger),
	}

	logger.Info("application initialized",
		slog.String("backend", b.Name),
		slog.String("table", cfg.Store.TableName))
	return app, nil
}

// Run starts the HTTP server and blocks until it stops.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if err := app.backend.Close(); err != nil {
		app.logger.Error("error closing store backend", slog.String("error", err.Error()))
	}

	app.logger.Info("application shutdown completed")
}
