// Package backend opens the store.ItemClient selected by configuration.
package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-repository/internal/config"
	"github.com/phrazzld/task-repository/internal/platform/dynamo"
	"github.com/phrazzld/task-repository/internal/platform/memory"
	"github.com/phrazzld/task-repository/internal/platform/postgres"
	"github.com/phrazzld/task-repository/internal/platform/sqlite"
	"github.com/phrazzld/task-repository/internal/store"
)

// ErrUnknownBackend is returned for a backend name Open does not recognize.
var ErrUnknownBackend = errors.New("unknown store backend")

// Backend is an opened item client together with the function that
// releases its resources.
type Backend struct {
	Name   string
	Client store.ItemClient
	close  func() error
}

// Close releases the backend's connections. It is safe to call on a
// backend that holds none.
func (b *Backend) Close() error {
	if b == nil || b.close == nil {
		return nil
	}
	return b.close()
}

// Open connects to the backend named in cfg.Store.Backend.
// The PostgreSQL backend applies pending migrations when migrate is true.
func Open(ctx context.Context, cfg *config.Config, migrate bool, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}

	name := cfg.Store.Backend
	log := logger.With(slog.String("backend", name))

	switch name {
	case config.BackendMemory:
		log.Warn("using in-memory store; data is lost on exit")
		return &Backend{Name: name, Client: memory.NewTaskItemStore()}, nil

	case config.BackendSQLite:
		s, err := sqlite.Open(cfg.SQLite.Path, store.TaskKeyAttribute, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		log.Info("sqlite store opened", slog.String("path", cfg.SQLite.Path))
		return &Backend{Name: name, Client: s, close: s.Close}, nil

	case config.BackendPostgres:
		db, err := postgres.Open(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := postgres.Migrate(ctx, db, logger); err != nil {
				_ = db.Close()
				return nil, err
			}
		}
		log.Info("postgres store opened")
		return &Backend{
			Name:   name,
			Client: postgres.NewItemStore(db, store.TaskKeyAttribute, logger),
			close:  db.Close,
		}, nil

	case config.BackendDynamoDB:
		s, err := dynamo.NewFromConfig(ctx, cfg.AWS, logger)
		if err != nil {
			return nil, err
		}
		log.Info("dynamodb client configured",
			slog.String("region", cfg.AWS.Region),
			slog.Bool("custom_endpoint", cfg.AWS.Endpoint != ""),
			slog.Bool("consistent_read", cfg.AWS.ConsistentRead))
		return &Backend{Name: name, Client: s}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
