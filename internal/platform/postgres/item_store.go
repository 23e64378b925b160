package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-repository/internal/platform/logger"
	"github.com/phrazzld/task-repository/internal/store"
)

// ItemStore implements the store.ItemClient interface
// using a PostgreSQL database as the storage backend.
type ItemStore struct {
	db           DBTX
	keyAttribute string
	logger       *slog.Logger
}

// Ensure ItemStore implements store.ItemClient interface
var _ store.ItemClient = (*ItemStore)(nil)

// NewItemStore creates a new PostgreSQL implementation of the ItemClient interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewItemStore(db DBTX, keyAttribute string, logger *slog.Logger) *ItemStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ItemStore{
		db:           db,
		keyAttribute: keyAttribute,
		logger:       logger.With(slog.String("component", "postgres_item_store")),
	}
}

// WithTx returns a new ItemStore that runs its statements on tx.
func (s *ItemStore) WithTx(tx *sql.Tx) *ItemStore {
	return &ItemStore{
		db:           tx,
		keyAttribute: s.keyAttribute,
		logger:       s.logger,
	}
}

// PutItem implements store.ItemClient.PutItem.
// It upserts the whole item; attributes absent from item are dropped.
func (s *ItemStore) PutItem(ctx context.Context, table string, item store.Item) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	key, err := store.PartitionKey(item, s.keyAttribute)
	if err != nil {
		return err
	}

	doc, err := store.MarshalItem(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	query := `
		INSERT INTO items (table_name, partition_key, attributes, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (table_name, partition_key) DO UPDATE
		SET attributes = EXCLUDED.attributes, updated_at = EXCLUDED.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, table, key, doc); err != nil {
		log.Error("failed to upsert item",
			slog.String("table", table),
			slog.String("partition_key", key),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Debug("item upserted",
		slog.String("table", table),
		slog.String("partition_key", key))
	return nil
}

// GetItem implements store.ItemClient.GetItem.
func (s *ItemStore) GetItem(ctx context.Context, table string, key store.Item) (store.Item, bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	value, err := store.PartitionKey(key, s.keyAttribute)
	if err != nil {
		return nil, false, err
	}

	query := `
		SELECT attributes
		FROM items
		WHERE table_name = $1 AND partition_key = $2
	`

	var doc []byte
	err = s.db.QueryRowContext(ctx, query, table, value).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item not found",
				slog.String("table", table),
				slog.String("partition_key", value))
			return nil, false, nil
		}

		log.Error("failed to get item",
			slog.String("table", table),
			slog.String("partition_key", value),
			slog.String("error", err.Error()))
		return nil, false, MapError(err)
	}

	item, err := store.UnmarshalItem(doc)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode stored item: %w", err)
	}
	return item, true, nil
}
