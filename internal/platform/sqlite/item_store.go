// Package sqlite provides a store.ItemClient backed by a local SQLite file.
// Items are stored whole as DynamoDB-style JSON documents, one row per
// (table, partition key), which keeps put-whole-record semantics exact.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/phrazzld/task-repository/internal/platform/logger"
	"github.com/phrazzld/task-repository/internal/store"
)

const (
	// DBBusyTimeout bounds how long a writer waits on a locked database.
	DBBusyTimeout = 5 * time.Second
	// DBCacheSizeKiB is the page cache size handed to SQLite.
	DBCacheSizeKiB = 16 * 1024
)

const createItemsTable = `
CREATE TABLE IF NOT EXISTS items (
  table_name TEXT NOT NULL,
  partition_key TEXT NOT NULL,
  attributes_json TEXT NOT NULL,
  updated_at_unix INTEGER NOT NULL,
  PRIMARY KEY (table_name, partition_key)
);`

// ItemStore implements store.ItemClient on SQLite.
type ItemStore struct {
	db           *sqlx.DB
	keyAttribute string
	logger       *slog.Logger
}

// Ensure ItemStore implements store.ItemClient interface
var _ store.ItemClient = (*ItemStore)(nil)

// Open connects to the database at dbPath, applies pragmas and creates the
// items table if needed.
func Open(dbPath, keyAttribute string, logger *slog.Logger) (*ItemStore, error) {
	// busy_timeout is per connection, so it goes in the DSN where every
	// pooled connection picks it up.
	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d", dbPath, int64(DBBusyTimeout/time.Millisecond))

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot open sqlite database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		fmt.Sprintf("PRAGMA cache_size=-%d;", DBCacheSizeKiB),
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("cannot set sqlite database parameter: %w", err)
		}
	}

	if _, err := db.Exec(createItemsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cannot create items table: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ItemStore{
		db:           db,
		keyAttribute: keyAttribute,
		logger:       logger.With(slog.String("component", "sqlite_item_store")),
	}, nil
}

// Close releases the database handle.
func (s *ItemStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// PutItem implements store.ItemClient.
func (s *ItemStore) PutItem(ctx context.Context, table string, item store.Item) error {
	key, err := store.PartitionKey(item, s.keyAttribute)
	if err != nil {
		return err
	}

	doc, err := store.MarshalItem(item)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO items (table_name, partition_key, attributes_json, updated_at_unix)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(table_name, partition_key) DO UPDATE SET
		   attributes_json=excluded.attributes_json,
		   updated_at_unix=excluded.updated_at_unix`,
		table,
		key,
		string(doc),
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert item: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("item upserted",
		slog.String("table", table),
		slog.String("partition_key", key))
	return nil
}

// GetItem implements store.ItemClient.
func (s *ItemStore) GetItem(ctx context.Context, table string, key store.Item) (store.Item, bool, error) {
	value, err := store.PartitionKey(key, s.keyAttribute)
	if err != nil {
		return nil, false, err
	}

	var row struct {
		AttributesJSON string `db:"attributes_json"`
	}

	err = s.db.GetContext(ctx, &row,
		`SELECT attributes_json FROM items WHERE table_name = ? AND partition_key = ?`,
		table, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("query items: %w", err)
	}

	item, err := store.UnmarshalItem([]byte(row.AttributesJSON))
	if err != nil {
		return nil, false, fmt.Errorf("decode stored item: %w", err)
	}
	return item, true, nil
}
