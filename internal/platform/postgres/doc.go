// Package postgres provides a PostgreSQL implementation of store.ItemClient.
// Each item is kept whole in a JSONB column keyed by (table, partition key),
// so a put replaces the entire record exactly as a key-value store would.
// The schema is managed with goose migrations embedded in the binary.
package postgres
