package store

import (
	"context"

	"github.com/phrazzld/task-repository/internal/domain"
)

// ItemClient is the capability a key-value backend must offer: an upsert of
// a whole record by primary key, and a get by primary key.
// Version: 1.0
type ItemClient interface {
	// PutItem writes item into table, replacing any record with the same
	// primary key. The write is atomic per key.
	PutItem(ctx context.Context, table string, item Item) error

	// GetItem returns the record whose primary key matches key.
	// found is false, with a nil error, when no such record exists.
	GetItem(ctx context.Context, table string, key Item) (item Item, found bool, err error)
}

// TaskStore defines the interface for task persistence.
// Version: 1.0
type TaskStore interface {
	// Store writes the whole task under its global id, overwriting any
	// previous record. Every failure matches ErrRepository.
	Store(ctx context.Context, task *domain.Task) error

	// Fetch returns the task stored under globalID. Missing records,
	// undecodable records and failed requests all report found == false.
	Fetch(ctx context.Context, globalID string) (task *domain.Task, found bool)

	// Lookup behaves like Fetch but reports why a task could not be
	// returned: ErrTaskNotFound, ErrMalformedRecord or ErrRepository.
	Lookup(ctx context.Context, globalID string) (*domain.Task, error)
}
