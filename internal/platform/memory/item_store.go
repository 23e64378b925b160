// Package memory provides an in-process store.ItemClient. It backs unit
// tests and the "memory" backend of the binaries; nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"github.com/phrazzld/task-repository/internal/store"
)

// ItemStore keeps items in nested maps keyed by table and partition key.
// PutFn and GetFn may be replaced to inject failures; by default they
// operate on the maps.
type ItemStore struct {
	mutex        sync.RWMutex
	keyAttribute string
	tables       map[string]map[string]store.Item

	PutFn func(ctx context.Context, table string, item store.Item) error
	GetFn func(ctx context.Context, table string, key store.Item) (store.Item, bool, error)
}

// Ensure ItemStore implements store.ItemClient interface
var _ store.ItemClient = (*ItemStore)(nil)

// NewItemStore creates an empty store whose tables are keyed by keyAttribute.
func NewItemStore(keyAttribute string) *ItemStore {
	s := &ItemStore{
		keyAttribute: keyAttribute,
		tables:       make(map[string]map[string]store.Item),
	}
	s.PutFn = s.put
	s.GetFn = s.get
	return s
}

// NewTaskItemStore creates a store keyed by the task partition key.
func NewTaskItemStore() *ItemStore {
	return NewItemStore(store.TaskKeyAttribute)
}

// PutItem implements store.ItemClient.
func (s *ItemStore) PutItem(ctx context.Context, table string, item store.Item) error {
	return s.PutFn(ctx, table, item)
}

// GetItem implements store.ItemClient.
func (s *ItemStore) GetItem(ctx context.Context, table string, key store.Item) (store.Item, bool, error) {
	return s.GetFn(ctx, table, key)
}

// Len returns the number of items in table.
func (s *ItemStore) Len(table string) int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.tables[table])
}

// Seed writes an item without going through PutFn. Tests use it to plant
// records the codec would never produce.
func (s *ItemStore) Seed(table, key string, item store.Item) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.table(table)[key] = item.Clone()
}

func (s *ItemStore) put(ctx context.Context, table string, item store.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key, err := store.PartitionKey(item, s.keyAttribute)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.table(table)[key] = item.Clone()
	return nil
}

func (s *ItemStore) get(ctx context.Context, table string, key store.Item) (store.Item, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	value, err := store.PartitionKey(key, s.keyAttribute)
	if err != nil {
		return nil, false, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()
	item, ok := s.tables[table][value]
	if !ok {
		return nil, false, nil
	}
	return item.Clone(), true, nil
}

// table must be called with the write lock held.
func (s *ItemStore) table(name string) map[string]store.Item {
	t, ok := s.tables[name]
	if !ok {
		t = make(map[string]store.Item)
		s.tables[name] = t
	}
	return t
}
