package repository

import (
	"context"

	"github.com/phrazzld/task-repository/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockItemClient mocks the store.ItemClient interface
type MockItemClient struct {
	mock.Mock
}

func (m *MockItemClient) PutItem(ctx context.Context, table string, item store.Item) error {
	args := m.Called(ctx, table, item)
	return args.Error(0)
}

func (m *MockItemClient) GetItem(ctx context.Context, table string, key store.Item) (store.Item, bool, error) {
	args := m.Called(ctx, table, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(store.Item), args.Bool(1), args.Error(2)
}
