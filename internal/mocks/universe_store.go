package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// UniverseStore is a testify mock of store.UniverseStore.
type UniverseStore struct {
	mock.Mock
}

var _ store.UniverseStore = (*UniverseStore)(nil)

// List is a mock implementation of store.UniverseStore.List
func (m *UniverseStore) List(ctx context.Context, page store.Page) ([]*domain.Universe, error) {
	args := m.Called(ctx, page)
	if v, ok := args.Get(0).([]*domain.Universe); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.UniverseStore.GetByID
func (m *UniverseStore) GetByID(ctx context.Context, id int64) (*domain.Universe, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*domain.Universe); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.UniverseStore.Create
func (m *UniverseStore) Create(ctx context.Context, v *domain.Universe) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

// Update is a mock implementation of store.UniverseStore.Update
func (m *UniverseStore) Update(ctx context.Context, v *domain.Universe) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

// Delete is a mock implementation of store.UniverseStore.Delete
func (m *UniverseStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TitleExists is a mock implementation of store.UniverseStore.TitleExists
func (m *UniverseStore) TitleExists(ctx context.Context, title string, excludeID int64) (bool, error) {
	args := m.Called(ctx, title, excludeID)
	return args.Bool(0), args.Error(1)
}

// WithTx returns the mock itself so expectations span transactional calls.
func (m *UniverseStore) WithTx(tx *sql.Tx) store.UniverseStore {
	return m
}
