package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// ToyStore is a testify mock of store.ToyStore.
type ToyStore struct {
	mock.Mock
}

var _ store.ToyStore = (*ToyStore)(nil)

// List is a mock implementation of store.ToyStore.List
func (m *ToyStore) List(ctx context.Context, page store.Page) ([]*domain.Toy, error) {
	args := m.Called(ctx, page)
	if v, ok := args.Get(0).([]*domain.Toy); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.ToyStore.GetByID
func (m *ToyStore) GetByID(ctx context.Context, id int64) (*domain.Toy, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*domain.Toy); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.ToyStore.Create
func (m *ToyStore) Create(ctx context.Context, v *domain.Toy) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

// Update is a mock implementation of store.ToyStore.Update
func (m *ToyStore) Update(ctx context.Context, v *domain.Toy) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

// Delete is a mock implementation of store.ToyStore.Delete
func (m *ToyStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TitleExists is a mock implementation of store.ToyStore.TitleExists
func (m *ToyStore) TitleExists(ctx context.Context, title string, excludeID int64) (bool, error) {
	args := m.Called(ctx, title, excludeID)
	return args.Bool(0), args.Error(1)
}

// ListByUniverse is a mock implementation of store.ToyStore.ListByUniverse
func (m *ToyStore) ListByUniverse(ctx context.Context, universeID int64) ([]*domain.Toy, error) {
	args := m.Called(ctx, universeID)
	if v, ok := args.Get(0).([]*domain.Toy); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByCharacter is a mock implementation of store.ToyStore.ListByCharacter
func (m *ToyStore) ListByCharacter(ctx context.Context, characterID int64) ([]*domain.Toy, error) {
	args := m.Called(ctx, characterID)
	if v, ok := args.Get(0).([]*domain.Toy); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx returns the mock itself so expectations span transactional calls.
func (m *ToyStore) WithTx(tx *sql.Tx) store.ToyStore {
	return m
}
