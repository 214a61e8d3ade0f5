package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// ComicsStore is a testify mock of store.ComicsStore.
type ComicsStore struct {
	mock.Mock
}

var _ store.ComicsStore = (*ComicsStore)(nil)

// List is a mock implementation of store.ComicsStore.List
func (m *ComicsStore) List(ctx context.Context, page store.Page) ([]*domain.Comics, error) {
	args := m.Called(ctx, page)
	if v, ok := args.Get(0).([]*domain.Comics); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.ComicsStore.GetByID
func (m *ComicsStore) GetByID(ctx context.Context, id int64) (*domain.Comics, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*domain.Comics); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.ComicsStore.Create
func (m *ComicsStore) Create(ctx context.Context, v *domain.Comics) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

// Update is a mock implementation of store.ComicsStore.Update
func (m *ComicsStore) Update(ctx context.Context, v *domain.Comics) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

// Delete is a mock implementation of store.ComicsStore.Delete
func (m *ComicsStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TitleExists is a mock implementation of store.ComicsStore.TitleExists
func (m *ComicsStore) TitleExists(ctx context.Context, title string, excludeID int64) (bool, error) {
	args := m.Called(ctx, title, excludeID)
	return args.Bool(0), args.Error(1)
}

// ListByAuthor is a mock implementation of store.ComicsStore.ListByAuthor
func (m *ComicsStore) ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Comics, error) {
	args := m.Called(ctx, authorID)
	if v, ok := args.Get(0).([]*domain.Comics); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByCharacter is a mock implementation of store.ComicsStore.ListByCharacter
func (m *ComicsStore) ListByCharacter(ctx context.Context, characterID int64) ([]*domain.Comics, error) {
	args := m.Called(ctx, characterID)
	if v, ok := args.Get(0).([]*domain.Comics); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx returns the mock itself so expectations span transactional calls.
func (m *ComicsStore) WithTx(tx *sql.Tx) store.ComicsStore {
	return m
}
