package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// AuthorStore is a testify mock of store.AuthorStore.
type AuthorStore struct {
	mock.Mock
}

var _ store.AuthorStore = (*AuthorStore)(nil)

// List is a mock implementation of store.AuthorStore.List
func (m *AuthorStore) List(ctx context.Context, page store.Page) ([]*domain.Author, error) {
	args := m.Called(ctx, page)
	if v, ok := args.Get(0).([]*domain.Author); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.AuthorStore.GetByID
func (m *AuthorStore) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*domain.Author); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.AuthorStore.Create
func (m *AuthorStore) Create(ctx context.Context, v *domain.Author) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

// Update is a mock implementation of store.AuthorStore.Update
func (m *AuthorStore) Update(ctx context.Context, v *domain.Author) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

// Delete is a mock implementation of store.AuthorStore.Delete
func (m *AuthorStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// NameExists is a mock implementation of store.AuthorStore.NameExists
func (m *AuthorStore) NameExists(ctx context.Context, name string, surname string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, surname, excludeID)
	return args.Bool(0), args.Error(1)
}

// ListByComics is a mock implementation of store.AuthorStore.ListByComics
func (m *AuthorStore) ListByComics(ctx context.Context, comicsID int64) ([]*domain.Author, error) {
	args := m.Called(ctx, comicsID)
	if v, ok := args.Get(0).([]*domain.Author); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx returns the mock itself so expectations span transactional calls.
func (m *AuthorStore) WithTx(tx *sql.Tx) store.AuthorStore {
	return m
}
