package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// CharacterStore is a testify mock of store.CharacterStore.
type CharacterStore struct {
	mock.Mock
}

var _ store.CharacterStore = (*CharacterStore)(nil)

// List is a mock implementation of store.CharacterStore.List
func (m *CharacterStore) List(ctx context.Context, page store.Page) ([]*domain.Character, error) {
	args := m.Called(ctx, page)
	if v, ok := args.Get(0).([]*domain.Character); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.CharacterStore.GetByID
func (m *CharacterStore) GetByID(ctx context.Context, id int64) (*domain.Character, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*domain.Character); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.CharacterStore.Create
func (m *CharacterStore) Create(ctx context.Context, v *domain.Character) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

// Update is a mock implementation of store.CharacterStore.Update
func (m *CharacterStore) Update(ctx context.Context, v *domain.Character) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

// Delete is a mock implementation of store.CharacterStore.Delete
func (m *CharacterStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ListByUniverse is a mock implementation of store.CharacterStore.ListByUniverse
func (m *CharacterStore) ListByUniverse(ctx context.Context, universeID int64) ([]*domain.Character, error) {
	args := m.Called(ctx, universeID)
	if v, ok := args.Get(0).([]*domain.Character); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByAuthor is a mock implementation of store.CharacterStore.ListByAuthor
func (m *CharacterStore) ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Character, error) {
	args := m.Called(ctx, authorID)
	if v, ok := args.Get(0).([]*domain.Character); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByComics is a mock implementation of store.CharacterStore.ListByComics
func (m *CharacterStore) ListByComics(ctx context.Context, comicsID int64) ([]*domain.Character, error) {
	args := m.Called(ctx, comicsID)
	if v, ok := args.Get(0).([]*domain.Character); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx returns the mock itself so expectations span transactional calls.
func (m *CharacterStore) WithTx(tx *sql.Tx) store.CharacterStore {
	return m
}
