package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// ComicsCharacterStore is a testify mock of store.ComicsCharacterStore.
type ComicsCharacterStore struct {
	mock.Mock
}

var _ store.ComicsCharacterStore = (*ComicsCharacterStore)(nil)

// List is a mock implementation of store.ComicsCharacterStore.List
func (m *ComicsCharacterStore) List(ctx context.Context, page store.Page) ([]domain.ComicsCharacter, error) {
	args := m.Called(ctx, page)
	if v, ok := args.Get(0).([]domain.ComicsCharacter); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// Get is a mock implementation of store.ComicsCharacterStore.Get
func (m *ComicsCharacterStore) Get(ctx context.Context, link domain.ComicsCharacter) (domain.ComicsCharacter, error) {
	args := m.Called(ctx, link)
	if v, ok := args.Get(0).(domain.ComicsCharacter); ok {
		return v, args.Error(1)
	}
	return domain.ComicsCharacter{}, args.Error(1)
}

// Create is a mock implementation of store.ComicsCharacterStore.Create
func (m *ComicsCharacterStore) Create(ctx context.Context, link domain.ComicsCharacter) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

// Update is a mock implementation of store.ComicsCharacterStore.Update
func (m *ComicsCharacterStore) Update(ctx context.Context, from domain.ComicsCharacter, to domain.ComicsCharacter) error {
	args := m.Called(ctx, from, to)
	return args.Error(0)
}

// Delete is a mock implementation of store.ComicsCharacterStore.Delete
func (m *ComicsCharacterStore) Delete(ctx context.Context, link domain.ComicsCharacter) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

// CharacterIDsByComics is a mock implementation of store.ComicsCharacterStore.CharacterIDsByComics
func (m *ComicsCharacterStore) CharacterIDsByComics(ctx context.Context, comicsID int64) ([]int64, error) {
	args := m.Called(ctx, comicsID)
	if v, ok := args.Get(0).([]int64); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// ReplaceForComics is a mock implementation of store.ComicsCharacterStore.ReplaceForComics
func (m *ComicsCharacterStore) ReplaceForComics(ctx context.Context, comicsID int64, characterIDs []int64) error {
	args := m.Called(ctx, comicsID, characterIDs)
	return args.Error(0)
}

// WithTx returns the mock itself so expectations span transactional calls.
func (m *ComicsCharacterStore) WithTx(tx *sql.Tx) store.ComicsCharacterStore {
	return m
}
