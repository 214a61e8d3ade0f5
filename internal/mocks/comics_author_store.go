package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// ComicsAuthorStore is a testify mock of store.ComicsAuthorStore.
type ComicsAuthorStore struct {
	mock.Mock
}

var _ store.ComicsAuthorStore = (*ComicsAuthorStore)(nil)

// List is a mock implementation of store.ComicsAuthorStore.List
func (m *ComicsAuthorStore) List(ctx context.Context, page store.Page) ([]domain.ComicsAuthor, error) {
	args := m.Called(ctx, page)
	if v, ok := args.Get(0).([]domain.ComicsAuthor); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.ComicsAuthorStore.Create
func (m *ComicsAuthorStore) Create(ctx context.Context, link domain.ComicsAuthor) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

// Delete is a mock implementation of store.ComicsAuthorStore.Delete
func (m *ComicsAuthorStore) Delete(ctx context.Context, link domain.ComicsAuthor) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

// ComicsIDsByAuthor is a mock implementation of store.ComicsAuthorStore.ComicsIDsByAuthor
func (m *ComicsAuthorStore) ComicsIDsByAuthor(ctx context.Context, authorID int64) ([]int64, error) {
	args := m.Called(ctx, authorID)
	if v, ok := args.Get(0).([]int64); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// AuthorIDsByComics is a mock implementation of store.ComicsAuthorStore.AuthorIDsByComics
func (m *ComicsAuthorStore) AuthorIDsByComics(ctx context.Context, comicsID int64) ([]int64, error) {
	args := m.Called(ctx, comicsID)
	if v, ok := args.Get(0).([]int64); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// ReplaceForAuthor is a mock implementation of store.ComicsAuthorStore.ReplaceForAuthor
func (m *ComicsAuthorStore) ReplaceForAuthor(ctx context.Context, authorID int64, comicsIDs []int64) error {
	args := m.Called(ctx, authorID, comicsIDs)
	return args.Error(0)
}

// ReplaceForComics is a mock implementation of store.ComicsAuthorStore.ReplaceForComics
func (m *ComicsAuthorStore) ReplaceForComics(ctx context.Context, comicsID int64, authorIDs []int64) error {
	args := m.Called(ctx, comicsID, authorIDs)
	return args.Error(0)
}

// WithTx returns the mock itself so expectations span transactional calls.
func (m *ComicsAuthorStore) WithTx(tx *sql.Tx) store.ComicsAuthorStore {
	return m
}
