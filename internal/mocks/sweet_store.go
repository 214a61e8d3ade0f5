package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// SweetStore is a testify mock of store.SweetStore.
type SweetStore struct {
	mock.Mock
}

var _ store.SweetStore = (*SweetStore)(nil)

// List is a mock implementation of store.SweetStore.List
func (m *SweetStore) List(ctx context.Context, page store.Page) ([]*domain.Sweet, error) {
	args := m.Called(ctx, page)
	if v, ok := args.Get(0).([]*domain.Sweet); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.SweetStore.GetByID
func (m *SweetStore) GetByID(ctx context.Context, id int64) (*domain.Sweet, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*domain.Sweet); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.SweetStore.Create
func (m *SweetStore) Create(ctx context.Context, v *domain.Sweet) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

// Update is a mock implementation of store.SweetStore.Update
func (m *SweetStore) Update(ctx context.Context, v *domain.Sweet) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

// Delete is a mock implementation of store.SweetStore.Delete
func (m *SweetStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TitleExists is a mock implementation of store.SweetStore.TitleExists
func (m *SweetStore) TitleExists(ctx context.Context, title string, excludeID int64) (bool, error) {
	args := m.Called(ctx, title, excludeID)
	return args.Bool(0), args.Error(1)
}

// ListByCharacter is a mock implementation of store.SweetStore.ListByCharacter
func (m *SweetStore) ListByCharacter(ctx context.Context, characterID int64) ([]*domain.Sweet, error) {
	args := m.Called(ctx, characterID)
	if v, ok := args.Get(0).([]*domain.Sweet); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx returns the mock itself so expectations span transactional calls.
func (m *SweetStore) WithTx(tx *sql.Tx) store.SweetStore {
	return m
}
