package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// DeviceStore is a testify mock of store.DeviceStore.
type DeviceStore struct {
	mock.Mock
}

var _ store.DeviceStore = (*DeviceStore)(nil)

// List is a mock implementation of store.DeviceStore.List
func (m *DeviceStore) List(ctx context.Context, page store.Page) ([]*domain.Device, error) {
	args := m.Called(ctx, page)
	if v, ok := args.Get(0).([]*domain.Device); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// GetByID is a mock implementation of store.DeviceStore.GetByID
func (m *DeviceStore) GetByID(ctx context.Context, id int64) (*domain.Device, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*domain.Device); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.DeviceStore.Create
func (m *DeviceStore) Create(ctx context.Context, v *domain.Device) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

// Update is a mock implementation of store.DeviceStore.Update
func (m *DeviceStore) Update(ctx context.Context, v *domain.Device) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

// Delete is a mock implementation of store.DeviceStore.Delete
func (m *DeviceStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TitleExists is a mock implementation of store.DeviceStore.TitleExists
func (m *DeviceStore) TitleExists(ctx context.Context, title string, excludeID int64) (bool, error) {
	args := m.Called(ctx, title, excludeID)
	return args.Bool(0), args.Error(1)
}

// ListByUniverse is a mock implementation of store.DeviceStore.ListByUniverse
func (m *DeviceStore) ListByUniverse(ctx context.Context, universeID int64) ([]*domain.Device, error) {
	args := m.Called(ctx, universeID)
	if v, ok := args.Get(0).([]*domain.Device); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListByCharacter is a mock implementation of store.DeviceStore.ListByCharacter
func (m *DeviceStore) ListByCharacter(ctx context.Context, characterID int64) ([]*domain.Device, error) {
	args := m.Called(ctx, characterID)
	if v, ok := args.Get(0).([]*domain.Device); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

// WithTx returns the mock itself so expectations span transactional calls.
func (m *DeviceStore) WithTx(tx *sql.Tx) store.DeviceStore {
	return m
}
