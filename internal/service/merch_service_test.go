package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/mocks"
	"github.com/phrazzld/geekshop-api/internal/service"
	"github.com/phrazzld/geekshop-api/internal/store"
)

func TestSweetService_CreateDerivesSlug(t *testing.T) {
	sweets := new(mocks.SweetStore)
	db, sqlMock := newTxDB(t)
	expectCommit(sqlMock)

	sweets.On("TitleExists", mock.Anything, "Hulk Candy", int64(0)).Return(false, nil)
	sweets.On("Create", mock.Anything, mock.AnythingOfType("*domain.Sweet")).Return(nil)

	sweet := validSweet()
	svc := service.NewSweetService(sweets, nil, nil, db, testLogger)
	require.NoError(t, svc.Create(context.Background(), sweet))
	assert.Equal(t, "hulk-candy-100-12-50", sweet.Slug)
	sweets.AssertExpectations(t)
}

func TestSweetService_UniverseComesFromCharacter(t *testing.T) {
	sweets := new(mocks.SweetStore)
	universes := new(mocks.UniverseStore)
	characters := new(mocks.CharacterStore)
	db, _ := newTxDB(t)

	sweets.On("GetByID", mock.Anything, int64(1)).Return(&domain.Sweet{ID: 1, CharacterID: 2}, nil)
	characters.On("GetByID", mock.Anything, int64(2)).Return(&domain.Character{ID: 2, UniverseID: 5}, nil)
	universes.On("GetByID", mock.Anything, int64(5)).Return(&domain.Universe{ID: 5, Title: "Marvel"}, nil)

	svc := service.NewSweetService(sweets, universes, characters, db, testLogger)
	universe, err := svc.Universe(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), universe.ID)
}

func TestDeviceService_UpdateTitleTakenBySomeoneElse(t *testing.T) {
	devices := new(mocks.DeviceStore)
	db, sqlMock := newTxDB(t)
	expectRollback(sqlMock)

	stored := &domain.Device{
		ID:           3,
		Slug:         "arc-reactor",
		Title:        "Arc Reactor",
		TypeOfDevice: "Power source",
		Price:        decimal.RequireFromString("999.99"),
		UniverseID:   1,
		CharacterID:  1,
	}
	devices.On("GetByID", mock.Anything, int64(3)).Return(stored, nil)
	devices.On("TitleExists", mock.Anything, "Mjolnir", int64(3)).Return(true, nil)

	update := *stored
	update.Slug = ""
	update.Title = "Mjolnir"

	err := service.NewDeviceService(devices, nil, nil, db, testLogger).Update(context.Background(), &update)
	assert.ErrorIs(t, err, service.ErrTitleTaken)
	devices.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeviceService_RejectsPriceOutOfRange(t *testing.T) {
	devices := new(mocks.DeviceStore)
	db, _ := newTxDB(t)

	device := &domain.Device{
		Title:        "Arc Reactor",
		TypeOfDevice: "Power source",
		Price:        decimal.RequireFromString("1000.00"),
		UniverseID:   1,
		CharacterID:  1,
	}
	err := service.NewDeviceService(devices, nil, nil, db, testLogger).Create(context.Background(), device)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestToyService_Character(t *testing.T) {
	toys := new(mocks.ToyStore)
	characters := new(mocks.CharacterStore)
	db, _ := newTxDB(t)

	toys.On("GetByID", mock.Anything, int64(1)).Return(&domain.Toy{ID: 1, CharacterID: 9}, nil)
	toys.On("GetByID", mock.Anything, int64(2)).Return(nil, store.ErrToyNotFound)
	characters.On("GetByID", mock.Anything, int64(9)).Return(&domain.Character{ID: 9, Name: "Groot"}, nil)

	svc := service.NewToyService(toys, nil, characters, db, testLogger)
	character, err := svc.Character(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Groot", character.Name)

	_, err = svc.Character(context.Background(), 2)
	assert.ErrorIs(t, err, store.ErrToyNotFound)
}
