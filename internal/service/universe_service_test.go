package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/mocks"
	"github.com/phrazzld/geekshop-api/internal/service"
	"github.com/phrazzld/geekshop-api/internal/store"
)

type universeFixture struct {
	universes  *mocks.UniverseStore
	characters *mocks.CharacterStore
	devices    *mocks.DeviceStore
	toys       *mocks.ToyStore
	svc        service.UniverseService
}

func newUniverseFixture(t *testing.T) (*universeFixture, func() service.UniverseService) {
	f := &universeFixture{
		universes:  new(mocks.UniverseStore),
		characters: new(mocks.CharacterStore),
		devices:    new(mocks.DeviceStore),
		toys:       new(mocks.ToyStore),
	}
	t.Cleanup(func() {
		f.universes.AssertExpectations(t)
		f.characters.AssertExpectations(t)
	})
	db, _ := newTxDB(t)
	build := func() service.UniverseService {
		return service.NewUniverseService(f.universes, f.characters, f.devices, f.toys, db, testLogger)
	}
	return f, build
}

func TestUniverseService_Create(t *testing.T) {
	t.Run("derives slug and stores the universe", func(t *testing.T) {
		universes := new(mocks.UniverseStore)
		db, sqlMock := newTxDB(t)
		expectCommit(sqlMock)

		universes.On("TitleExists", mock.Anything, "Marvel", int64(0)).Return(false, nil)
		universes.On("Create", mock.Anything, mock.AnythingOfType("*domain.Universe")).
			Run(func(args mock.Arguments) { args.Get(1).(*domain.Universe).ID = 7 }).
			Return(nil)

		svc := service.NewUniverseService(universes, nil, nil, nil, db, testLogger)
		u := validUniverse()
		require.NoError(t, svc.Create(context.Background(), u))

		assert.Equal(t, int64(7), u.ID)
		assert.Equal(t, "marvel-1577836800", u.Slug)
		universes.AssertExpectations(t)
	})

	t.Run("title taken", func(t *testing.T) {
		universes := new(mocks.UniverseStore)
		db, sqlMock := newTxDB(t)
		expectRollback(sqlMock)

		universes.On("TitleExists", mock.Anything, "Marvel", int64(0)).Return(true, nil)

		svc := service.NewUniverseService(universes, nil, nil, nil, db, testLogger)
		err := svc.Create(context.Background(), validUniverse())

		assert.ErrorIs(t, err, service.ErrTitleTaken)
		assert.ErrorIs(t, err, store.ErrDuplicate)
		universes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid payload never opens a transaction", func(t *testing.T) {
		universes := new(mocks.UniverseStore)
		db, _ := newTxDB(t)

		svc := service.NewUniverseService(universes, nil, nil, nil, db, testLogger)
		err := svc.Create(context.Background(), &domain.Universe{Title: "DC", DateCreated: marvelDate})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "title", verr.Field)
	})
}

func TestUniverseService_Update(t *testing.T) {
	t.Run("keeps the stored slug", func(t *testing.T) {
		universes := new(mocks.UniverseStore)
		db, sqlMock := newTxDB(t)
		expectCommit(sqlMock)

		universes.On("GetByID", mock.Anything, int64(3)).
			Return(&domain.Universe{ID: 3, Slug: "marvel-1577836800", Title: "Marvel", DateCreated: marvelDate}, nil)
		universes.On("TitleExists", mock.Anything, "Marvel Comics", int64(3)).Return(false, nil)
		universes.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.Universe) bool {
			return u.ID == 3 && u.Slug == "marvel-1577836800" && u.Title == "Marvel Comics"
		})).Return(nil)

		svc := service.NewUniverseService(universes, nil, nil, nil, db, testLogger)
		u := &domain.Universe{ID: 3, Title: "Marvel Comics", DateCreated: marvelDate}
		require.NoError(t, svc.Update(context.Background(), u))
		universes.AssertExpectations(t)
	})

	t.Run("supplied slug replaces the stored one", func(t *testing.T) {
		universes := new(mocks.UniverseStore)
		db, sqlMock := newTxDB(t)
		expectCommit(sqlMock)

		universes.On("GetByID", mock.Anything, int64(3)).
			Return(&domain.Universe{ID: 3, Slug: "old-slug", Title: "Marvel", DateCreated: marvelDate}, nil)
		universes.On("TitleExists", mock.Anything, "Marvel", int64(3)).Return(false, nil)
		universes.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.Universe) bool {
			return u.Slug == "new-slug"
		})).Return(nil)

		svc := service.NewUniverseService(universes, nil, nil, nil, db, testLogger)
		u := &domain.Universe{ID: 3, Slug: "new-slug", Title: "Marvel", DateCreated: marvelDate}
		require.NoError(t, svc.Update(context.Background(), u))
		universes.AssertExpectations(t)
	})

	t.Run("missing universe", func(t *testing.T) {
		universes := new(mocks.UniverseStore)
		db, sqlMock := newTxDB(t)
		expectRollback(sqlMock)

		universes.On("GetByID", mock.Anything, int64(9)).Return(nil, store.ErrUniverseNotFound)

		svc := service.NewUniverseService(universes, nil, nil, nil, db, testLogger)
		err := svc.Update(context.Background(), &domain.Universe{ID: 9, Title: "Marvel", DateCreated: marvelDate})
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestUniverseService_SubResources(t *testing.T) {
	f, build := newUniverseFixture(t)
	svc := build()

	f.universes.On("GetByID", mock.Anything, int64(1)).Return(&domain.Universe{ID: 1}, nil)
	f.universes.On("GetByID", mock.Anything, int64(2)).Return(nil, store.ErrUniverseNotFound)
	f.characters.On("ListByUniverse", mock.Anything, int64(1)).
		Return([]*domain.Character{{ID: 5, Name: "Thor"}}, nil)

	characters, err := svc.Characters(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, characters, 1)
	assert.Equal(t, "Thor", characters[0].Name)

	_, err = svc.Characters(context.Background(), 2)
	assert.ErrorIs(t, err, store.ErrUniverseNotFound)
}

func TestUniverseService_ListNormalizesPage(t *testing.T) {
	f, build := newUniverseFixture(t)
	f.universes.On("List", mock.Anything, store.Page{Limit: store.DefaultPageLimit}).
		Return([]*domain.Universe{}, nil)

	universes, err := build().List(context.Background(), store.Page{})
	require.NoError(t, err)
	assert.Empty(t, universes)
}

func TestUniverseService_Delete(t *testing.T) {
	f, build := newUniverseFixture(t)
	f.universes.On("Delete", mock.Anything, int64(4)).Return(store.ErrUniverseNotFound)

	err := build().Delete(context.Background(), 4)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
