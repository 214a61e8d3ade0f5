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

func TestLinkService_ComicsAuthors(t *testing.T) {
	comicsAuthors := new(mocks.ComicsAuthorStore)
	svc := service.NewLinkService(comicsAuthors, new(mocks.ComicsCharacterStore), testLogger)

	link := domain.ComicsAuthor{ComicsID: 1, AuthorID: 2}
	comicsAuthors.On("Create", mock.Anything, link).Return(nil).Once()
	comicsAuthors.On("Create", mock.Anything, link).Return(store.ErrLinkExists).Once()
	comicsAuthors.On("Delete", mock.Anything, link).Return(store.ErrLinkNotFound)

	require.NoError(t, svc.LinkComicsAuthor(context.Background(), link))
	assert.ErrorIs(t, svc.LinkComicsAuthor(context.Background(), link), store.ErrDuplicate)
	assert.ErrorIs(t, svc.UnlinkComicsAuthor(context.Background(), link), store.ErrNotFound)

	err := svc.LinkComicsAuthor(context.Background(), domain.ComicsAuthor{ComicsID: 1})
	assert.ErrorIs(t, err, domain.ErrValidation)
	comicsAuthors.AssertExpectations(t)
}

func TestLinkService_UpdateComicsCharacter(t *testing.T) {
	comicsCharacters := new(mocks.ComicsCharacterStore)
	svc := service.NewLinkService(new(mocks.ComicsAuthorStore), comicsCharacters, testLogger)

	from := domain.ComicsCharacter{ComicsID: 1, CharacterID: 2}
	to := domain.ComicsCharacter{ComicsID: 1, CharacterID: 3}
	comicsCharacters.On("Update", mock.Anything, from, to).Return(nil)

	require.NoError(t, svc.UpdateComicsCharacter(context.Background(), from, to))

	err := svc.UpdateComicsCharacter(context.Background(), from, domain.ComicsCharacter{CharacterID: 3})
	assert.ErrorIs(t, err, domain.ErrValidation)
	comicsCharacters.AssertExpectations(t)
}

func TestLinkService_ListNormalizesPage(t *testing.T) {
	comicsCharacters := new(mocks.ComicsCharacterStore)
	svc := service.NewLinkService(new(mocks.ComicsAuthorStore), comicsCharacters, testLogger)

	comicsCharacters.On("List", mock.Anything, store.Page{Limit: store.MaxPageLimit, Offset: 10}).
		Return([]domain.ComicsCharacter{{ComicsID: 1, CharacterID: 1}}, nil)

	links, err := svc.ListComicsCharacters(context.Background(), store.Page{Limit: 5000, Offset: 10})
	require.NoError(t, err)
	assert.Len(t, links, 1)
}
