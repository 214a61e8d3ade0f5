package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/platform/logger"
	"github.com/phrazzld/geekshop-api/internal/store"
)

// LinkService manages the comics_authors and comics_characters join rows
// directly. Linking an existing pair returns store.ErrLinkExists; linking to
// a missing comics, author or character returns store.ErrInvalidEntity.
type LinkService interface {
	ListComicsAuthors(ctx context.Context, page store.Page) ([]domain.ComicsAuthor, error)
	LinkComicsAuthor(ctx context.Context, link domain.ComicsAuthor) error
	UnlinkComicsAuthor(ctx context.Context, link domain.ComicsAuthor) error

	ListComicsCharacters(ctx context.Context, page store.Page) ([]domain.ComicsCharacter, error)
	GetComicsCharacter(ctx context.Context, link domain.ComicsCharacter) (domain.ComicsCharacter, error)
	LinkComicsCharacter(ctx context.Context, link domain.ComicsCharacter) error
	// UpdateComicsCharacter re-points the link from to the pair to.
	UpdateComicsCharacter(ctx context.Context, from, to domain.ComicsCharacter) error
	UnlinkComicsCharacter(ctx context.Context, link domain.ComicsCharacter) error
}

type linkService struct {
	comicsAuthors    store.ComicsAuthorStore
	comicsCharacters store.ComicsCharacterStore
	logger           *slog.Logger
}

var _ LinkService = (*linkService)(nil)

// NewLinkService creates a new LinkService.
func NewLinkService(
	comicsAuthors store.ComicsAuthorStore,
	comicsCharacters store.ComicsCharacterStore,
	logger *slog.Logger,
) LinkService {
	return &linkService{
		comicsAuthors:    comicsAuthors,
		comicsCharacters: comicsCharacters,
		logger:           componentLogger(logger, "link_service"),
	}
}

func (s *linkService) ListComicsAuthors(ctx context.Context, page store.Page) ([]domain.ComicsAuthor, error) {
	links, err := s.comicsAuthors.List(ctx, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("failed to list comics authors: %w", err)
	}
	return links, nil
}

func (s *linkService) LinkComicsAuthor(ctx context.Context, link domain.ComicsAuthor) error {
	if err := link.Validate(); err != nil {
		return err
	}
	if err := s.comicsAuthors.Create(ctx, link); err != nil {
		return fmt.Errorf("failed to link comics author: %w", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("comics author linked",
		slog.Int64("comics_id", link.ComicsID),
		slog.Int64("author_id", link.AuthorID))
	return nil
}

func (s *linkService) UnlinkComicsAuthor(ctx context.Context, link domain.ComicsAuthor) error {
	if err := s.comicsAuthors.Delete(ctx, link); err != nil {
		return fmt.Errorf("failed to unlink comics author: %w", err)
	}
	return nil
}

func (s *linkService) ListComicsCharacters(ctx context.Context, page store.Page) ([]domain.ComicsCharacter, error) {
	links, err := s.comicsCharacters.List(ctx, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("failed to list comics characters: %w", err)
	}
	return links, nil
}

func (s *linkService) GetComicsCharacter(
	ctx context.Context,
	link domain.ComicsCharacter,
) (domain.ComicsCharacter, error) {
	found, err := s.comicsCharacters.Get(ctx, link)
	if err != nil {
		return domain.ComicsCharacter{}, fmt.Errorf("failed to get comics character: %w", err)
	}
	return found, nil
}

func (s *linkService) LinkComicsCharacter(ctx context.Context, link domain.ComicsCharacter) error {
	if err := link.Validate(); err != nil {
		return err
	}
	if err := s.comicsCharacters.Create(ctx, link); err != nil {
		return fmt.Errorf("failed to link comics character: %w", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("comics character linked",
		slog.Int64("comics_id", link.ComicsID),
		slog.Int64("character_id", link.CharacterID))
	return nil
}

func (s *linkService) UpdateComicsCharacter(ctx context.Context, from, to domain.ComicsCharacter) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if err := s.comicsCharacters.Update(ctx, from, to); err != nil {
		return fmt.Errorf("failed to update comics character: %w", err)
	}
	return nil
}

func (s *linkService) UnlinkComicsCharacter(ctx context.Context, link domain.ComicsCharacter) error {
	if err := s.comicsCharacters.Delete(ctx, link); err != nil {
		return fmt.Errorf("failed to unlink comics character: %w", err)
	}
	return nil
}
