package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/platform/logger"
	"github.com/phrazzld/geekshop-api/internal/store"
)

// ComicsService manages comics together with their author and character links.
type ComicsService interface {
	// List returns a page of comics without link ids.
	List(ctx context.Context, page store.Page) ([]*domain.Comics, error)

	// Get returns the comics with AuthorIDs and CharacterIDs filled in.
	Get(ctx context.Context, id int64) (*domain.Comics, error)

	// Create stores the comics and its links in one transaction.
	Create(ctx context.Context, comics *domain.Comics) error

	// Update replaces the comics. Nil link slices leave the corresponding
	// links untouched; non-nil slices replace them.
	Update(ctx context.Context, comics *domain.Comics) error

	Delete(ctx context.Context, id int64) error
	Authors(ctx context.Context, id int64) ([]*domain.Author, error)
	Characters(ctx context.Context, id int64) ([]*domain.Character, error)
}

type comicsService struct {
	comics         store.ComicsStore
	authorLinks    store.ComicsAuthorStore
	characterLinks store.ComicsCharacterStore
	authors        store.AuthorStore
	characters     store.CharacterStore
	db             *sql.DB
	logger         *slog.Logger
}

var _ ComicsService = (*comicsService)(nil)

// NewComicsService creates a new ComicsService.
func NewComicsService(
	comics store.ComicsStore,
	authorLinks store.ComicsAuthorStore,
	characterLinks store.ComicsCharacterStore,
	authors store.AuthorStore,
	characters store.CharacterStore,
	db *sql.DB,
	logger *slog.Logger,
) ComicsService {
	return &comicsService{
		comics:         comics,
		authorLinks:    authorLinks,
		characterLinks: characterLinks,
		authors:        authors,
		characters:     characters,
		db:             db,
		logger:         componentLogger(logger, "comics_service"),
	}
}

func (s *comicsService) List(ctx context.Context, page store.Page) ([]*domain.Comics, error) {
	comics, err := s.comics.List(ctx, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("failed to list comics: %w", err)
	}
	return comics, nil
}

func (s *comicsService) Get(ctx context.Context, id int64) (*domain.Comics, error) {
	comics, err := s.comics.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comics: %w", err)
	}
	if err := loadComicsLinks(ctx, comics, s.authorLinks, s.characterLinks); err != nil {
		return nil, err
	}
	return comics, nil
}

func (s *comicsService) Create(ctx context.Context, comics *domain.Comics) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := prepareCreate(comics); err != nil {
		return err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txComics := s.comics.WithTx(tx)
		if err := ensureUnique(ctx, func(ctx context.Context) (bool, error) {
			return txComics.TitleExists(ctx, comics.Title, 0)
		}, ErrTitleTaken); err != nil {
			return err
		}
		if err := txComics.Create(ctx, comics); err != nil {
			return err
		}
		return s.replaceLinks(ctx, tx, comics)
	})
	if err != nil {
		if !errors.Is(err, store.ErrDuplicate) && !errors.Is(err, store.ErrInvalidEntity) {
			log.Error("failed to create comics", slog.Any("error", err))
		}
		return fmt.Errorf("failed to create comics: %w", err)
	}

	log.Info("comics created",
		slog.Int64("comics_id", comics.ID),
		slog.Int("authors_count", len(comics.AuthorIDs)),
		slog.Int("characters_count", len(comics.CharacterIDs)))
	return nil
}

func (s *comicsService) Update(ctx context.Context, comics *domain.Comics) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txComics := s.comics.WithTx(tx)
		existing, err := txComics.GetByID(ctx, comics.ID)
		if err != nil {
			return err
		}
		if err := prepareUpdate(comics, &comics.Slug, existing.Slug); err != nil {
			return err
		}
		if err := ensureUnique(ctx, func(ctx context.Context) (bool, error) {
			return txComics.TitleExists(ctx, comics.Title, comics.ID)
		}, ErrTitleTaken); err != nil {
			return err
		}
		if err := txComics.Update(ctx, comics); err != nil {
			return err
		}
		return s.replaceLinks(ctx, tx, comics)
	})
	if err != nil {
		return fmt.Errorf("failed to update comics: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("comics updated", slog.Int64("comics_id", comics.ID))
	return nil
}

// replaceLinks rewrites the join rows named by non-nil link slices and then
// reloads both slices from the transaction.
func (s *comicsService) replaceLinks(ctx context.Context, tx *sql.Tx, comics *domain.Comics) error {
	authorLinks := s.authorLinks.WithTx(tx)
	characterLinks := s.characterLinks.WithTx(tx)

	if comics.AuthorIDs != nil {
		if err := authorLinks.ReplaceForComics(ctx, comics.ID, comics.AuthorIDs); err != nil {
			return err
		}
	}
	if comics.CharacterIDs != nil {
		if err := characterLinks.ReplaceForComics(ctx, comics.ID, comics.CharacterIDs); err != nil {
			return err
		}
	}
	return loadComicsLinks(ctx, comics, authorLinks, characterLinks)
}

func loadComicsLinks(
	ctx context.Context,
	comics *domain.Comics,
	authorLinks store.ComicsAuthorStore,
	characterLinks store.ComicsCharacterStore,
) error {
	var err error
	if comics.AuthorIDs, err = authorLinks.AuthorIDsByComics(ctx, comics.ID); err != nil {
		return fmt.Errorf("failed to get comics authors: %w", err)
	}
	if comics.CharacterIDs, err = characterLinks.CharacterIDsByComics(ctx, comics.ID); err != nil {
		return fmt.Errorf("failed to get comics characters: %w", err)
	}
	return nil
}

func (s *comicsService) Delete(ctx context.Context, id int64) error {
	if err := s.comics.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete comics: %w", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("comics deleted", slog.Int64("comics_id", id))
	return nil
}

func (s *comicsService) Authors(ctx context.Context, id int64) ([]*domain.Author, error) {
	if _, err := s.comics.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to get comics: %w", err)
	}
	authors, err := s.authors.ListByComics(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list comics authors: %w", err)
	}
	return authors, nil
}

func (s *comicsService) Characters(ctx context.Context, id int64) ([]*domain.Character, error) {
	if _, err := s.comics.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to get comics: %w", err)
	}
	characters, err := s.characters.ListByComics(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list comics characters: %w", err)
	}
	return characters, nil
}
