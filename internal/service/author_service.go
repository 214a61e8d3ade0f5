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

// AuthorService manages authors and their comics links.
type AuthorService interface {
	// List returns a page of authors without their comics ids.
	List(ctx context.Context, page store.Page) ([]*domain.Author, error)

	// Get returns the author with ComicsIDs filled in.
	Get(ctx context.Context, id int64) (*domain.Author, error)

	// Create stores the author and, in the same transaction, links it to
	// author.ComicsIDs. Returns ErrNameTaken for a duplicate name and surname.
	Create(ctx context.Context, author *domain.Author) error

	// Update replaces the author. A nil ComicsIDs leaves the links untouched;
	// a non-nil slice becomes the exact set of linked comics.
	Update(ctx context.Context, author *domain.Author) error

	Delete(ctx context.Context, id int64) error
	Characters(ctx context.Context, id int64) ([]*domain.Character, error)
	Comics(ctx context.Context, id int64) ([]*domain.Comics, error)
}

type authorService struct {
	authors    store.AuthorStore
	links      store.ComicsAuthorStore
	characters store.CharacterStore
	comics     store.ComicsStore
	db         *sql.DB
	logger     *slog.Logger
}

var _ AuthorService = (*authorService)(nil)

// NewAuthorService creates a new AuthorService.
func NewAuthorService(
	authors store.AuthorStore,
	links store.ComicsAuthorStore,
	characters store.CharacterStore,
	comics store.ComicsStore,
	db *sql.DB,
	logger *slog.Logger,
) AuthorService {
	return &authorService{
		authors:    authors,
		links:      links,
		characters: characters,
		comics:     comics,
		db:         db,
		logger:     componentLogger(logger, "author_service"),
	}
}

func (s *authorService) List(ctx context.Context, page store.Page) ([]*domain.Author, error) {
	authors, err := s.authors.List(ctx, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	return authors, nil
}

func (s *authorService) Get(ctx context.Context, id int64) (*domain.Author, error) {
	author, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	author.ComicsIDs, err = s.links.ComicsIDsByAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get author comics: %w", err)
	}
	return author, nil
}

func (s *authorService) Create(ctx context.Context, author *domain.Author) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := prepareCreate(author); err != nil {
		return err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txAuthors := s.authors.WithTx(tx)
		if err := ensureUnique(ctx, func(ctx context.Context) (bool, error) {
			return txAuthors.NameExists(ctx, author.Name, author.Surname, 0)
		}, ErrNameTaken); err != nil {
			return err
		}
		if err := txAuthors.Create(ctx, author); err != nil {
			return err
		}
		if len(author.ComicsIDs) == 0 {
			return nil
		}
		txLinks := s.links.WithTx(tx)
		if err := txLinks.ReplaceForAuthor(ctx, author.ID, author.ComicsIDs); err != nil {
			return err
		}
		ids, err := txLinks.ComicsIDsByAuthor(ctx, author.ID)
		if err != nil {
			return err
		}
		author.ComicsIDs = ids
		return nil
	})
	if err != nil {
		if !errors.Is(err, store.ErrDuplicate) && !errors.Is(err, store.ErrInvalidEntity) {
			log.Error("failed to create author", slog.Any("error", err))
		}
		return fmt.Errorf("failed to create author: %w", err)
	}

	log.Info("author created",
		slog.Int64("author_id", author.ID),
		slog.Int("comics_count", len(author.ComicsIDs)))
	return nil
}

func (s *authorService) Update(ctx context.Context, author *domain.Author) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txAuthors := s.authors.WithTx(tx)
		existing, err := txAuthors.GetByID(ctx, author.ID)
		if err != nil {
			return err
		}
		if err := prepareUpdate(author, &author.Slug, existing.Slug); err != nil {
			return err
		}
		if err := ensureUnique(ctx, func(ctx context.Context) (bool, error) {
			return txAuthors.NameExists(ctx, author.Name, author.Surname, author.ID)
		}, ErrNameTaken); err != nil {
			return err
		}
		if err := txAuthors.Update(ctx, author); err != nil {
			return err
		}
		txLinks := s.links.WithTx(tx)
		if author.ComicsIDs != nil {
			if err := txLinks.ReplaceForAuthor(ctx, author.ID, author.ComicsIDs); err != nil {
				return err
			}
		}
		author.ComicsIDs, err = txLinks.ComicsIDsByAuthor(ctx, author.ID)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("author updated", slog.Int64("author_id", author.ID))
	return nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if err := s.authors.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("author deleted", slog.Int64("author_id", id))
	return nil
}

func (s *authorService) Characters(ctx context.Context, id int64) ([]*domain.Character, error) {
	if _, err := s.authors.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	characters, err := s.characters.ListByAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list author characters: %w", err)
	}
	return characters, nil
}

func (s *authorService) Comics(ctx context.Context, id int64) ([]*domain.Comics, error) {
	if _, err := s.authors.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	comics, err := s.comics.ListByAuthor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list author comics: %w", err)
	}
	return comics, nil
}
