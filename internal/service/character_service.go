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

// CharacterService manages characters and resolves their relations.
// Unknown universe or author references surface as store.ErrInvalidEntity.
type CharacterService interface {
	List(ctx context.Context, page store.Page) ([]*domain.Character, error)
	Get(ctx context.Context, id int64) (*domain.Character, error)
	Create(ctx context.Context, character *domain.Character) error
	Update(ctx context.Context, character *domain.Character) error
	Delete(ctx context.Context, id int64) error

	Universe(ctx context.Context, id int64) (*domain.Universe, error)
	Author(ctx context.Context, id int64) (*domain.Author, error)
	Devices(ctx context.Context, id int64) ([]*domain.Device, error)
	Sweets(ctx context.Context, id int64) ([]*domain.Sweet, error)
	Toys(ctx context.Context, id int64) ([]*domain.Toy, error)
	Comics(ctx context.Context, id int64) ([]*domain.Comics, error)
}

// CharacterStores groups the stores a CharacterService reads from.
type CharacterStores struct {
	Characters store.CharacterStore
	Universes  store.UniverseStore
	Authors    store.AuthorStore
	Devices    store.DeviceStore
	Sweets     store.SweetStore
	Toys       store.ToyStore
	Comics     store.ComicsStore
}

type characterService struct {
	stores CharacterStores
	db     *sql.DB
	logger *slog.Logger
}

var _ CharacterService = (*characterService)(nil)

// NewCharacterService creates a new CharacterService.
func NewCharacterService(stores CharacterStores, db *sql.DB, logger *slog.Logger) CharacterService {
	return &characterService{
		stores: stores,
		db:     db,
		logger: componentLogger(logger, "character_service"),
	}
}

func (s *characterService) List(ctx context.Context, page store.Page) ([]*domain.Character, error) {
	characters, err := s.stores.Characters.List(ctx, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return characters, nil
}

func (s *characterService) Get(ctx context.Context, id int64) (*domain.Character, error) {
	character, err := s.stores.Characters.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	return character, nil
}

func (s *characterService) Create(ctx context.Context, character *domain.Character) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := prepareCreate(character); err != nil {
		return err
	}
	if err := s.stores.Characters.Create(ctx, character); err != nil {
		if !errors.Is(err, store.ErrDuplicate) && !errors.Is(err, store.ErrInvalidEntity) {
			log.Error("failed to create character", slog.Any("error", err))
		}
		return fmt.Errorf("failed to create character: %w", err)
	}

	log.Info("character created", slog.Int64("character_id", character.ID), slog.String("slug", character.Slug))
	return nil
}

func (s *characterService) Update(ctx context.Context, character *domain.Character) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.stores.Characters.WithTx(tx)
		existing, err := txStore.GetByID(ctx, character.ID)
		if err != nil {
			return err
		}
		if err := prepareUpdate(character, &character.Slug, existing.Slug); err != nil {
			return err
		}
		return txStore.Update(ctx, character)
	})
	if err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("character updated", slog.Int64("character_id", character.ID))
	return nil
}

func (s *characterService) Delete(ctx context.Context, id int64) error {
	if err := s.stores.Characters.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("character deleted", slog.Int64("character_id", id))
	return nil
}

func (s *characterService) Universe(ctx context.Context, id int64) (*domain.Universe, error) {
	character, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	universe, err := s.stores.Universes.GetByID(ctx, character.UniverseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get character universe: %w", err)
	}
	return universe, nil
}

func (s *characterService) Author(ctx context.Context, id int64) (*domain.Author, error) {
	character, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	author, err := s.stores.Authors.GetByID(ctx, character.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get character author: %w", err)
	}
	return author, nil
}

func (s *characterService) Devices(ctx context.Context, id int64) ([]*domain.Device, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	devices, err := s.stores.Devices.ListByCharacter(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list character devices: %w", err)
	}
	return devices, nil
}

func (s *characterService) Sweets(ctx context.Context, id int64) ([]*domain.Sweet, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	sweets, err := s.stores.Sweets.ListByCharacter(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list character sweets: %w", err)
	}
	return sweets, nil
}

func (s *characterService) Toys(ctx context.Context, id int64) ([]*domain.Toy, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	toys, err := s.stores.Toys.ListByCharacter(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list character toys: %w", err)
	}
	return toys, nil
}

func (s *characterService) Comics(ctx context.Context, id int64) ([]*domain.Comics, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	comics, err := s.stores.Comics.ListByCharacter(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list character comics: %w", err)
	}
	return comics, nil
}
