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

// UniverseService manages universes and lists what belongs to them.
type UniverseService interface {
	List(ctx context.Context, page store.Page) ([]*domain.Universe, error)

	// Get returns store.ErrUniverseNotFound if the universe does not exist.
	Get(ctx context.Context, id int64) (*domain.Universe, error)

	// Create derives the slug when absent, validates the universe and
	// returns ErrTitleTaken if the title is in use.
	Create(ctx context.Context, universe *domain.Universe) error

	// Update replaces the universe identified by universe.ID. The stored slug
	// is kept unless universe.Slug is set.
	Update(ctx context.Context, universe *domain.Universe) error

	// Delete removes the universe together with its characters, devices and toys.
	Delete(ctx context.Context, id int64) error

	Characters(ctx context.Context, id int64) ([]*domain.Character, error)
	Devices(ctx context.Context, id int64) ([]*domain.Device, error)
	Toys(ctx context.Context, id int64) ([]*domain.Toy, error)
}

type universeService struct {
	universes  store.UniverseStore
	characters store.CharacterStore
	devices    store.DeviceStore
	toys       store.ToyStore
	db         *sql.DB
	logger     *slog.Logger
}

var _ UniverseService = (*universeService)(nil)

// NewUniverseService creates a new UniverseService.
func NewUniverseService(
	universes store.UniverseStore,
	characters store.CharacterStore,
	devices store.DeviceStore,
	toys store.ToyStore,
	db *sql.DB,
	logger *slog.Logger,
) UniverseService {
	return &universeService{
		universes:  universes,
		characters: characters,
		devices:    devices,
		toys:       toys,
		db:         db,
		logger:     componentLogger(logger, "universe_service"),
	}
}

func (s *universeService) List(ctx context.Context, page store.Page) ([]*domain.Universe, error) {
	universes, err := s.universes.List(ctx, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("failed to list universes: %w", err)
	}
	return universes, nil
}

func (s *universeService) Get(ctx context.Context, id int64) (*domain.Universe, error) {
	universe, err := s.universes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get universe: %w", err)
	}
	return universe, nil
}

func (s *universeService) Create(ctx context.Context, universe *domain.Universe) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := prepareCreate(universe); err != nil {
		return err
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.universes.WithTx(tx)
		if err := ensureUnique(ctx, func(ctx context.Context) (bool, error) {
			return txStore.TitleExists(ctx, universe.Title, 0)
		}, ErrTitleTaken); err != nil {
			return err
		}
		return txStore.Create(ctx, universe)
	})
	if err != nil {
		if !errors.Is(err, store.ErrDuplicate) {
			log.Error("failed to create universe", slog.Any("error", err), slog.String("title", universe.Title))
		}
		return fmt.Errorf("failed to create universe: %w", err)
	}

	log.Info("universe created", slog.Int64("universe_id", universe.ID), slog.String("slug", universe.Slug))
	return nil
}

func (s *universeService) Update(ctx context.Context, universe *domain.Universe) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.universes.WithTx(tx)
		existing, err := txStore.GetByID(ctx, universe.ID)
		if err != nil {
			return err
		}
		if err := prepareUpdate(universe, &universe.Slug, existing.Slug); err != nil {
			return err
		}
		if err := ensureUnique(ctx, func(ctx context.Context) (bool, error) {
			return txStore.TitleExists(ctx, universe.Title, universe.ID)
		}, ErrTitleTaken); err != nil {
			return err
		}
		return txStore.Update(ctx, universe)
	})
	if err != nil {
		return fmt.Errorf("failed to update universe: %w", err)
	}

	log.Debug("universe updated", slog.Int64("universe_id", universe.ID))
	return nil
}

func (s *universeService) Delete(ctx context.Context, id int64) error {
	if err := s.universes.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete universe: %w", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("universe deleted", slog.Int64("universe_id", id))
	return nil
}

func (s *universeService) Characters(ctx context.Context, id int64) ([]*domain.Character, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	characters, err := s.characters.ListByUniverse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list universe characters: %w", err)
	}
	return characters, nil
}

func (s *universeService) Devices(ctx context.Context, id int64) ([]*domain.Device, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	devices, err := s.devices.ListByUniverse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list universe devices: %w", err)
	}
	return devices, nil
}

func (s *universeService) Toys(ctx context.Context, id int64) ([]*domain.Toy, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	toys, err := s.toys.ListByUniverse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list universe toys: %w", err)
	}
	return toys, nil
}
