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

// DeviceService manages devices. Titles are unique.
type DeviceService interface {
	List(ctx context.Context, page store.Page) ([]*domain.Device, error)
	Get(ctx context.Context, id int64) (*domain.Device, error)
	Create(ctx context.Context, device *domain.Device) error
	Update(ctx context.Context, device *domain.Device) error
	Delete(ctx context.Context, id int64) error
	Universe(ctx context.Context, id int64) (*domain.Universe, error)
	Character(ctx context.Context, id int64) (*domain.Character, error)
}

// SweetService manages sweets. A sweet's universe is the universe of its character.
type SweetService interface {
	List(ctx context.Context, page store.Page) ([]*domain.Sweet, error)
	Get(ctx context.Context, id int64) (*domain.Sweet, error)
	Create(ctx context.Context, sweet *domain.Sweet) error
	Update(ctx context.Context, sweet *domain.Sweet) error
	Delete(ctx context.Context, id int64) error
	Universe(ctx context.Context, id int64) (*domain.Universe, error)
	Character(ctx context.Context, id int64) (*domain.Character, error)
}

// ToyService manages toys. Titles are unique.
type ToyService interface {
	List(ctx context.Context, page store.Page) ([]*domain.Toy, error)
	Get(ctx context.Context, id int64) (*domain.Toy, error)
	Create(ctx context.Context, toy *domain.Toy) error
	Update(ctx context.Context, toy *domain.Toy) error
	Delete(ctx context.Context, id int64) error
	Universe(ctx context.Context, id int64) (*domain.Universe, error)
	Character(ctx context.Context, id int64) (*domain.Character, error)
}

// merchRefs resolves the universe and character a piece of merchandise points at.
type merchRefs struct {
	universes  store.UniverseStore
	characters store.CharacterStore
}

func (r merchRefs) universe(ctx context.Context, id int64) (*domain.Universe, error) {
	universe, err := r.universes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get universe: %w", err)
	}
	return universe, nil
}

func (r merchRefs) character(ctx context.Context, id int64) (*domain.Character, error) {
	character, err := r.characters.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	return character, nil
}

func logCreateFailure(log *slog.Logger, kind string, err error) {
	if errors.Is(err, store.ErrDuplicate) || errors.Is(err, store.ErrInvalidEntity) {
		return
	}
	log.Error("failed to create "+kind, slog.Any("error", err))
}

type deviceService struct {
	devices store.DeviceStore
	refs    merchRefs
	db      *sql.DB
	logger  *slog.Logger
}

var _ DeviceService = (*deviceService)(nil)

// NewDeviceService creates a new DeviceService.
func NewDeviceService(
	devices store.DeviceStore,
	universes store.UniverseStore,
	characters store.CharacterStore,
	db *sql.DB,
	logger *slog.Logger,
) DeviceService {
	return &deviceService{
		devices: devices,
		refs:    merchRefs{universes: universes, characters: characters},
		db:      db,
		logger:  componentLogger(logger, "device_service"),
	}
}

func (s *deviceService) List(ctx context.Context, page store.Page) ([]*domain.Device, error) {
	devices, err := s.devices.List(ctx, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	return devices, nil
}

func (s *deviceService) Get(ctx context.Context, id int64) (*domain.Device, error) {
	device, err := s.devices.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get device: %w", err)
	}
	return device, nil
}

func (s *deviceService) Create(ctx context.Context, device *domain.Device) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := prepareCreate(device); err != nil {
		return err
	}
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.devices.WithTx(tx)
		if err := ensureUnique(ctx, func(ctx context.Context) (bool, error) {
			return txStore.TitleExists(ctx, device.Title, 0)
		}, ErrTitleTaken); err != nil {
			return err
		}
		return txStore.Create(ctx, device)
	})
	if err != nil {
		logCreateFailure(log, "device", err)
		return fmt.Errorf("failed to create device: %w", err)
	}

	log.Info("device created", slog.Int64("device_id", device.ID), slog.String("slug", device.Slug))
	return nil
}

func (s *deviceService) Update(ctx context.Context, device *domain.Device) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.devices.WithTx(tx)
		existing, err := txStore.GetByID(ctx, device.ID)
		if err != nil {
			return err
		}
		if err := prepareUpdate(device, &device.Slug, existing.Slug); err != nil {
			return err
		}
		if err := ensureUnique(ctx, func(ctx context.Context) (bool, error) {
			return txStore.TitleExists(ctx, device.Title, device.ID)
		}, ErrTitleTaken); err != nil {
			return err
		}
		return txStore.Update(ctx, device)
	})
	if err != nil {
		return fmt.Errorf("failed to update device: %w", err)
	}
	return nil
}

func (s *deviceService) Delete(ctx context.Context, id int64) error {
	if err := s.devices.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("device deleted", slog.Int64("device_id", id))
	return nil
}

func (s *deviceService) Universe(ctx context.Context, id int64) (*domain.Universe, error) {
	device, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.refs.universe(ctx, device.UniverseID)
}

func (s *deviceService) Character(ctx context.Context, id int64) (*domain.Character, error) {
	device, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.refs.character(ctx, device.CharacterID)
}

type sweetService struct {
	sweets store.SweetStore
	refs   merchRefs
	db     *sql.DB
	logger *slog.Logger
}

var _ SweetService = (*sweetService)(nil)

// NewSweetService creates a new SweetService.
func NewSweetService(
	sweets store.SweetStore,
	universes store.UniverseStore,
	characters store.CharacterStore,
	db *sql.DB,
	logger *slog.Logger,
) SweetService {
	return &sweetService{
		sweets: sweets,
		refs:   merchRefs{universes: universes, characters: characters},
		db:     db,
		logger: componentLogger(logger, "sweet_service"),
	}
}

func (s *sweetService) List(ctx context.Context, page store.Page) ([]*domain.Sweet, error) {
	sweets, err := s.sweets.List(ctx, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("failed to list sweets: %w", err)
	}
	return sweets, nil
}

func (s *sweetService) Get(ctx context.Context, id int64) (*domain.Sweet, error) {
	sweet, err := s.sweets.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get sweet: %w", err)
	}
	return sweet, nil
}

func (s *sweetService) Create(ctx context.Context, sweet *domain.Sweet) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := prepareCreate(sweet); err != nil {
		return err
	}
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.sweets.WithTx(tx)
		if err := ensureUnique(ctx, func(ctx context.Context) (bool, error) {
			return txStore.TitleExists(ctx, sweet.Title, 0)
		}, ErrTitleTaken); err != nil {
			return err
		}
		return txStore.Create(ctx, sweet)
	})
	if err != nil {
		logCreateFailure(log, "sweet", err)
		return fmt.Errorf("failed to create sweet: %w", err)
	}

	log.Info("sweet created", slog.Int64("sweet_id", sweet.ID), slog.String("slug", sweet.Slug))
	return nil
}

func (s *sweetService) Update(ctx context.Context, sweet *domain.Sweet) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.sweets.WithTx(tx)
		existing, err := txStore.GetByID(ctx, sweet.ID)
		if err != nil {
			return err
		}
		if err := prepareUpdate(sweet, &sweet.Slug, existing.Slug); err != nil {
			return err
		}
		if err := ensureUnique(ctx, func(ctx context.Context) (bool, error) {
			return txStore.TitleExists(ctx, sweet.Title, sweet.ID)
		}, ErrTitleTaken); err != nil {
			return err
		}
		return txStore.Update(ctx, sweet)
	})
	if err != nil {
		return fmt.Errorf("failed to update sweet: %w", err)
	}
	return nil
}

func (s *sweetService) Delete(ctx context.Context, id int64) error {
	if err := s.sweets.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete sweet: %w", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("sweet deleted", slog.Int64("sweet_id", id))
	return nil
}

func (s *sweetService) Universe(ctx context.Context, id int64) (*domain.Universe, error) {
	character, err := s.Character(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.refs.universe(ctx, character.UniverseID)
}

func (s *sweetService) Character(ctx context.Context, id int64) (*domain.Character, error) {
	sweet, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.refs.character(ctx, sweet.CharacterID)
}

type toyService struct {
	toys   store.ToyStore
	refs   merchRefs
	db     *sql.DB
	logger *slog.Logger
}

var _ ToyService = (*toyService)(nil)

// NewToyService creates a new ToyService.
func NewToyService(
	toys store.ToyStore,
	universes store.UniverseStore,
	characters store.CharacterStore,
	db *sql.DB,
	logger *slog.Logger,
) ToyService {
	return &toyService{
		toys:   toys,
		refs:   merchRefs{universes: universes, characters: characters},
		db:     db,
		logger: componentLogger(logger, "toy_service"),
	}
}

func (s *toyService) List(ctx context.Context, page store.Page) ([]*domain.Toy, error) {
	toys, err := s.toys.List(ctx, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("failed to list toys: %w", err)
	}
	return toys, nil
}

func (s *toyService) Get(ctx context.Context, id int64) (*domain.Toy, error) {
	toy, err := s.toys.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get toy: %w", err)
	}
	return toy, nil
}

func (s *toyService) Create(ctx context.Context, toy *domain.Toy) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := prepareCreate(toy); err != nil {
		return err
	}
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.toys.WithTx(tx)
		if err := ensureUnique(ctx, func(ctx context.Context) (bool, error) {
			return txStore.TitleExists(ctx, toy.Title, 0)
		}, ErrTitleTaken); err != nil {
			return err
		}
		return txStore.Create(ctx, toy)
	})
	if err != nil {
		logCreateFailure(log, "toy", err)
		return fmt.Errorf("failed to create toy: %w", err)
	}

	log.Info("toy created", slog.Int64("toy_id", toy.ID), slog.String("slug", toy.Slug))
	return nil
}

func (s *toyService) Update(ctx context.Context, toy *domain.Toy) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.toys.WithTx(tx)
		existing, err := txStore.GetByID(ctx, toy.ID)
		if err != nil {
			return err
		}
		if err := prepareUpdate(toy, &toy.Slug, existing.Slug); err != nil {
			return err
		}
		if err := ensureUnique(ctx, func(ctx context.Context) (bool, error) {
			return txStore.TitleExists(ctx, toy.Title, toy.ID)
		}, ErrTitleTaken); err != nil {
			return err
		}
		return txStore.Update(ctx, toy)
	})
	if err != nil {
		return fmt.Errorf("failed to update toy: %w", err)
	}
	return nil
}

func (s *toyService) Delete(ctx context.Context, id int64) error {
	if err := s.toys.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete toy: %w", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("toy deleted", slog.Int64("toy_id", id))
	return nil
}

func (s *toyService) Universe(ctx context.Context, id int64) (*domain.Universe, error) {
	toy, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.refs.universe(ctx, toy.UniverseID)
}

func (s *toyService) Character(ctx context.Context, id int64) (*domain.Character, error) {
	toy, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.refs.character(ctx, toy.CharacterID)
}
