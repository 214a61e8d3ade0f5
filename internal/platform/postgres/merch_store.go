package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/platform/logger"
	"github.com/phrazzld/geekshop-api/internal/store"
)

var (
	deviceColumns = []string{"id", "slug", "title", "type_of_device", "price", "universe_id", "character_id"}
	sweetColumns  = []string{"id", "slug", "title", "price", "weight", "character_id"}
	toyColumns    = []string{"id", "slug", "title", "age", "type_of_toy", "price", "universe_id", "character_id"}
)

func newComponentLogger(l *slog.Logger, component string) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With(slog.String("component", component))
}

// PostgresDeviceStore implements the store.DeviceStore interface.
type PostgresDeviceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDeviceStore creates a new PostgreSQL implementation of the DeviceStore interface.
func NewPostgresDeviceStore(db store.DBTX, logger *slog.Logger) *PostgresDeviceStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresDeviceStore{db: db, logger: newComponentLogger(logger, "device_store")}
}

var _ store.DeviceStore = (*PostgresDeviceStore)(nil)

func scanDevice(row rowScanner) (*domain.Device, error) {
	var d domain.Device
	err := row.Scan(&d.ID, &d.Slug, &d.Title, &d.TypeOfDevice, &d.Price, &d.UniverseID, &d.CharacterID)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// List implements store.DeviceStore.List
func (s *PostgresDeviceStore) List(ctx context.Context, page store.Page) ([]*domain.Device, error) {
	return selectMany(ctx, s.db, paginate(psql.Select(deviceColumns...).From("devices"), "id", page), scanDevice)
}

// GetByID implements store.DeviceStore.GetByID
func (s *PostgresDeviceStore) GetByID(ctx context.Context, id int64) (*domain.Device, error) {
	b := psql.Select(deviceColumns...).From("devices").Where(sq.Eq{"id": id})
	return selectOne(ctx, s.db, b, scanDevice, store.ErrDeviceNotFound)
}

// Create implements store.DeviceStore.Create
func (s *PostgresDeviceStore) Create(ctx context.Context, d *domain.Device) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	b := psql.Insert("devices").
		Columns("slug", "title", "type_of_device", "price", "universe_id", "character_id").
		Values(d.Slug, d.Title, d.TypeOfDevice, d.Price, d.UniverseID, d.CharacterID)
	if err := insertReturningID(ctx, s.db, b, &d.ID); err != nil {
		log.Warn("failed to create device", slog.Any("error", err))
		return err
	}

	log.Info("device created", slog.Int64("device_id", d.ID))
	return nil
}

// Update implements store.DeviceStore.Update
func (s *PostgresDeviceStore) Update(ctx context.Context, d *domain.Device) error {
	b := psql.Update("devices").
		SetMap(map[string]any{
			"slug":           d.Slug,
			"title":          d.Title,
			"type_of_device": d.TypeOfDevice,
			"price":          d.Price,
			"universe_id":    d.UniverseID,
			"character_id":   d.CharacterID,
		}).
		Where(sq.Eq{"id": d.ID})
	return execWrite(ctx, s.db, b, store.ErrDeviceNotFound)
}

// Delete implements store.DeviceStore.Delete
func (s *PostgresDeviceStore) Delete(ctx context.Context, id int64) error {
	return execWrite(ctx, s.db, psql.Delete("devices").Where(sq.Eq{"id": id}), store.ErrDeviceNotFound)
}

// TitleExists implements store.DeviceStore.TitleExists
func (s *PostgresDeviceStore) TitleExists(ctx context.Context, title string, excludeID int64) (bool, error) {
	return exists(ctx, s.db, psql.Select("1").From("devices").Where(sq.Eq{"title": title}).Where(notSelf(excludeID)))
}

// ListByUniverse implements store.DeviceStore.ListByUniverse
func (s *PostgresDeviceStore) ListByUniverse(ctx context.Context, universeID int64) ([]*domain.Device, error) {
	b := psql.Select(deviceColumns...).From("devices").Where(sq.Eq{"universe_id": universeID}).OrderBy("id")
	return selectMany(ctx, s.db, b, scanDevice)
}

// ListByCharacter implements store.DeviceStore.ListByCharacter
func (s *PostgresDeviceStore) ListByCharacter(ctx context.Context, characterID int64) ([]*domain.Device, error) {
	b := psql.Select(deviceColumns...).From("devices").Where(sq.Eq{"character_id": characterID}).OrderBy("id")
	return selectMany(ctx, s.db, b, scanDevice)
}

// WithTx implements store.DeviceStore.WithTx
func (s *PostgresDeviceStore) WithTx(tx *sql.Tx) store.DeviceStore {
	return &PostgresDeviceStore{db: tx, logger: s.logger}
}

// PostgresSweetStore implements the store.SweetStore interface.
type PostgresSweetStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSweetStore creates a new PostgreSQL implementation of the SweetStore interface.
func NewPostgresSweetStore(db store.DBTX, logger *slog.Logger) *PostgresSweetStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresSweetStore{db: db, logger: newComponentLogger(logger, "sweet_store")}
}

var _ store.SweetStore = (*PostgresSweetStore)(nil)

func scanSweet(row rowScanner) (*domain.Sweet, error) {
	var sw domain.Sweet
	if err := row.Scan(&sw.ID, &sw.Slug, &sw.Title, &sw.Price, &sw.Weight, &sw.CharacterID); err != nil {
		return nil, err
	}
	return &sw, nil
}

// List implements store.SweetStore.List
func (s *PostgresSweetStore) List(ctx context.Context, page store.Page) ([]*domain.Sweet, error) {
	return selectMany(ctx, s.db, paginate(psql.Select(sweetColumns...).From("sweets"), "id", page), scanSweet)
}

// GetByID implements store.SweetStore.GetByID
func (s *PostgresSweetStore) GetByID(ctx context.Context, id int64) (*domain.Sweet, error) {
	b := psql.Select(sweetColumns...).From("sweets").Where(sq.Eq{"id": id})
	return selectOne(ctx, s.db, b, scanSweet, store.ErrSweetNotFound)
}

// Create implements store.SweetStore.Create
func (s *PostgresSweetStore) Create(ctx context.Context, sw *domain.Sweet) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	b := psql.Insert("sweets").
		Columns("slug", "title", "price", "weight", "character_id").
		Values(sw.Slug, sw.Title, sw.Price, sw.Weight, sw.CharacterID)
	if err := insertReturningID(ctx, s.db, b, &sw.ID); err != nil {
		log.Warn("failed to create sweet", slog.Any("error", err))
		return err
	}

	log.Info("sweet created", slog.Int64("sweet_id", sw.ID))
	return nil
}

// Update implements store.SweetStore.Update
func (s *PostgresSweetStore) Update(ctx context.Context, sw *domain.Sweet) error {
	b := psql.Update("sweets").
		SetMap(map[string]any{
			"slug":         sw.Slug,
			"title":        sw.Title,
			"price":        sw.Price,
			"weight":       sw.Weight,
			"character_id": sw.CharacterID,
		}).
		Where(sq.Eq{"id": sw.ID})
	return execWrite(ctx, s.db, b, store.ErrSweetNotFound)
}

// Delete implements store.SweetStore.Delete
func (s *PostgresSweetStore) Delete(ctx context.Context, id int64) error {
	return execWrite(ctx, s.db, psql.Delete("sweets").Where(sq.Eq{"id": id}), store.ErrSweetNotFound)
}

// TitleExists implements store.SweetStore.TitleExists
func (s *PostgresSweetStore) TitleExists(ctx context.Context, title string, excludeID int64) (bool, error) {
	return exists(ctx, s.db, psql.Select("1").From("sweets").Where(sq.Eq{"title": title}).Where(notSelf(excludeID)))
}

// ListByCharacter implements store.SweetStore.ListByCharacter
func (s *PostgresSweetStore) ListByCharacter(ctx context.Context, characterID int64) ([]*domain.Sweet, error) {
	b := psql.Select(sweetColumns...).From("sweets").Where(sq.Eq{"character_id": characterID}).OrderBy("id")
	return selectMany(ctx, s.db, b, scanSweet)
}

// WithTx implements store.SweetStore.WithTx
func (s *PostgresSweetStore) WithTx(tx *sql.Tx) store.SweetStore {
	return &PostgresSweetStore{db: tx, logger: s.logger}
}

// PostgresToyStore implements the store.ToyStore interface.
type PostgresToyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresToyStore creates a new PostgreSQL implementation of the ToyStore interface.
func NewPostgresToyStore(db store.DBTX, logger *slog.Logger) *PostgresToyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresToyStore{db: db, logger: newComponentLogger(logger, "toy_store")}
}

var _ store.ToyStore = (*PostgresToyStore)(nil)

func scanToy(row rowScanner) (*domain.Toy, error) {
	var t domain.Toy
	err := row.Scan(&t.ID, &t.Slug, &t.Title, &t.Age, &t.TypeOfToy, &t.Price, &t.UniverseID, &t.CharacterID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List implements store.ToyStore.List
func (s *PostgresToyStore) List(ctx context.Context, page store.Page) ([]*domain.Toy, error) {
	return selectMany(ctx, s.db, paginate(psql.Select(toyColumns...).From("toys"), "id", page), scanToy)
}

// GetByID implements store.ToyStore.GetByID
func (s *PostgresToyStore) GetByID(ctx context.Context, id int64) (*domain.Toy, error) {
	b := psql.Select(toyColumns...).From("toys").Where(sq.Eq{"id": id})
	return selectOne(ctx, s.db, b, scanToy, store.ErrToyNotFound)
}

// Create implements store.ToyStore.Create
func (s *PostgresToyStore) Create(ctx context.Context, t *domain.Toy) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	b := psql.Insert("toys").
		Columns("slug", "title", "age", "type_of_toy", "price", "universe_id", "character_id").
		Values(t.Slug, t.Title, t.Age, t.TypeOfToy, t.Price, t.UniverseID, t.CharacterID)
	if err := insertReturningID(ctx, s.db, b, &t.ID); err != nil {
		log.Warn("failed to create toy", slog.Any("error", err))
		return err
	}

	log.Info("toy created", slog.Int64("toy_id", t.ID))
	return nil
}

// Update implements store.ToyStore.Update
func (s *PostgresToyStore) Update(ctx context.Context, t *domain.Toy) error {
	b := psql.Update("toys").
		SetMap(map[string]any{
			"slug":         t.Slug,
			"title":        t.Title,
			"age":          t.Age,
			"type_of_toy":  t.TypeOfToy,
			"price":        t.Price,
			"universe_id":  t.UniverseID,
			"character_id": t.CharacterID,
		}).
		Where(sq.Eq{"id": t.ID})
	return execWrite(ctx, s.db, b, store.ErrToyNotFound)
}

// Delete implements store.ToyStore.Delete
func (s *PostgresToyStore) Delete(ctx context.Context, id int64) error {
	return execWrite(ctx, s.db, psql.Delete("toys").Where(sq.Eq{"id": id}), store.ErrToyNotFound)
}

// TitleExists implements store.ToyStore.TitleExists
func (s *PostgresToyStore) TitleExists(ctx context.Context, title string, excludeID int64) (bool, error) {
	return exists(ctx, s.db, psql.Select("1").From("toys").Where(sq.Eq{"title": title}).Where(notSelf(excludeID)))
}

// ListByUniverse implements store.ToyStore.ListByUniverse
func (s *PostgresToyStore) ListByUniverse(ctx context.Context, universeID int64) ([]*domain.Toy, error) {
	b := psql.Select(toyColumns...).From("toys").Where(sq.Eq{"universe_id": universeID}).OrderBy("id")
	return selectMany(ctx, s.db, b, scanToy)
}

// ListByCharacter implements store.ToyStore.ListByCharacter
func (s *PostgresToyStore) ListByCharacter(ctx context.Context, characterID int64) ([]*domain.Toy, error) {
	b := psql.Select(toyColumns...).From("toys").Where(sq.Eq{"character_id": characterID}).OrderBy("id")
	return selectMany(ctx, s.db, b, scanToy)
}

// WithTx implements store.ToyStore.WithTx
func (s *PostgresToyStore) WithTx(tx *sql.Tx) store.ToyStore {
	return &PostgresToyStore{db: tx, logger: s.logger}
}
