package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/geekshop-api/internal/config"
	"github.com/phrazzld/geekshop-api/internal/platform/postgres"
	"github.com/phrazzld/geekshop-api/internal/service"
	"github.com/phrazzld/geekshop-api/internal/service/auth"
)

// application holds the shared dependencies of the server so they can be
// wired once and released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService auth.JWTService

	users      service.UserService
	universes  service.UniverseService
	authors    service.AuthorService
	characters service.CharacterService
	comics     service.ComicsService
	devices    service.DeviceService
	sweets     service.SweetService
	toys       service.ToyService
	links      service.LinkService
}

// newApplication builds the stores and services on top of db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	userStore := postgres.NewPostgresUserStore(db, cfg.Auth.BCryptCost, logger)
	universeStore := postgres.NewPostgresUniverseStore(db, logger)
	authorStore := postgres.NewPostgresAuthorStore(db, logger)
	characterStore := postgres.NewPostgresCharacterStore(db, logger)
	comicsStore := postgres.NewPostgresComicsStore(db, logger)
	deviceStore := postgres.NewPostgresDeviceStore(db, logger)
	sweetStore := postgres.NewPostgresSweetStore(db, logger)
	toyStore := postgres.NewPostgresToyStore(db, logger)
	comicsAuthorStore := postgres.NewPostgresComicsAuthorStore(db, logger)
	comicsCharacterStore := postgres.NewPostgresComicsCharacterStore(db, logger)

	app.users = service.NewUserService(userStore, auth.NewBcryptVerifier(cfg.Auth.BCryptCost), db, logger)
	app.universes = service.NewUniverseService(universeStore, characterStore, deviceStore, toyStore, db, logger)
	app.authors = service.NewAuthorService(authorStore, comicsAuthorStore, characterStore, comicsStore, db, logger)
	app.characters = service.NewCharacterService(service.CharacterStores{
		Characters: characterStore,
		Universes:  universeStore,
		Authors:    authorStore,
		Devices:    deviceStore,
		Sweets:     sweetStore,
		Toys:       toyStore,
		Comics:     comicsStore,
	}, db, logger)
	app.comics = service.NewComicsService(
		comicsStore,
		comicsAuthorStore,
		comicsCharacterStore,
		authorStore,
		characterStore,
		db,
		logger,
	)
	app.devices = service.NewDeviceService(deviceStore, universeStore, characterStore, db, logger)
	app.sweets = service.NewSweetService(sweetStore, universeStore, characterStore, db, logger)
	app.toys = service.NewToyService(toyStore, universeStore, characterStore, db, logger)
	app.links = service.NewLinkService(comicsAuthorStore, comicsCharacterStore, logger)

	logger.Info("application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled, then shuts down and releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases the database pool.
func (app *application) cleanup() {
	if app.db != nil {
		closeDB(app.db, app.logger)
	}
	app.logger.Info("application shutdown completed")
}
