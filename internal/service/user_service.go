package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/platform/logger"
	"github.com/phrazzld/geekshop-api/internal/service/auth"
	"github.com/phrazzld/geekshop-api/internal/store"
)

// UserService provides user registration, lookup and credential checks.
type UserService interface {
	// GetUser retrieves a user by their ID
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// GetUserByEmail retrieves a user by their email address
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// CreateUser registers a new user. It returns ErrPasswordMismatch when
	// confirm differs from password and store.ErrEmailExists for a taken email.
	CreateUser(ctx context.Context, name, email, password, confirm string) (*domain.User, error)

	// Authenticate checks an email and password pair and returns the user.
	// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore        store.UserStore
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
	db               *sql.DB
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	passwordVerifier auth.PasswordVerifier,
	db *sql.DB,
	logger *slog.Logger,
) UserService {
	return &UserServiceImpl{
		userStore:        userStore,
		passwordVerifier: passwordVerifier,
		db:               db,
		logger:           componentLogger(logger, "user_service"),
	}
}

// GetUser retrieves a user by their ID
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Error("failed to retrieve user", slog.Any("error", err), slog.String("user_id", userID.String()))
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	log.Debug("retrieved user successfully", slog.String("user_id", userID.String()))
	return user, nil
}

// GetUserByEmail retrieves a user by their email address
func (s *UserServiceImpl) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).Debug("user not found by email")
		} else {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to retrieve user by email",
				slog.Any("error", err))
		}
		return nil, fmt.Errorf("failed to retrieve user by email: %w", err)
	}
	return user, nil
}

// CreateUser creates a new user inside a transaction.
func (s *UserServiceImpl) CreateUser(
	ctx context.Context,
	name, email, password, confirm string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if password != confirm {
		return nil, ErrPasswordMismatch
	}

	user, err := domain.NewUser(name, email, password)
	if err != nil {
		log.Debug("rejected user registration", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("attempted to create user with existing email")
		} else {
			log.Error("failed to save user to database", slog.Any("error", err))
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user created successfully", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Authenticate verifies the password of the user registered with email.
func (s *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.passwordVerifier.CompareMissing(password)
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to load user for authentication", slog.Any("error", err))
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.passwordVerifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("password mismatch", slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
