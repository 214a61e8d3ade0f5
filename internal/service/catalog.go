package service

import (
	"context"
	"fmt"
	"log/slog"
)

// catalogEntity is implemented by every catalog domain type.
type catalogEntity interface {
	EnsureSlug()
	Validate() error
}

// prepareCreate fills in a missing slug and validates the entity.
func prepareCreate(e catalogEntity) error {
	e.EnsureSlug()
	return e.Validate()
}

// prepareUpdate keeps the stored slug unless a new one is supplied, then validates.
func prepareUpdate(e catalogEntity, slug *string, storedSlug string) error {
	if *slug == "" {
		*slug = storedSlug
	}
	return e.Validate()
}

// ensureUnique runs an existence check and returns taken when it reports a match.
func ensureUnique(ctx context.Context, exists func(ctx context.Context) (bool, error), taken error) error {
	found, err := exists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check uniqueness: %w", err)
	}
	if found {
		return taken
	}
	return nil
}

// componentLogger returns logger scoped to component, falling back to slog.Default.
func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(slog.String("component", component))
}
