package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrUniverseNotFound, ErrToyNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., two comics with the same title).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when the database rejects a row, for example
	// because a referenced universe or character does not exist.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	ErrUserNotFound      = fmt.Errorf("%w: user", ErrNotFound)
	ErrUniverseNotFound  = fmt.Errorf("%w: universe", ErrNotFound)
	ErrAuthorNotFound    = fmt.Errorf("%w: author", ErrNotFound)
	ErrCharacterNotFound = fmt.Errorf("%w: character", ErrNotFound)
	ErrComicsNotFound    = fmt.Errorf("%w: comics", ErrNotFound)
	ErrDeviceNotFound    = fmt.Errorf("%w: device", ErrNotFound)
	ErrSweetNotFound     = fmt.Errorf("%w: sweet", ErrNotFound)
	ErrToyNotFound       = fmt.Errorf("%w: toy", ErrNotFound)
	ErrLinkNotFound      = fmt.Errorf("%w: link", ErrNotFound)

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrLinkExists indicates that a join row for the pair already exists.
	ErrLinkExists = fmt.Errorf("%w: link", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "universe", "toy")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
