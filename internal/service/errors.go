package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/store"
)

// Service errors. Duplicates wrap store.ErrDuplicate so callers can treat them
// alongside unique violations reported by the database.
var (
	// ErrTitleTaken indicates another row already uses the requested title.
	ErrTitleTaken = fmt.Errorf("%w: title already taken", store.ErrDuplicate)

	// ErrNameTaken indicates an author with the same name and surname exists.
	ErrNameTaken = fmt.Errorf("%w: author with this name and surname already exists", store.ErrDuplicate)

	// ErrPasswordMismatch is returned when password and its confirmation differ.
	ErrPasswordMismatch = domain.NewValidationError("confirm_password", "must match password", nil)

	// ErrInvalidCredentials is returned for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
