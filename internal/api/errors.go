package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/geekshop-api/internal/api/shared"
	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/service"
	"github.com/phrazzld/geekshop-api/internal/service/auth"
	"github.com/phrazzld/geekshop-api/internal/store"
)

// RequestError reports a malformed request: an undecodable body or a path or
// query parameter that is not a valid number. Its message is safe to show.
type RequestError struct {
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func badRequest(message string, err error) error {
	return &RequestError{Message: message, Err: err}
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var reqErr *RequestError
	switch {
	case errors.As(err, &reqErr):
		return http.StatusBadRequest

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// A foreign key points at a missing row or a check constraint failed.
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}

// notFoundMessages pairs entity-specific not-found errors with their messages.
var notFoundMessages = []struct {
	err error
	msg string
}{
	{store.ErrUniverseNotFound, "Universe not found"},
	{store.ErrAuthorNotFound, "Author not found"},
	{store.ErrCharacterNotFound, "Character not found"},
	{store.ErrComicsNotFound, "Comics not found"},
	{store.ErrDeviceNotFound, "Device not found"},
	{store.ErrSweetNotFound, "Sweet not found"},
	{store.ErrToyNotFound, "Toy not found"},
	{store.ErrLinkNotFound, "Link not found"},
	{store.ErrUserNotFound, "User not found"},
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}

	if errors.Is(err, store.ErrNotFound) {
		for _, nf := range notFoundMessages {
			if errors.Is(err, nf.err) {
				return nf.msg
			}
		}
		return "Resource not found"
	}

	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return "Authorization header required"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"

	case errors.Is(err, domain.ErrValidation):
		return "Validation failed"

	case errors.Is(err, service.ErrTitleTaken):
		return "Title already exists"

	case errors.Is(err, service.ErrNameTaken):
		return "Author with this name and surname already exists"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrLinkExists):
		return "Link already exists"

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Referenced entity does not exist"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for err. Validation failures get a 422
// with the offending fields; everything else gets the mapped status and a safe
// message. fallback replaces the generic message of a 500 when set.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if errors.Is(err, domain.ErrValidation) {
		if fields := shared.FieldErrors(err); len(fields) > 0 {
			shared.RespondWithValidationError(w, r, fields)
			return
		}
	}

	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}

	var opts []shared.ResponseOption
	if status == http.StatusUnauthorized {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}

// handleValidationError responds to a request DTO that failed its struct tags.
func handleValidationError(w http.ResponseWriter, r *http.Request, err error) {
	if fields := shared.FieldErrors(err); len(fields) > 0 {
		shared.RespondWithValidationError(w, r, fields)
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity, "Validation failed", err)
}
