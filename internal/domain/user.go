package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// User validation errors
var (
	ErrEmptyUserID          = errors.New("user ID cannot be empty")
	ErrEmptyEmail           = errors.New("email cannot be empty")
	ErrEmptyPassword        = errors.New("password cannot be empty")
	ErrPasswordTooShort     = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong      = errors.New("password must be at most 64 characters long")
	ErrPasswordTooWeak      = errors.New("password must contain upper and lower case letters, a digit and a special character")
	ErrPasswordContainsName = errors.New("password must not contain the user name or email")
)

// PasswordSpecialChars lists the characters that satisfy the special-character rule.
const PasswordSpecialChars = "#?!@$%^&*-"

// User is a registered shop customer.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, only set during registration
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with a fresh ID and timestamps. The caller is
// responsible for hashing the password before the user is stored.
func NewUser(name, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     strings.ToLower(email),
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}
	if err := checkLength("name", u.Name, 4, 64); err != nil {
		return err
	}
	if err := checkAlpha("name", u.Name); err != nil {
		return err
	}
	if u.Email == "" {
		return NewValidationError("email", "is required", ErrEmptyEmail)
	}
	if len(u.Email) > 128 {
		return NewValidationError("email", "must be at most 128 characters long", ErrInvalidEmail)
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return NewValidationError("email", "is not a valid email address", ErrInvalidEmail)
	}

	if u.Password != "" {
		return ValidatePassword(u.Password, u.Name, u.Email)
	}
	if u.HashedPassword == "" {
		return NewValidationError("password", "is required", ErrEmptyPassword)
	}
	return nil
}

// ValidatePassword checks password strength and that the password does not
// contain the user's name or the local part of the email, case-insensitively.
func ValidatePassword(password, name, email string) error {
	if password == "" {
		return NewValidationError("password", "is required", ErrEmptyPassword)
	}
	n := len([]rune(password))
	if n < 8 {
		return NewValidationError("password", "must be at least 8 characters long", ErrPasswordTooShort)
	}
	if n > 64 {
		return NewValidationError("password", "must be at most 64 characters long", ErrPasswordTooLong)
	}
	if !IsStrongPassword(password) {
		return NewValidationError("password",
			"must contain upper and lower case letters, a digit and one of "+PasswordSpecialChars,
			ErrPasswordTooWeak)
	}

	lower := strings.ToLower(password)
	if local, _, ok := strings.Cut(strings.ToLower(email), "@"); ok && local != "" && strings.Contains(lower, local) {
		return NewValidationError("password", "must not contain the email name", ErrPasswordContainsName)
	}
	if name != "" && strings.Contains(lower, strings.ToLower(name)) {
		return NewValidationError("password", "must not contain the user name", ErrPasswordContainsName)
	}
	return nil
}

// IsStrongPassword reports whether password has an upper-case letter, a
// lower-case letter, a digit and one of PasswordSpecialChars.
func IsStrongPassword(password string) bool {
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(PasswordSpecialChars, r):
			special = true
		}
	}
	return upper && lower && digit && special
}
