package mocks

import (
	"errors"

	"github.com/phrazzld/geekshop-api/internal/service/auth"
)

// ErrWrongPassword is returned by MockPasswordVerifier when Accept is false.
var ErrWrongPassword = errors.New("mock: wrong password")

// MockPasswordVerifier is a function-field auth.PasswordVerifier. Without
// CompareFn, Compare accepts the password when Accept is set. Every call is
// recorded so tests can check which hash a login was checked against.
type MockPasswordVerifier struct {
	Accept    bool
	CompareFn func(hashedPassword, password string) error

	ComparedHashes []string
	MissingChecks  int
}

var _ auth.PasswordVerifier = (*MockPasswordVerifier)(nil)

func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	m.ComparedHashes = append(m.ComparedHashes, hashedPassword)
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if !m.Accept {
		return ErrWrongPassword
	}
	return nil
}

func (m *MockPasswordVerifier) CompareMissing(string) {
	m.MissingChecks++
}
