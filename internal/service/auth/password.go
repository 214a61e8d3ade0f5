package auth

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifier checks login passwords against stored bcrypt hashes.
type PasswordVerifier interface {
	// Compare returns nil when password matches hashedPassword.
	Compare(hashedPassword, password string) error

	// CompareMissing spends the same work as Compare for an email that is not
	// registered, so response times do not reveal which emails exist.
	CompareMissing(password string)
}

// BcryptVerifier verifies passwords hashed by the user store.
type BcryptVerifier struct {
	cost int

	once      sync.Once
	dummyHash []byte
}

var _ PasswordVerifier = (*BcryptVerifier)(nil)

// NewBcryptVerifier returns a verifier whose missing-user comparisons run at
// cost, the cost the user store hashes new passwords with.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Compare implements PasswordVerifier.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// CompareMissing implements PasswordVerifier.
func (v *BcryptVerifier) CompareMissing(password string) {
	v.once.Do(func() {
		// GenerateFromPassword only fails for an invalid cost, which NewBcryptVerifier rules out.
		v.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("geekshop-missing-user"), v.cost)
	})
	_ = bcrypt.CompareHashAndPassword(v.dummyHash, []byte(password))
}

// Cost reports the bcrypt cost of missing-user comparisons.
func (v *BcryptVerifier) Cost() int {
	return v.cost
}
