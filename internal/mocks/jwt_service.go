package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/geekshop-api/internal/service/auth"
)

// MockJWTService is a function-field auth.JWTService. Unset functions fall
// back to the static fields: generators return Token or RefreshToken with
// Err, validators return Claims with ValidateErr. IssuedFor records the user
// of every generated token, access and refresh alike.
type MockJWTService struct {
	GenerateTokenFn        func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateTokenFn        func(ctx context.Context, token string) (*auth.Claims, error)
	GenerateRefreshTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateRefreshTokenFn func(ctx context.Context, token string) (*auth.Claims, error)

	Token        string
	RefreshToken string
	Err          error
	Claims       *auth.Claims
	ValidateErr  error
	ExpiresAt    time.Time

	IssuedFor []uuid.UUID
}

var _ auth.JWTService = (*MockJWTService)(nil)

func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	m.IssuedFor = append(m.IssuedFor, userID)
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	return m.Token, m.Err
}

func (m *MockJWTService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, token)
	}
	return m.Claims, m.ValidateErr
}

func (m *MockJWTService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	m.IssuedFor = append(m.IssuedFor, userID)
	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(ctx, userID)
	}
	return m.RefreshToken, m.Err
}

func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.ValidateRefreshTokenFn != nil {
		return m.ValidateRefreshTokenFn(ctx, token)
	}
	return m.Claims, m.ValidateErr
}

func (m *MockJWTService) AccessTokenExpiry() time.Time {
	return m.ExpiresAt
}
