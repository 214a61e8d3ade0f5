package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/geekshop-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-secret-that-is-long-enough-for-testing"
	wrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

var fixedTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func testAuthConfig(secret string) config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:                   secret,
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 1440,
	}
}

func newTestJWTService(t *testing.T, secret string, now time.Time) *hmacJWTService {
	t.Helper()
	svc, err := newHMACJWTService(testAuthConfig(secret), func() time.Time { return now })
	require.NoError(t, err)
	return svc
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(testAuthConfig("too-short"))
	assert.Error(t, err)

	cfg := testAuthConfig(testSecret)
	cfg.TokenLifetimeMinutes = 0
	_, err = NewJWTService(cfg)
	assert.Error(t, err)

	svc, err := NewJWTService(testAuthConfig(testSecret))
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := newTestJWTService(t, testSecret, fixedTime)

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, fixedTime.Add(time.Hour), svc.AccessTokenExpiry())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) (JWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				svc := newTestJWTService(t, testSecret, fixedTime)
				token, err := svc.GenerateToken(context.Background(), userID)
				require.NoError(t, err)
				return svc, token
			},
		},
		{
			name: "expired token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				token, err := newTestJWTService(t, testSecret, fixedTime).
					GenerateToken(context.Background(), userID)
				require.NoError(t, err)
				return newTestJWTService(t, testSecret, fixedTime.Add(2*time.Hour)), token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "within clock skew",
			setupFunc: func(t *testing.T) (JWTService, string) {
				token, err := newTestJWTService(t, testSecret, fixedTime).
					GenerateToken(context.Background(), userID)
				require.NoError(t, err)
				return newTestJWTService(t, testSecret, fixedTime.Add(61*time.Minute)), token
			},
		},
		{
			name: "invalid signature",
			setupFunc: func(t *testing.T) (JWTService, string) {
				token, err := newTestJWTService(t, testSecret, fixedTime).
					GenerateToken(context.Background(), userID)
				require.NoError(t, err)
				return newTestJWTService(t, wrongSecret, fixedTime), token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				return newTestJWTService(t, testSecret, fixedTime), "this.is.not.a.valid.jwt.token"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "refresh token used as access token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				svc := newTestJWTService(t, testSecret, fixedTime)
				token, err := svc.GenerateRefreshToken(context.Background(), userID)
				require.NoError(t, err)
				return svc, token
			},
			wantErr: ErrWrongTokenType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tt.setupFunc(t)
			claims, err := svc.ValidateToken(context.Background(), token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}

func TestValidateRefreshToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := newTestJWTService(t, testSecret, fixedTime)

	refresh, err := svc.GenerateRefreshToken(context.Background(), userID)
	require.NoError(t, err)
	access, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		claims, err := svc.ValidateRefreshToken(context.Background(), refresh)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, TokenTypeRefresh, claims.TokenType)
		assert.Equal(t, fixedTime.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
	})

	t.Run("access token rejected", func(t *testing.T) {
		_, err := svc.ValidateRefreshToken(context.Background(), access)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})

	t.Run("expired refresh token", func(t *testing.T) {
		later := newTestJWTService(t, testSecret, fixedTime.Add(25*time.Hour))
		_, err := later.ValidateRefreshToken(context.Background(), refresh)
		assert.ErrorIs(t, err, ErrExpiredRefreshToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateRefreshToken(context.Background(), "garbage")
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}
