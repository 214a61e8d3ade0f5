package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/geekshop-api/internal/config"
	"github.com/phrazzld/geekshop-api/internal/platform/logger"
)

// MinSecretLength is the shortest HMAC signing secret accepted.
const MinSecretLength = 32

// hmacJWTService is an implementation of JWTService using HMAC-SHA256 signing.
type hmacJWTService struct {
	signingKey           []byte
	tokenLifetime        time.Duration
	refreshTokenLifetime time.Duration
	timeFunc             func() time.Time // Injectable for testing
	clockSkew            time.Duration
}

// jwtCustomClaims defines the structure of JWT claims we use
type jwtCustomClaims struct {
	UserID    uuid.UUID `json:"uid"`
	TokenType string    `json:"type"`
	jwt.RegisteredClaims
}

// tokenErrors holds the errors reported for one token type.
type tokenErrors struct {
	expired error
	invalid error
}

var (
	accessTokenErrors  = tokenErrors{expired: ErrExpiredToken, invalid: ErrInvalidToken}
	refreshTokenErrors = tokenErrors{expired: ErrExpiredRefreshToken, invalid: ErrInvalidRefreshToken}
)

var _ JWTService = (*hmacJWTService)(nil)

// NewJWTService creates a new JWT service using HMAC-SHA256 signing.
func NewJWTService(cfg config.AuthConfig) (JWTService, error) {
	return newHMACJWTService(cfg, time.Now)
}

func newHMACJWTService(cfg config.AuthConfig, timeFunc func() time.Time) (*hmacJWTService, error) {
	if len(cfg.JWTSecret) < MinSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d characters", MinSecretLength)
	}
	if cfg.TokenLifetimeMinutes <= 0 || cfg.RefreshTokenLifetimeMinutes <= 0 {
		return nil, fmt.Errorf("token lifetimes must be positive")
	}

	return &hmacJWTService{
		signingKey:           []byte(cfg.JWTSecret),
		tokenLifetime:        time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		refreshTokenLifetime: time.Duration(cfg.RefreshTokenLifetimeMinutes) * time.Minute,
		timeFunc:             timeFunc,
		clockSkew:            2 * time.Minute,
	}, nil
}

// GenerateToken creates a signed JWT access token with user claims.
func (s *hmacJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	now := s.timeFunc()
	return s.sign(ctx, userID, TokenTypeAccess, now, now.Add(s.tokenLifetime))
}

// GenerateRefreshToken creates a signed JWT refresh token with user claims.
func (s *hmacJWTService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	now := s.timeFunc()
	return s.sign(ctx, userID, TokenTypeRefresh, now, now.Add(s.refreshTokenLifetime))
}

// ValidateToken validates a JWT access token and returns the claims if valid.
func (s *hmacJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	return s.parse(ctx, tokenString, TokenTypeAccess, accessTokenErrors)
}

// ValidateRefreshToken validates a JWT refresh token and returns the claims if valid.
func (s *hmacJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error) {
	return s.parse(ctx, tokenString, TokenTypeRefresh, refreshTokenErrors)
}

// AccessTokenExpiry returns the expiry of an access token issued now.
func (s *hmacJWTService) AccessTokenExpiry() time.Time {
	return s.timeFunc().Add(s.tokenLifetime)
}

func (s *hmacJWTService) sign(
	ctx context.Context,
	userID uuid.UUID,
	tokenType string,
	issuedAt, expiresAt time.Time,
) (string, error) {
	claims := jwtCustomClaims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		logger.FromContextOrDefault(ctx, nil).Error("failed to sign JWT",
			slog.Any("error", err),
			slog.String("user_id", userID.String()),
			slog.String("token_type", tokenType))
		return "", fmt.Errorf("failed to sign %s token with HMAC-SHA256: %w", tokenType, err)
	}

	return signedToken, nil
}

func (s *hmacJWTService) parse(
	ctx context.Context,
	tokenString string,
	wantType string,
	errs tokenErrors,
) (*Claims, error) {
	log := logger.FromContextOrDefault(ctx, nil).With(slog.String("token_type", wantType))
	now := s.timeFunc()

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwtCustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug("token validation failed: token expired")
			return nil, errs.expired
		}
		log.Debug("token validation failed",
			slog.String("error_type", fmt.Sprintf("%T", err)),
			slog.Bool("malformed", errors.Is(err, jwt.ErrTokenMalformed)),
			slog.Bool("bad_signature", errors.Is(err, jwt.ErrTokenSignatureInvalid)))
		return nil, errs.invalid
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid {
		log.Debug("token validation failed: invalid claims")
		return nil, errs.invalid
	}
	if claims.TokenType != wantType {
		log.Debug("token validation failed: wrong token type",
			slog.String("actual", claims.TokenType))
		return nil, ErrWrongTokenType
	}

	log.Debug("token validated successfully",
		slog.String("user_id", claims.UserID.String()),
		slog.String("token_id", claims.ID))

	return &Claims{
		UserID:    claims.UserID,
		TokenType: claims.TokenType,
		Subject:   claims.Subject,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
		ID:        claims.ID,
	}, nil
}
