package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/geekshop-api/internal/api/shared"
	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/service"
	"github.com/phrazzld/geekshop-api/internal/service/auth"
	"github.com/phrazzld/geekshop-api/internal/store"
)

// AuthHandler handles registration, login, token refresh and the current user.
type AuthHandler struct {
	users      service.UserService
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
// It panics if logger is nil.
func NewAuthHandler(users service.UserService, jwtService auth.JWTService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtService: jwtService,
		logger:     handlerLogger(logger, "auth_handler"),
	}
}

// RegisterRoutes mounts /register, /login and /refresh on r.
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/refresh", h.RefreshToken)
}

// issueTokens creates an access and refresh token pair for userID.
func (h *AuthHandler) issueTokens(ctx context.Context, userID uuid.UUID) (AuthResponse, error) {
	expiresAt := h.jwtService.AccessTokenExpiry()

	token, err := h.jwtService.GenerateToken(ctx, userID)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := h.jwtService.GenerateRefreshToken(ctx, userID)
	if err != nil {
		return AuthResponse{}, fmt.Errorf("generate refresh token: %w", err)
	}

	return AuthResponse{
		AccessToken:  token,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt.UTC().Format(time.RFC3339),
	}, nil
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.users.CreateUser(r.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	resp, err := h.issueTokens(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}
	resp.User = user

	requestLogger(r, h.logger).Info("user registered", slog.String("user_id", user.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, resp)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to authenticate user")
		return
	}

	resp, err := h.issueTokens(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}
	resp.User = user

	requestLogger(r, h.logger).Debug("user logged in", slog.String("user_id", user.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// RefreshToken handles POST /auth/refresh. A valid refresh token for an
// existing user is exchanged for a new token pair.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to validate refresh token")
		return
	}

	if _, err := h.users.GetUser(r.Context(), claims.UserID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			err = fmt.Errorf("%w: user no longer exists", auth.ErrInvalidRefreshToken)
		}
		HandleAPIError(w, r, err, "Failed to refresh token")
		return
	}

	resp, err := h.issueTokens(r.Context(), claims.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate authentication token")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Me handles GET /users/me. It must sit behind the authentication middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	user, err := h.users.GetUser(r.Context(), userID)
	respond(w, r, http.StatusOK, user, err, "Failed to get user")
}
