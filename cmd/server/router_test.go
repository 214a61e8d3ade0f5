package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/geekshop-api/internal/api/middleware"
	"github.com/phrazzld/geekshop-api/internal/config"
	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/mocks"
	"github.com/phrazzld/geekshop-api/internal/service/auth"
	"github.com/phrazzld/geekshop-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

var testUserID = uuid.MustParse("6f1c2f0e-3a7b-4d8e-9c55-2b0a7e4d9f10")

// newTestApp returns an application backed by in-memory mocks.
func newTestApp(t *testing.T, requireAuth bool, rateLimit int) *application {
	t.Helper()
	jwt := &mocks.MockJWTService{
		ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
			if token != validToken {
				return nil, auth.ErrInvalidToken
			}
			return &auth.Claims{UserID: testUserID, TokenType: auth.TokenTypeAccess}, nil
		},
	}

	return &application{
		config: &config.Config{
			Server: config.ServerConfig{
				Port:                   8080,
				LogLevel:               "error",
				ShutdownTimeoutSeconds: 1,
				CORSAllowedOrigins:     []string{"https://shop.example.com"},
				RateLimitPerMinute:     rateLimit,
			},
			Auth: config.AuthConfig{RequireForWrites: requireAuth},
		},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		jwtService: jwt,
		users: &mocks.MockUserService{
			GetUserFn: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
				return &domain.User{ID: id, Name: "Peter Parker", Email: "peter@dailybugle.com"}, nil
			},
		},
		universes: &mocks.MockUniverseService{
			GetFn: func(ctx context.Context, id int64) (*domain.Universe, error) {
				return nil, store.ErrUniverseNotFound
			},
			CreateFn: func(ctx context.Context, u *domain.Universe) error {
				u.ID = 1
				return nil
			},
		},
		authors:    &mocks.MockAuthorService{},
		characters: &mocks.MockCharacterService{},
		comics:     &mocks.MockComicsService{},
		devices:    &mocks.MockDeviceService{},
		sweets:     &mocks.MockSweetService{},
		toys:       &mocks.MockToyService{},
		links:      &mocks.MockLinkService{},
	}
}

func do(t *testing.T, h http.Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouterHealthAndMetrics(t *testing.T) {
	router := newTestApp(t, false, 0).setupRouter()

	w := do(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.TraceIDHeader))

	w = do(t, router, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "geekshop_http_requests_total")
}

func TestRouterCatalogRoutes(t *testing.T) {
	router := newTestApp(t, false, 0).setupRouter()

	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		expectedStatus int
	}{
		{"list without trailing slash", http.MethodGet, "/api/v1/universes", "", http.StatusOK},
		{"list with trailing slash", http.MethodGet, "/api/v1/universes/", "", http.StatusOK},
		{"missing universe", http.MethodGet, "/api/v1/universes/1", "", http.StatusNotFound},
		{"create without auth when not required", http.MethodPost, "/api/v1/universes",
			`{"title": "Marvel", "date_created": "1939-10-01"}`, http.StatusCreated},
		{"authors", http.MethodGet, "/api/v1/authors", "", http.StatusOK},
		{"characters", http.MethodGet, "/api/v1/characters", "", http.StatusOK},
		{"comics", http.MethodGet, "/api/v1/comics", "", http.StatusOK},
		{"devices", http.MethodGet, "/api/v1/devices", "", http.StatusOK},
		{"sweets", http.MethodGet, "/api/v1/sweets", "", http.StatusOK},
		{"toys", http.MethodGet, "/api/v1/toys", "", http.StatusOK},
		{"comics authors", http.MethodGet, "/api/v1/comics_authors", "", http.StatusOK},
		{"comics characters", http.MethodGet, "/api/v1/comics_characters", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/v1/spaceships", "", http.StatusNotFound},
		{"wrong method", http.MethodPatch, "/api/v1/universes/1", "", http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, router, tc.method, tc.target, tc.body, map[string]string{"Content-Type": "application/json"})
			assert.Equal(t, tc.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestRouterRequireAuthForWrites(t *testing.T) {
	router := newTestApp(t, true, 0).setupRouter()
	body := `{"title": "Marvel", "date_created": "1939-10-01"}`

	w := do(t, router, http.MethodGet, "/api/v1/universes", "", nil)
	assert.Equal(t, http.StatusOK, w.Code, "reads stay public")

	w = do(t, router, http.MethodPost, "/api/v1/universes", body, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, router, http.MethodPost, "/api/v1/universes", body, map[string]string{"Authorization": "Bearer nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, router, http.MethodPost, "/api/v1/universes", body, map[string]string{"Authorization": "Bearer " + validToken})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestRouterUsersMe(t *testing.T) {
	router := newTestApp(t, false, 0).setupRouter()

	w := do(t, router, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, router, http.MethodGet, "/api/v1/users/me", "", map[string]string{"Authorization": "Bearer " + validToken})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testUserID.String())
}

func TestRouterCORS(t *testing.T) {
	router := newTestApp(t, false, 0).setupRouter()

	w := do(t, router, http.MethodOptions, "/api/v1/universes", "", map[string]string{
		"Origin":                        "https://shop.example.com",
		"Access-Control-Request-Method": http.MethodPost,
	})

	assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(t, router, http.MethodGet, "/api/v1/universes", "", map[string]string{"Origin": "https://evil.example.com"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterRateLimit(t *testing.T) {
	router := newTestApp(t, false, 2).setupRouter()

	for i := 0; i < 2; i++ {
		w := do(t, router, http.MethodGet, "/health", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := do(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestStartHTTPServerStopsOnCancel(t *testing.T) {
	app := newTestApp(t, false, 0)
	app.config.Server.Port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.startHTTPServer(ctx, app.setupRouter())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunMigrationsRejectsUnknownCommand(t *testing.T) {
	err := runMigrations(context.Background(), nil, "sideways", slog.Default())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")
}

// brokenWriter fails every body write, like a client that hung up.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}

func TestHealthLogsWriteFailure(t *testing.T) {
	app := newTestApp(t, false, 0)
	var buf bytes.Buffer
	app.logger = slog.New(slog.NewJSONHandler(&buf, nil))

	w := brokenWriter{httptest.NewRecorder()}
	app.health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "failed to write health check response", entry["msg"])
	assert.Equal(t, "connection reset by peer", entry["error"])
}
