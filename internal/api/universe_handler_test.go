package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/mocks"
	"github.com/phrazzld/geekshop-api/internal/service"
	"github.com/phrazzld/geekshop-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marvel() *domain.Universe {
	return &domain.Universe{
		ID:          1,
		Slug:        "marvel-1",
		Title:       "Marvel",
		DateCreated: time.Date(1939, 10, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestUniverseHandlerList(t *testing.T) {
	t.Run("returns universes with paging", func(t *testing.T) {
		svc := &mocks.MockUniverseService{
			ListFn: func(ctx context.Context, page store.Page) ([]*domain.Universe, error) {
				assert.Equal(t, store.Page{Limit: 5, Offset: 10}, page)
				return []*domain.Universe{marvel()}, nil
			},
		}
		h := NewUniverseHandler(svc, testLogger())

		w := serve(t, "/universes", h.RegisterRoutes, http.MethodGet, "/universes?limit=5&offset=10", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"title":"Marvel"`)
	})

	t.Run("empty store yields an empty array", func(t *testing.T) {
		h := NewUniverseHandler(&mocks.MockUniverseService{}, testLogger())

		w := serve(t, "/universes", h.RegisterRoutes, http.MethodGet, "/universes", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("bad limit", func(t *testing.T) {
		h := NewUniverseHandler(&mocks.MockUniverseService{}, testLogger())

		w := serve(t, "/universes", h.RegisterRoutes, http.MethodGet, "/universes?limit=-1", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUniverseHandlerGet(t *testing.T) {
	svc := &mocks.MockUniverseService{
		GetFn: func(ctx context.Context, id int64) (*domain.Universe, error) {
			if id == 1 {
				return marvel(), nil
			}
			return nil, store.ErrUniverseNotFound
		},
	}
	h := NewUniverseHandler(svc, testLogger())

	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedError  string
	}{
		{"found", "/universes/1", http.StatusOK, ""},
		{"missing", "/universes/2", http.StatusNotFound, "Universe not found"},
		{"not a number", "/universes/marvel", http.StatusBadRequest, "Invalid id"},
		{"zero", "/universes/0", http.StatusBadRequest, "Invalid id"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(t, "/universes", h.RegisterRoutes, http.MethodGet, tc.target, "")

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedError != "" {
				assert.Equal(t, tc.expectedError, decodeBody(t, w)["error"])
				return
			}
			body := decodeBody(t, w)
			assert.Equal(t, "marvel-1", body["slug"])
			assert.Equal(t, "1939-10-01T00:00:00Z", body["date_created"])
		})
	}
}

func TestUniverseHandlerCreate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		createErr      error
		expectedStatus int
		expectedFields []string
	}{
		{
			name:           "created",
			body:           `{"title": "  Marvel  ", "date_created": "1939-10-01"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "title too short and missing date",
			body:           `{"title": "DC"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedFields: []string{"title", "date_created"},
		},
		{
			name:           "title with digits",
			body:           `{"title": "Earth 616", "date_created": "1961-01-01"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedFields: []string{"title"},
		},
		{
			name:           "bad date",
			body:           `{"title": "Marvel", "date_created": "October"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "title taken",
			body:           `{"title": "Marvel", "date_created": "1939-10-01"}`,
			createErr:      service.ErrTitleTaken,
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mocks.MockUniverseService{
				CreateFn: func(ctx context.Context, u *domain.Universe) error {
					if tc.createErr != nil {
						return tc.createErr
					}
					assert.Equal(t, "Marvel", u.Title, "strings are trimmed")
					u.ID = 9
					u.Slug = "marvel--950400000"
					return nil
				},
			}
			h := NewUniverseHandler(svc, testLogger())

			w := serve(t, "/universes", h.RegisterRoutes, http.MethodPost, "/universes", tc.body)

			require.Equal(t, tc.expectedStatus, w.Code, w.Body.String())
			body := decodeBody(t, w)
			if tc.expectedFields != nil {
				fields, ok := body["fields"].(map[string]interface{})
				require.True(t, ok)
				for _, f := range tc.expectedFields {
					assert.Contains(t, fields, f)
				}
				return
			}
			if tc.expectedStatus == http.StatusCreated {
				assert.EqualValues(t, 9, body["id"])
			}
		})
	}
}

func TestUniverseHandlerUpdate(t *testing.T) {
	var updated *domain.Universe
	svc := &mocks.MockUniverseService{
		UpdateFn: func(ctx context.Context, u *domain.Universe) error {
			if u.ID == 404 {
				return store.ErrUniverseNotFound
			}
			updated = u
			return nil
		},
	}
	h := NewUniverseHandler(svc, testLogger())

	w := serve(t, "/universes", h.RegisterRoutes, http.MethodPut, "/universes/3",
		`{"title": "DC Comics", "date_created": "1934-01-01"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, updated)
	assert.Equal(t, int64(3), updated.ID)
	assert.Empty(t, updated.Slug, "the service keeps the stored slug")

	w = serve(t, "/universes", h.RegisterRoutes, http.MethodPut, "/universes/404",
		`{"title": "DC Comics", "date_created": "1934-01-01"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUniverseHandlerDelete(t *testing.T) {
	svc := &mocks.MockUniverseService{
		DeleteFn: func(ctx context.Context, id int64) error {
			switch id {
			case 1:
				return nil
			case 2:
				return store.ErrUniverseNotFound
			default:
				return errors.New("delete from universes: connection reset")
			}
		},
	}
	h := NewUniverseHandler(svc, testLogger())

	w := serve(t, "/universes", h.RegisterRoutes, http.MethodDelete, "/universes/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg":"Done"}`, w.Body.String())

	w = serve(t, "/universes", h.RegisterRoutes, http.MethodDelete, "/universes/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, "/universes", h.RegisterRoutes, http.MethodDelete, "/universes/3", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to delete universe", decodeBody(t, w)["error"])
}

func TestUniverseHandlerRelated(t *testing.T) {
	svc := &mocks.MockUniverseService{
		CharactersFn: func(ctx context.Context, id int64) ([]*domain.Character, error) {
			return []*domain.Character{{ID: 4, Name: "Thor", UniverseID: id}}, nil
		},
		DevicesFn: func(ctx context.Context, id int64) ([]*domain.Device, error) {
			return nil, store.ErrUniverseNotFound
		},
	}
	h := NewUniverseHandler(svc, testLogger())

	w := serve(t, "/universes", h.RegisterRoutes, http.MethodGet, "/universes/1/characters", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Thor"`)

	w = serve(t, "/universes", h.RegisterRoutes, http.MethodGet, "/universes/1/devices", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, "/universes", h.RegisterRoutes, http.MethodGet, "/universes/1/toys", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
