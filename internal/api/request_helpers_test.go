package api

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/geekshop-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withURLParams attaches chi URL parameters to req, as the router would.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr string
	}{
		{name: "valid id", value: "42", want: 42},
		{name: "largest smallint", value: "32767", want: 32767},
		{name: "missing", value: "", wantErr: "id is required"},
		{name: "not a number", value: "abc", wantErr: "Invalid id"},
		{name: "zero", value: "0", wantErr: "Invalid id"},
		{name: "negative", value: "-3", wantErr: "Invalid id"},
		{name: "out of smallint range", value: "40000", wantErr: "Invalid id"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := withURLParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": tc.value})

			id, err := getPathID(req, "id")

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.wantErr, GetSafeErrorMessage(err))
				assert.Equal(t, http.StatusBadRequest, MapErrorToStatusCode(err))
				assert.Contains(t, []string{"Invalid limit", "Invalid offset"}, GetSafeErrorMessage(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}

func TestGetPage(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    store.Page
		wantErr bool
	}{
		{name: "defaults", query: "", want: store.Page{Limit: store.DefaultPageLimit}},
		{name: "limit and offset", query: "?limit=10&offset=20", want: store.Page{Limit: 10, Offset: 20}},
		{name: "limit capped", query: "?limit=50000", want: store.Page{Limit: store.MaxPageLimit}},
		{name: "bad limit", query: "?limit=ten", wantErr: true},
		{name: "negative offset", query: "?offset=-1", wantErr: true},
		{name: "largest offset", query: "?offset=9223372036854775807", want: store.Page{Limit: store.DefaultPageLimit, Offset: math.MaxInt64}},
		{name: "offset beyond bigint", query: "?offset=9223372036854775808", wantErr: true},
		{name: "offset beyond uint64", query: "?offset=18446744073709551615", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/toys"+tc.query, nil)

			page, err := getPage(req)

			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, MapErrorToStatusCode(err))
				assert.Contains(t, []string{"Invalid limit", "Invalid offset"}, GetSafeErrorMessage(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, page)
		})
	}
}
