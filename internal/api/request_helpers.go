package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/geekshop-api/internal/api/shared"
	"github.com/phrazzld/geekshop-api/internal/platform/logger"
	"github.com/phrazzld/geekshop-api/internal/store"
)

// getPathID extracts a positive SMALLINT primary key from the URL path.
// Values outside 1..32767 are rejected as malformed since no row can have them.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, badRequest(paramName+" is required", nil)
	}

	id, err := strconv.ParseInt(raw, 10, 16)
	if err != nil || id <= 0 {
		return 0, badRequest("Invalid "+paramName, err)
	}
	return id, nil
}

// getPage reads the optional limit and offset query parameters. The offset must
// fit a signed BIGINT.
func getPage(r *http.Request) (store.Page, error) {
	var page store.Page
	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return page, badRequest("Invalid limit", err)
		}
		page.Limit = limit
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || offset < 0 {
			return page, badRequest("Invalid offset", err)
		}
		page.Offset = uint64(offset)
	}
	return page.Normalize(), nil
}

// pathID is getPathID for handlers: on failure it writes a 400 and returns false.
func pathID(w http.ResponseWriter, r *http.Request, paramName string) (int64, bool) {
	id, err := getPathID(r, paramName)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), nil).Debug("invalid path parameter",
			slog.String("param_name", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return id, true
}

// pageParams is getPage for handlers: on failure it writes a 400 and returns false.
func pageParams(w http.ResponseWriter, r *http.Request) (store.Page, bool) {
	page, err := getPage(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return store.Page{}, false
	}
	return page, true
}

// decodeAndValidate decodes the JSON body into req and runs its validation
// tags. On failure it writes a 400 or 422 and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		HandleAPIError(w, r, badRequest("Invalid request format", err), "")
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		handleValidationError(w, r, err)
		return false
	}
	return true
}
