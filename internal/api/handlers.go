package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/geekshop-api/internal/api/shared"
	"github.com/phrazzld/geekshop-api/internal/platform/logger"
)

// doneMessage is the body of every successful delete.
const doneMessage = "Done"

// handlerLogger builds the component logger every handler carries.
func handlerLogger(log *slog.Logger, component string) *slog.Logger {
	if log == nil {
		panic("logger cannot be nil for " + component)
	}
	return log.With(slog.String("component", component))
}

// requestLogger prefers the request-scoped logger, which carries the trace ID.
func requestLogger(r *http.Request, fallback *slog.Logger) *slog.Logger {
	return logger.FromContextOrDefault(r.Context(), fallback)
}

// respond writes v with status, or the mapped error when err is set.
func respond(w http.ResponseWriter, r *http.Request, status int, v interface{}, err error, fallback string) {
	if err != nil {
		HandleAPIError(w, r, err, fallback)
		return
	}
	shared.RespondWithJSON(w, r, status, v)
}

// listOrEmpty keeps empty lists serialized as [] rather than null.
func listOrEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// respondList writes a JSON array, or the mapped error when err is set.
func respondList[T any](w http.ResponseWriter, r *http.Request, items []T, err error, fallback string) {
	respond(w, r, http.StatusOK, listOrEmpty(items), err, fallback)
}
