package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/geekshop-api/internal/platform/logger"
	"github.com/phrazzld/geekshop-api/internal/redact"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"-"` // Not serialized to JSON, used for logging
	TraceID string `json:"trace_id,omitempty"`
}

// ValidationErrorResponse is the 422 body: the generic message plus the
// reason each offending field was rejected.
type ValidationErrorResponse struct {
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
	TraceID string            `json:"trace_id,omitempty"`
}

// MessageResponse is the body of responses that carry no entity, such as deletes.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

// responseOptions holds configurable options for error responses.
type responseOptions struct {
	elevateLogLevel bool
}

// WithElevatedLogLevel returns a ResponseOption that raises 4xx errors to WARN level
// instead of the default DEBUG level. Use for important operational issues like
// repeated auth failures.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), nil).Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// RespondWithMessage writes {"msg": msg} with a 200 status.
func RespondWithMessage(w http.ResponseWriter, r *http.Request, msg string) {
	RespondWithJSON(w, r, http.StatusOK, MessageResponse{Msg: msg})
}

// RespondWithError writes a JSON error response with the given status code and message.
// It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	logger.FromContextOrDefault(r.Context(), nil).Debug("sending error response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   message,
		Code:    status,
		TraceID: traceID,
	})
}

// RespondWithValidationError writes a 422 response listing the rejected fields.
func RespondWithValidationError(w http.ResponseWriter, r *http.Request, fields map[string]string) {
	logger.FromContextOrDefault(r.Context(), nil).Debug("rejecting invalid request",
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Any("fields", fields))

	RespondWithJSON(w, r, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:   "Validation failed",
		Fields:  fields,
		TraceID: GetTraceID(r.Context()),
	})
}

// RespondWithErrorAndLog writes a JSON error response and also logs the detailed error.
// Only userMessage reaches the client; the redacted error goes to the log.
//
// 5xx responses are logged at ERROR, 429 at WARN and other 4xx at DEBUG unless
// WithElevatedLogLevel is passed.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	// The request logger already carries trace_id.
	if logger.FromContext(r.Context()) == nil && traceID != "" {
		logAttrs = append(logAttrs, slog.String("trace_id", traceID))
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}

	logLevel := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	case status == http.StatusTooManyRequests:
		logLevel = slog.LevelWarn
	case responseOpts.elevateLogLevel && status >= http.StatusBadRequest:
		logLevel = slog.LevelWarn
	}

	logger.FromContextOrDefault(r.Context(), nil).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   userMessage,
		Code:    status,
		TraceID: traceID,
	})
}
