package logger

import (
	"context"
	"log/slog"

	"github.com/phrazzld/geekshop-api/internal/redact"
)

// RedactingHandler wraps another slog.Handler and scrubs error values before
// they are written. Error-typed attributes and string attributes whose key is
// "error" pass through redact.String.
type RedactingHandler struct {
	handler slog.Handler
}

// NewRedactingHandler wraps h.
func NewRedactingHandler(h slog.Handler) *RedactingHandler {
	return &RedactingHandler{handler: h}
}

// Enabled implements the slog.Handler interface.
func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs implements the slog.Handler interface.
func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	scrubbed := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		scrubbed[i] = scrubAttr(a)
	}
	return &RedactingHandler{handler: h.handler.WithAttrs(scrubbed)}
}

// WithGroup implements the slog.Handler interface.
func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{handler: h.handler.WithGroup(name)}
}

// Handle implements the slog.Handler interface.
func (h *RedactingHandler) Handle(ctx context.Context, record slog.Record) error {
	out := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(scrubAttr(a))
		return true
	})
	return h.handler.Handle(ctx, out)
}

func scrubAttr(a slog.Attr) slog.Attr {
	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindGroup:
		group := v.Group()
		scrubbed := make([]any, len(group))
		for i, ga := range group {
			scrubbed[i] = scrubAttr(ga)
		}
		return slog.Group(a.Key, scrubbed...)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return slog.String(a.Key, redact.Error(err))
		}
	case slog.KindString:
		if a.Key == "error" {
			return slog.String(a.Key, redact.String(v.String()))
		}
	}
	return a
}
