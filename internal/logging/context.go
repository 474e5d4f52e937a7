package logging

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldSessionID identifies one process run.
	FieldSessionID = "session_id"
	// FieldItemID is the standardized key for canonical item identifiers.
	FieldItemID = "item_id"
	// FieldLocation is the standardized key for payload locations.
	FieldLocation = "location"
	// FieldEventType classifies WARN/ERROR records for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint tells the operator what to try next.
	FieldErrorHint = "error_hint"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
)

type contextKey string

const (
	itemIDKey   contextKey = "item_id"
	locationKey contextKey = "location"
)

// WithItemID tags ctx with a catalog item id.
func WithItemID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, itemIDKey, strings.TrimSpace(id))
}

// WithLocation tags ctx with the payload location being loaded.
func WithLocation(ctx context.Context, location string) context.Context {
	return context.WithValue(ctx, locationKey, strings.TrimSpace(location))
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := ctx.Value(itemIDKey).(string); ok && id != "" {
		fields = append(fields, slog.String(FieldItemID, id))
	}
	if location, ok := ctx.Value(locationKey).(string); ok && location != "" {
		fields = append(fields, slog.String(FieldLocation, location))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return slog.New(logger.Handler().WithAttrs(fields))
}
