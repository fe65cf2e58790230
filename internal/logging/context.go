package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type correlationKey struct{}

// WithCorrelationID stores id on ctx. A blank id is replaced with a new UUID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationID returns the identifier stored by WithCorrelationID.
func CorrelationID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(correlationKey{}).(string)
	return id, ok && id != ""
}

// WithContext returns a logger augmented with the correlation ID found on ctx.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	id, ok := CorrelationID(ctx)
	if !ok {
		return logger
	}
	return logger.With(slog.String(FieldCorrelationID, id))
}
