// Package correlation propagates a per-request correlation ID through
// contexts, HTTP headers and Kafka message headers, so one checkout can
// be traced from the API call to the events it emits.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

const (
	// HeaderName is the HTTP header carrying the correlation ID.
	HeaderName = "X-Correlation-ID"
	// KafkaHeaderName is its counterpart on published Kafka messages.
	KafkaHeaderName = "X-Correlation-ID"
)

type contextKey struct{}

// FromContext returns the correlation ID stored in ctx, or "" when the
// request carried none.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

// WithID stores the correlation ID in ctx.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// NewID mints a fresh correlation ID.
func NewID() string {
	return uuid.New().String()
}
