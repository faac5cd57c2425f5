package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type traceKey struct{}

const (
	// TraceIDKey is the log field and gin key holding the trace ID.
	TraceIDKey = "trace_id"

	// TraceIDHeader carries the trace ID in requests and responses.
	TraceIDHeader = "X-Request-ID"

	maxTraceIDLen = 128
)

// GetTraceID returns the trace ID stored in ctx, or "".
func GetTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}

// SetTraceID returns a copy of ctx carrying id.
func SetTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey{}, id)
}

// EnsureTraceID returns ctx with a trace ID, generating a UUID when none is
// present.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if id := GetTraceID(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()
	return SetTraceID(ctx, id), id
}

// ValidTraceID reports whether a client supplied ID can be echoed back:
// non-empty, bounded and made of visible ASCII.
func ValidTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}
