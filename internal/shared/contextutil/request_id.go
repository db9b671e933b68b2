package contextutil

import "context"

// Unexported key type so no other package can collide with ours.
type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID injects the request id into a standard context
// (also used by unit tests to fake tracing).
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// GetRequestID returns the request id, or "" when the middleware
// never ran (background work, tests).
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}
