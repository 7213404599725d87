package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/punctcheck/internal/domain"
)

type ctxKey string

const (
	visitorKey   ctxKey = "visitor"
	requestIDKey ctxKey = "request_id"
)

// WithVisitor stores the visitor identity in the context.
func WithVisitor(ctx context.Context, v domain.VisitorIdentity) context.Context {
	return context.WithValue(ctx, visitorKey, v)
}

// VisitorFromCtx extracts the visitor identity from the context.
// Returns false if the value is missing, has a nil ID, or has the wrong type.
func VisitorFromCtx(ctx context.Context) (domain.VisitorIdentity, bool) {
	v, ok := ctx.Value(visitorKey).(domain.VisitorIdentity)
	if !ok || v.ID == uuid.Nil {
		return domain.VisitorIdentity{}, false
	}
	return v, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
