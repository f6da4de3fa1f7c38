package internal

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

type contextKey string

const requestIDKey contextKey = "requestID"

// WithRequestID attaches a fresh request identifier to the context unless
// one is already present.
func WithRequestID(ctx context.Context) context.Context {
	if _, ok := ctx.Value(requestIDKey).(string); ok {
		return ctx
	}
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return context.WithValue(ctx, requestIDKey, fmt.Sprintf("req-%d", time.Now().UnixNano()))
	}
	return context.WithValue(ctx, requestIDKey, hex.EncodeToString(bytes))
}

// GetRequestID returns the request identifier, or an empty string when the
// context has none.
func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(requestIDKey).(string); ok {
		return reqID
	}
	return ""
}
