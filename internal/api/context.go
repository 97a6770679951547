package api

import (
	"context"
)

type contextKey string

const sessionContextKey contextKey = "page_session"

// SessionIDFromContext extracts the page session id from context
func SessionIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(sessionContextKey).(string)
	if !ok {
		return ""
	}
	return id
}

// ContextWithSessionID adds the page session id to context
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionContextKey, id)
}
