package ctxkeys

import (
	"context"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
)

func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}

func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

func Username(ctx context.Context) string {
	name, _ := ctx.Value(UsernameKey).(string)
	return name
}

func WithUsername(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, UsernameKey, name)
}
