package api_context

import (
	"context"

	"mediavault/internal/uuid"
)

type ctxKey string

const (
	MediaIDKey    ctxKey = "mediaID"
	AuthUserIDKey ctxKey = "authUserID"
	SessionIDKey  ctxKey = "sessionID"
)

func MediaIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(MediaIDKey).(uuid.UUID)
	return id, ok
}

func AuthUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(uuid.UUID)
	return id, ok
}

func SessionIDFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(SessionIDKey).(string)
	return sid, ok
}
