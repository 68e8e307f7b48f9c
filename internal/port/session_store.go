package port

import (
	"context"
	"errors"
	"time"

	"mediavault/internal/uuid"
)

// ErrTokenNotFound is returned when a one-time token has expired or was
// already consumed.
var ErrTokenNotFound = errors.New("session store: token not found")

// SessionStore keeps the live-session registry and the short-lived one-time
// tokens (magic links, OAuth states), plus the sign-out event channel.
type SessionStore interface {
	SaveSession(ctx context.Context, sid string, userID uuid.UUID, ttl time.Duration) error
	// SessionUserID resolves a session id; the bool is false when the session
	// does not exist (expired or revoked).
	SessionUserID(ctx context.Context, sid string) (uuid.UUID, bool, error)
	DeleteSession(ctx context.Context, sid string) error

	SaveMagicToken(ctx context.Context, token, email string, ttl time.Duration) error
	// ConsumeMagicToken atomically reads and deletes a magic-link token,
	// returning the email it was issued for.
	ConsumeMagicToken(ctx context.Context, token string) (string, error)
	// CountMagicRequests increments and returns the per-email request counter
	// for the current window.
	CountMagicRequests(ctx context.Context, email string, window time.Duration) (int64, error)

	SaveOAuthState(ctx context.Context, state, provider string, ttl time.Duration) error
	// ConsumeOAuthState atomically reads and deletes an OAuth state, returning
	// the provider it was issued for.
	ConsumeOAuthState(ctx context.Context, state string) (string, error)

	PublishSessionEvent(ctx context.Context, sid, event string) error
	// SubscribeSessionEvents delivers events published for the session until
	// the returned closer is called or the context ends.
	SubscribeSessionEvents(ctx context.Context, sid string) (<-chan string, func(), error)
}
