package auth

import (
	"context"
	"database/sql"
	"errors"

	"mediavault/internal/logger"
	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

// SessionEventSignedOut is published when a session is revoked so every open
// tab subscribed to the event stream can drop to the login screen.
const SessionEventSignedOut = "signed_out"

type sessionSrv struct {
	users port.UserRepository
	store port.SessionStore
}

// compile-time checks
var (
	_ port.SessionGetter = (*sessionSrv)(nil)
	_ port.SignOuter     = (*sessionSrv)(nil)
)

// NewSession constructs the session read/revoke service.
func NewSession(users port.UserRepository, store port.SessionStore) *sessionSrv {
	return &sessionSrv{users: users, store: store}
}

// GetSession returns the signed-in user's UI-facing fields.
func (s *sessionSrv) GetSession(ctx context.Context, userID uuid.UUID) (port.UserOutput, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return port.UserOutput{}, ErrUserNotFound
		}
		return port.UserOutput{}, err
	}
	return toUserOutput(user), nil
}

// SignOut deletes the live session and notifies its subscribers. The JWT
// itself keeps existing but no longer resolves, which is the revocation.
func (s *sessionSrv) SignOut(ctx context.Context, sid string) error {
	if err := s.store.DeleteSession(ctx, sid); err != nil {
		return err
	}

	if err := s.store.PublishSessionEvent(ctx, sid, SessionEventSignedOut); err != nil {
		logger.Warnf(ctx, "failed to publish sign-out event for session %s: %v", sid, err)
	}
	return nil
}
