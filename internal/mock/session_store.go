package mock

import (
	"context"
	"time"

	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

// SessionStore implements the session store for tests.
type SessionStore struct {
	// stored values
	UserIDOut    uuid.UUID
	SessionAlive bool
	EmailOut     string
	ProviderOut  string
	CountOut     int64
	Events       chan string

	// captured inputs
	SavedSID      string
	SavedUserID   uuid.UUID
	SavedTTL      time.Duration
	DeletedSID    string
	SavedToken    string
	SavedEmail    string
	SavedState    string
	PublishedSID  string
	PublishedEvts []string

	// errors
	SaveSessionErr   error
	SessionUserErr   error
	DeleteSessionErr error
	SaveMagicErr     error
	ConsumeMagicErr  error
	CountErr         error
	SaveStateErr     error
	ConsumeStateErr  error
	PublishErr       error
	SubscribeErr     error

	// call flags
	SaveSessionCalled   bool
	DeleteSessionCalled bool
	SaveMagicCalled     bool
	ConsumeMagicCalled  bool
	CountCalled         bool
	SaveStateCalled     bool
	ConsumeStateCalled  bool
	PublishCalled       bool
	SubscribeCalled     bool
}

// compile-time check: *SessionStore must satisfy port.SessionStore
var _ port.SessionStore = (*SessionStore)(nil)

func (s *SessionStore) SaveSession(ctx context.Context, sid string, userID uuid.UUID, ttl time.Duration) error {
	s.SaveSessionCalled = true
	s.SavedSID = sid
	s.SavedUserID = userID
	s.SavedTTL = ttl
	return s.SaveSessionErr
}

func (s *SessionStore) SessionUserID(ctx context.Context, sid string) (uuid.UUID, bool, error) {
	if s.SessionUserErr != nil {
		return uuid.UUID{}, false, s.SessionUserErr
	}
	return s.UserIDOut, s.SessionAlive, nil
}

func (s *SessionStore) DeleteSession(ctx context.Context, sid string) error {
	s.DeleteSessionCalled = true
	s.DeletedSID = sid
	return s.DeleteSessionErr
}

func (s *SessionStore) SaveMagicToken(ctx context.Context, token, email string, ttl time.Duration) error {
	s.SaveMagicCalled = true
	s.SavedToken = token
	s.SavedEmail = email
	s.SavedTTL = ttl
	return s.SaveMagicErr
}

func (s *SessionStore) ConsumeMagicToken(ctx context.Context, token string) (string, error) {
	s.ConsumeMagicCalled = true
	s.SavedToken = token
	if s.ConsumeMagicErr != nil {
		return "", s.ConsumeMagicErr
	}
	return s.EmailOut, nil
}

func (s *SessionStore) CountMagicRequests(ctx context.Context, email string, window time.Duration) (int64, error) {
	s.CountCalled = true
	if s.CountErr != nil {
		return 0, s.CountErr
	}
	return s.CountOut, nil
}

func (s *SessionStore) SaveOAuthState(ctx context.Context, state, provider string, ttl time.Duration) error {
	s.SaveStateCalled = true
	s.SavedState = state
	return s.SaveStateErr
}

func (s *SessionStore) ConsumeOAuthState(ctx context.Context, state string) (string, error) {
	s.ConsumeStateCalled = true
	s.SavedState = state
	if s.ConsumeStateErr != nil {
		return "", s.ConsumeStateErr
	}
	return s.ProviderOut, nil
}

func (s *SessionStore) PublishSessionEvent(ctx context.Context, sid, event string) error {
	s.PublishCalled = true
	s.PublishedSID = sid
	s.PublishedEvts = append(s.PublishedEvts, event)
	return s.PublishErr
}

func (s *SessionStore) SubscribeSessionEvents(ctx context.Context, sid string) (<-chan string, func(), error) {
	s.SubscribeCalled = true
	if s.SubscribeErr != nil {
		return nil, nil, s.SubscribeErr
	}
	if s.Events == nil {
		s.Events = make(chan string)
	}
	return s.Events, func() {}, nil
}
