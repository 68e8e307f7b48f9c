package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

// Store keeps sessions and one-time tokens in redis.
type Store struct {
	client *redis.Client
}

// compile-time check: *Store must satisfy port.SessionStore
var _ port.SessionStore = (*Store)(nil)

func NewStore(addr, password string) *Store {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Store{client: rdb}
}

// NewStoreWithClient wraps an existing redis client, mainly for tests.
func NewStoreWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

// Ping checks the redis connection on startup.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) SaveSession(ctx context.Context, sid string, userID uuid.UUID, ttl time.Duration) error {
	log.Printf("creating session entry for user #%s, valid for %s...", userID, ttl)

	if err := s.client.Set(ctx, sessionKey(sid), userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *Store) SessionUserID(ctx context.Context, sid string) (uuid.UUID, bool, error) {
	val, err := s.client.Get(ctx, sessionKey(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.UUID{}, false, nil // expired or revoked
	}
	if err != nil {
		return uuid.UUID{}, false, fmt.Errorf("redis get failed: %w", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.UUID{}, false, fmt.Errorf("corrupt session entry: %w", err)
	}
	return userID, true, nil
}

func (s *Store) DeleteSession(ctx context.Context, sid string) error {
	log.Printf("deleting session entry %q...", sid)

	if err := s.client.Del(ctx, sessionKey(sid)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (s *Store) SaveMagicToken(ctx context.Context, token, email string, ttl time.Duration) error {
	log.Printf("creating magic link entry for %s, valid for %s...", email, ttl)

	if err := s.client.Set(ctx, magicKey(token), email, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *Store) ConsumeMagicToken(ctx context.Context, token string) (string, error) {
	email, err := s.client.GetDel(ctx, magicKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", port.ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis getdel failed: %w", err)
	}
	return email, nil
}

func (s *Store) CountMagicRequests(ctx context.Context, email string, window time.Duration) (int64, error) {
	key := magicRateKey(email)

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr failed: %w", err)
	}
	if count == 1 {
		// first request of the window, start the clock
		if err := s.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, fmt.Errorf("redis expire failed: %w", err)
		}
	}
	return count, nil
}

func (s *Store) SaveOAuthState(ctx context.Context, state, provider string, ttl time.Duration) error {
	log.Printf("creating oauth state entry for provider %q, valid for %s...", provider, ttl)

	if err := s.client.Set(ctx, oauthStateKey(state), provider, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *Store) ConsumeOAuthState(ctx context.Context, state string) (string, error) {
	provider, err := s.client.GetDel(ctx, oauthStateKey(state)).Result()
	if errors.Is(err, redis.Nil) {
		return "", port.ErrTokenNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis getdel failed: %w", err)
	}
	return provider, nil
}

func (s *Store) PublishSessionEvent(ctx context.Context, sid, event string) error {
	log.Printf("publishing %q event for session %q...", event, sid)

	if err := s.client.Publish(ctx, eventsChannel(sid), event).Err(); err != nil {
		return fmt.Errorf("redis publish failed: %w", err)
	}
	return nil
}

func (s *Store) SubscribeSessionEvents(ctx context.Context, sid string) (<-chan string, func(), error) {
	sub := s.client.Subscribe(ctx, eventsChannel(sid))
	// force the SUBSCRIBE round-trip so a dead redis fails here, not later
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("redis subscribe failed: %w", err)
	}

	events := make(chan string)
	go func() {
		defer close(events)
		for msg := range sub.Channel() {
			select {
			case events <- msg.Payload:
			case <-ctx.Done():
				return
			}
		}
	}()

	closer := func() { _ = sub.Close() }
	return events, closer, nil
}

func sessionKey(sid string) string {
	return "session:" + sid
}

func magicKey(token string) string {
	return "magic_link:" + token
}

func magicRateKey(email string) string {
	return "magic_link_rate:" + email
}

func oauthStateKey(state string) string {
	return "oauth_state:" + state
}

func eventsChannel(sid string) string {
	return "session_events:" + sid
}
