package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mediavault/internal/port"
)

// oauthStateTTL bounds how long a started OAuth flow can stay pending.
const oauthStateTTL = 10 * time.Minute

type oauthSrv struct {
	providers map[string]port.OAuthProvider
	users     port.UserRepository
	store     port.SessionStore
	issuer    *sessionIssuer
	genUUID   port.UUIDGen
}

// compile-time checks
var (
	_ port.OAuthStarter   = (*oauthSrv)(nil)
	_ port.OAuthCompleter = (*oauthSrv)(nil)
)

// NewOAuth constructs the OAuth start/complete service.
func NewOAuth(providers []port.OAuthProvider, users port.UserRepository, store port.SessionStore, genUUID port.UUIDGen, jwtSecret string, sessionTTL time.Duration) *oauthSrv {
	byName := make(map[string]port.OAuthProvider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}
	return &oauthSrv{
		providers: byName,
		users:     users,
		store:     store,
		issuer:    newSessionIssuer(store, genUUID, jwtSecret, sessionTTL),
		genUUID:   genUUID,
	}
}

// StartOAuth stores a fresh state and returns the provider authorize URL to
// redirect the browser to.
func (s *oauthSrv) StartOAuth(ctx context.Context, provider string) (string, error) {
	p, ok := s.providers[provider]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}

	state := randomToken(16)
	if err := s.store.SaveOAuthState(ctx, state, p.Name(), oauthStateTTL); err != nil {
		return "", fmt.Errorf("failed to save oauth state: %w", err)
	}

	return p.AuthorizeURL(state), nil
}

// CompleteOAuth verifies the state, trades the code for a token, fetches the
// provider profile and issues a session.
func (s *oauthSrv) CompleteOAuth(ctx context.Context, provider, code, state string) (port.SessionOutput, error) {
	p, ok := s.providers[provider]
	if !ok {
		return port.SessionOutput{}, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}

	issuedFor, err := s.store.ConsumeOAuthState(ctx, state)
	if err != nil {
		if errors.Is(err, port.ErrTokenNotFound) {
			return port.SessionOutput{}, ErrInvalidState
		}
		return port.SessionOutput{}, err
	}
	if issuedFor != p.Name() {
		return port.SessionOutput{}, ErrInvalidState
	}

	accessToken, err := p.Exchange(ctx, code)
	if err != nil {
		return port.SessionOutput{}, fmt.Errorf("code exchange with %q failed: %w", p.Name(), err)
	}

	profile, err := p.FetchUser(ctx, accessToken)
	if err != nil {
		return port.SessionOutput{}, fmt.Errorf("user fetch from %q failed: %w", p.Name(), err)
	}

	displayName := profile.DisplayName
	if displayName == "" {
		displayName = displayNameFromEmail(profile.Email)
	}
	var avatarURL *string
	if profile.AvatarURL != "" {
		avatarURL = &profile.AvatarURL
	}

	user, err := upsertUser(ctx, s.users, s.genUUID, profile.Email, displayName, avatarURL, p.Name())
	if err != nil {
		return port.SessionOutput{}, err
	}

	return s.issuer.issue(ctx, user)
}
