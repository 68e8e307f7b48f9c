package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mediavault/internal/logger"
	"mediavault/internal/model"
	"mediavault/internal/port"
)

const (
	// MagicLinkTTL bounds how long an emailed link stays usable.
	MagicLinkTTL = 15 * time.Minute
	// magicLinkRateWindow and magicLinkRateMax cap link requests per email.
	magicLinkRateWindow = time.Hour
	magicLinkRateMax    = 5
)

type magicLinkSrv struct {
	users      port.UserRepository
	store      port.SessionStore
	mailer     port.Mailer
	issuer     *sessionIssuer
	genUUID    port.UUIDGen
	appBaseURL string
}

// compile-time checks
var (
	_ port.MagicLinkRequester = (*magicLinkSrv)(nil)
	_ port.MagicLinkVerifier  = (*magicLinkSrv)(nil)
)

// NewMagicLink constructs the magic-link request/verify service.
func NewMagicLink(users port.UserRepository, store port.SessionStore, mailer port.Mailer, genUUID port.UUIDGen, jwtSecret string, sessionTTL time.Duration, appBaseURL string) *magicLinkSrv {
	return &magicLinkSrv{
		users:      users,
		store:      store,
		mailer:     mailer,
		issuer:     newSessionIssuer(store, genUUID, jwtSecret, sessionTTL),
		genUUID:    genUUID,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
	}
}

// RequestMagicLink stores a one-time token and emails the sign-in link.
// Requests beyond the per-email rate limit are rejected before any token is
// created or email sent.
func (s *magicLinkSrv) RequestMagicLink(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.store.CountMagicRequests(ctx, email, magicLinkRateWindow)
	if err != nil {
		return fmt.Errorf("failed to count magic-link requests: %w", err)
	}
	if count > magicLinkRateMax {
		return ErrRateLimited
	}

	token := randomToken(32)
	if err := s.store.SaveMagicToken(ctx, token, email, MagicLinkTTL); err != nil {
		return fmt.Errorf("failed to save magic-link token: %w", err)
	}

	link := fmt.Sprintf("%s/auth/magic_link/verify?token=%s", s.appBaseURL, token)
	if err := s.mailer.SendMagicLink(ctx, email, link); err != nil {
		return fmt.Errorf("failed to send magic-link email: %w", err)
	}

	logger.Infof(ctx, "magic link sent to %s", email)
	return nil
}

// VerifyMagicLink consumes the token, signs the user in (creating the account
// on first use) and issues a session.
func (s *magicLinkSrv) VerifyMagicLink(ctx context.Context, token string) (port.SessionOutput, error) {
	email, err := s.store.ConsumeMagicToken(ctx, token)
	if err != nil {
		if errors.Is(err, port.ErrTokenNotFound) {
			return port.SessionOutput{}, ErrInvalidToken
		}
		return port.SessionOutput{}, err
	}

	user, err := upsertUser(ctx, s.users, s.genUUID, email, displayNameFromEmail(email), nil, model.ProviderMagicLink)
	if err != nil {
		return port.SessionOutput{}, err
	}

	return s.issuer.issue(ctx, user)
}
