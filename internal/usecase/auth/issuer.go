package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"mediavault/internal/model"
	"mediavault/internal/port"
)

// Issuer is the internal claim namespace of session tokens.
const Issuer = "mediavault"

// sessionIssuer mints a session: a live redis entry plus a signed JWT whose
// sid points at it. A token is only as alive as its redis entry, which is
// what makes sign-out an actual revocation.
type sessionIssuer struct {
	store      port.SessionStore
	genUUID    port.UUIDGen
	jwtSecret  []byte
	sessionTTL time.Duration
}

func newSessionIssuer(store port.SessionStore, genUUID port.UUIDGen, jwtSecret string, sessionTTL time.Duration) *sessionIssuer {
	return &sessionIssuer{
		store:      store,
		genUUID:    genUUID,
		jwtSecret:  []byte(jwtSecret),
		sessionTTL: sessionTTL,
	}
}

func (i *sessionIssuer) issue(ctx context.Context, user *model.User) (port.SessionOutput, error) {
	sid := i.genUUID().String()
	if err := i.store.SaveSession(ctx, sid, user.ID, i.sessionTTL); err != nil {
		return port.SessionOutput{}, fmt.Errorf("failed to save session: %w", err)
	}

	now := time.Now().UTC()
	expiresAt := now.Add(i.sessionTTL)
	claims := jwt.MapClaims{
		"iss": Issuer,
		"sub": user.ID.String(),
		"sid": sid,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.jwtSecret)
	if err != nil {
		return port.SessionOutput{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return port.SessionOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserOutput(user),
	}, nil
}

func toUserOutput(u *model.User) port.UserOutput {
	return port.UserOutput{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
	}
}

func randomToken(nBytes int) string {
	b := make([]byte, nBytes)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
