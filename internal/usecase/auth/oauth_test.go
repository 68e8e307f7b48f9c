package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"mediavault/internal/mock"
	"mediavault/internal/model"
	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

func newOAuthSvc(p *mock.OAuthProvider, store *mock.SessionStore, users *mock.MockUserRepo) *oauthSrv {
	return NewOAuth([]port.OAuthProvider{p}, users, store, uuid.NewUUID, testSecret, time.Hour)
}

func TestStartOAuth_UnknownProvider(t *testing.T) {
	p := &mock.OAuthProvider{NameOut: "github"}
	svc := newOAuthSvc(p, &mock.SessionStore{}, &mock.MockUserRepo{})

	_, err := svc.StartOAuth(context.Background(), "gitlab")
	if !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
}

func TestStartOAuth_Success(t *testing.T) {
	p := &mock.OAuthProvider{NameOut: "github"}
	store := &mock.SessionStore{}
	svc := newOAuthSvc(p, store, &mock.MockUserRepo{})

	url, err := svc.StartOAuth(context.Background(), "github")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.SaveStateCalled {
		t.Fatal("a state should be stored before redirecting")
	}
	if !strings.HasSuffix(url, p.State) {
		t.Errorf("authorize URL should carry the stored state, got %q", url)
	}
}

func TestCompleteOAuth_StateExpired(t *testing.T) {
	p := &mock.OAuthProvider{NameOut: "github"}
	store := &mock.SessionStore{ConsumeStateErr: port.ErrTokenNotFound}
	svc := newOAuthSvc(p, store, &mock.MockUserRepo{})

	_, err := svc.CompleteOAuth(context.Background(), "github", "code", "stale")
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if p.ExchangeCalled {
		t.Error("no code exchange should happen with a bad state")
	}
}

func TestCompleteOAuth_StateForOtherProvider(t *testing.T) {
	p := &mock.OAuthProvider{NameOut: "github"}
	store := &mock.SessionStore{ProviderOut: "gitlab"}
	svc := newOAuthSvc(p, store, &mock.MockUserRepo{})

	_, err := svc.CompleteOAuth(context.Background(), "github", "code", "state")
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestCompleteOAuth_ExchangeError(t *testing.T) {
	p := &mock.OAuthProvider{NameOut: "github", ExchangeErr: errors.New("bad code")}
	store := &mock.SessionStore{ProviderOut: "github"}
	svc := newOAuthSvc(p, store, &mock.MockUserRepo{})

	if _, err := svc.CompleteOAuth(context.Background(), "github", "code", "state"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestCompleteOAuth_Success(t *testing.T) {
	p := &mock.OAuthProvider{
		NameOut:  "github",
		TokenOut: "gho_token",
		UserOut: port.OAuthUser{
			Email:       "dev@example.com",
			DisplayName: "Dev Eloper",
			AvatarURL:   "https://avatars.example.com/dev",
		},
	}
	store := &mock.SessionStore{ProviderOut: "github"}
	users := &mock.MockUserRepo{GetByEmailErr: sql.ErrNoRows}
	svc := newOAuthSvc(p, store, users)

	out, err := svc.CompleteOAuth(context.Background(), "github", "code", "state")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Token != "gho_token" {
		t.Error("profile fetch should use the exchanged token")
	}
	if !users.CreateCalled {
		t.Fatal("a first sign-in should create the account")
	}
	if users.Created.Provider != model.ProviderGithub {
		t.Errorf("provider should be %q, got %q", model.ProviderGithub, users.Created.Provider)
	}
	if users.Created.AvatarURL == nil || *users.Created.AvatarURL != "https://avatars.example.com/dev" {
		t.Error("the avatar should be recorded")
	}
	if out.Token == "" || !store.SaveSessionCalled {
		t.Error("a session should be issued")
	}
	if out.User.DisplayName != "Dev Eloper" {
		t.Errorf("display name should come from the provider, got %q", out.User.DisplayName)
	}
}
