package mock

import (
	"context"

	"mediavault/internal/port"
)

// OAuthProvider implements an OAuth provider for tests.
type OAuthProvider struct {
	NameOut  string
	TokenOut string
	UserOut  port.OAuthUser

	// captured inputs
	State string
	Code  string
	Token string

	ExchangeErr  error
	FetchUserErr error

	ExchangeCalled  bool
	FetchUserCalled bool
}

func (p *OAuthProvider) Name() string {
	return p.NameOut
}

func (p *OAuthProvider) AuthorizeURL(state string) string {
	p.State = state
	return "https://example.com/authorize?state=" + state
}

func (p *OAuthProvider) Exchange(ctx context.Context, code string) (string, error) {
	p.ExchangeCalled = true
	p.Code = code
	if p.ExchangeErr != nil {
		return "", p.ExchangeErr
	}
	return p.TokenOut, nil
}

func (p *OAuthProvider) FetchUser(ctx context.Context, accessToken string) (port.OAuthUser, error) {
	p.FetchUserCalled = true
	p.Token = accessToken
	if p.FetchUserErr != nil {
		return port.OAuthUser{}, p.FetchUserErr
	}
	return p.UserOut, nil
}
