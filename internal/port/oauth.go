package port

import "context"

// OAuthUser is the provider-side profile of a signed-in user.
type OAuthUser struct {
	Email       string
	DisplayName string
	AvatarURL   string
}

// OAuthProvider abstracts one OAuth authorization-code flow.
type OAuthProvider interface {
	Name() string
	AuthorizeURL(state string) string
	// Exchange trades an authorization code for an access token.
	Exchange(ctx context.Context, code string) (string, error)
	FetchUser(ctx context.Context, accessToken string) (OAuthUser, error)
}
