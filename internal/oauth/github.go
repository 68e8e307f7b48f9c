package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mediavault/internal/model"
	"mediavault/internal/port"
)

// GithubProvider implements the GitHub authorization-code flow.
type GithubProvider struct {
	clientID string
	secret   string
	callback string

	authorizeEndpoint string
	tokenEndpoint     string
	apiEndpoint       string
	httpClient        *http.Client
}

// compile-time check: *GithubProvider must satisfy port.OAuthProvider
var _ port.OAuthProvider = (*GithubProvider)(nil)

func NewGithubProvider(clientID, secret, callbackURL string) *GithubProvider {
	return &GithubProvider{
		clientID:          clientID,
		secret:            secret,
		callback:          callbackURL,
		authorizeEndpoint: "https://github.com/login/oauth/authorize",
		tokenEndpoint:     "https://github.com/login/oauth/access_token",
		apiEndpoint:       "https://api.github.com",
		httpClient:        &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *GithubProvider) Name() string {
	return model.ProviderGithub
}

func (p *GithubProvider) AuthorizeURL(state string) string {
	q := url.Values{}
	q.Set("client_id", p.clientID)
	q.Set("redirect_uri", p.callback)
	q.Set("scope", "read:user user:email")
	q.Set("state", state)
	return p.authorizeEndpoint + "?" + q.Encode()
}

func (p *GithubProvider) Exchange(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("client_id", p.clientID)
	form.Set("client_secret", p.secret)
	form.Set("code", code)
	form.Set("redirect_uri", p.callback)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("could not create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("token endpoint error: status %d, body: %s", resp.StatusCode, raw)
	}

	var out struct {
		AccessToken string `json:"access_token"`
		Error       string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("could not decode token response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("token endpoint error: %s", out.Error)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}

	return out.AccessToken, nil
}

func (p *GithubProvider) FetchUser(ctx context.Context, accessToken string) (port.OAuthUser, error) {
	var profile struct {
		Login     string `json:"login"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := p.getJSON(ctx, accessToken, "/user", &profile); err != nil {
		return port.OAuthUser{}, err
	}

	email := profile.Email
	if email == "" {
		// profile email is often hidden, the emails endpoint always has it
		primary, err := p.primaryEmail(ctx, accessToken)
		if err != nil {
			return port.OAuthUser{}, err
		}
		email = primary
	}

	displayName := profile.Name
	if displayName == "" {
		displayName = profile.Login
	}

	return port.OAuthUser{
		Email:       email,
		DisplayName: displayName,
		AvatarURL:   profile.AvatarURL,
	}, nil
}

func (p *GithubProvider) primaryEmail(ctx context.Context, accessToken string) (string, error) {
	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}
	if err := p.getJSON(ctx, accessToken, "/user/emails", &emails); err != nil {
		return "", err
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	return "", fmt.Errorf("no verified primary email on account")
}

func (p *GithubProvider) getJSON(ctx context.Context, accessToken, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.apiEndpoint+path, nil)
	if err != nil {
		return fmt.Errorf("could not create API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("API error on %s: status %d, body: %s", path, resp.StatusCode, raw)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("could not decode API response: %w", err)
	}
	return nil
}
