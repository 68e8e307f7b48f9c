package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mediavault/internal/port"
)

const defaultEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoMailer sends magic-link emails through the Brevo transactional API.
type BrevoMailer struct {
	apiKey     string
	fromEmail  string
	fromName   string
	endpoint   string
	httpClient *http.Client
}

// compile-time check: *BrevoMailer must satisfy port.Mailer
var _ port.Mailer = (*BrevoMailer)(nil)

func NewBrevoMailer(apiKey, fromEmail, fromName string) *BrevoMailer {
	return &BrevoMailer{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		fromName:   fromName,
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendEmailReq struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HtmlContent string              `json:"htmlContent"`
}

func (m *BrevoMailer) SendMagicLink(ctx context.Context, toEmail, link string) error {
	body := sendEmailReq{
		Sender:  map[string]string{"email": m.fromEmail, "name": m.fromName},
		To:      []map[string]string{{"email": toEmail}},
		Subject: "Your sign-in link",
		HtmlContent: fmt.Sprintf(
			"<p>Click the link below to sign in. It expires in 15 minutes and can only be used once.</p><p><a href=%q>Sign in</a></p>",
			link,
		),
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("could not marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("could not create email request: %w", err)
	}
	req.Header.Set("api-key", m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("email API error: status %d, body: %s", resp.StatusCode, raw)
	}

	return nil
}
