package mock

import "context"

// Mailer implements the mailer for tests.
type Mailer struct {
	SentTo   string
	SentLink string
	SendErr  error

	SendCalled bool
}

func (m *Mailer) SendMagicLink(ctx context.Context, toEmail, link string) error {
	m.SendCalled = true
	m.SentTo = toEmail
	m.SentLink = link
	return m.SendErr
}
