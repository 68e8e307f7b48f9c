package mailer

import (
	"context"
	"log"

	"mediavault/internal/port"
)

// LogMailer prints magic links to the process log instead of sending them.
// Used in development when no mail API key is configured.
type LogMailer struct{}

// compile-time check: *LogMailer must satisfy port.Mailer
var _ port.Mailer = (*LogMailer)(nil)

func NewLogMailer() *LogMailer { return &LogMailer{} }

func (m *LogMailer) SendMagicLink(ctx context.Context, toEmail, link string) error {
	log.Printf("magic link for %s: %s", toEmail, link)
	return nil
}
