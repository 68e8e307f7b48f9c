package port

import "context"

// Mailer sends transactional emails.
type Mailer interface {
	SendMagicLink(ctx context.Context, toEmail, link string) error
}
