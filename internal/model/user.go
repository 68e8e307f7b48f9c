package model

import (
	"time"

	"mediavault/internal/uuid"
)

const (
	ProviderMagicLink = "magic_link"
	ProviderGithub    = "github"
)

// User is a row of the users table. Users are created on first successful
// sign-in, never registered explicitly.
type User struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	AvatarURL   *string    `json:"avatar_url"`
	Provider    string     `json:"provider"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}
