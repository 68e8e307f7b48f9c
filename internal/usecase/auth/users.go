package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"mediavault/internal/model"
	"mediavault/internal/port"
)

// upsertUser finds the account for an email or creates it on first sign-in,
// refreshing profile fields and the last-login timestamp either way.
func upsertUser(ctx context.Context, users port.UserRepository, genUUID port.UUIDGen, email, displayName string, avatarURL *string, provider string) (*model.User, error) {
	now := time.Now().UTC()

	user, err := users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		user = &model.User{
			ID:          genUUID(),
			Email:       email,
			DisplayName: displayName,
			AvatarURL:   avatarURL,
			Provider:    provider,
			CreatedAt:   now,
			LastLoginAt: &now,
		}
		if err := users.Create(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	if displayName != "" {
		user.DisplayName = displayName
	}
	if avatarURL != nil {
		user.AvatarURL = avatarURL
	}
	user.LastLoginAt = &now
	if err := users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// displayNameFromEmail derives a readable default name from the local part.
func displayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
