package auth

import "errors"

var (
	ErrRateLimited     = errors.New("auth: too many magic-link requests")
	ErrInvalidToken    = errors.New("auth: invalid or expired token")
	ErrInvalidState    = errors.New("auth: invalid or expired oauth state")
	ErrUnknownProvider = errors.New("auth: unknown oauth provider")
	ErrUserNotFound    = errors.New("auth: user not found")
)
