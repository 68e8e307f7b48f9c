package media

import "errors"

var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")

	ErrEmptyFile      = errors.New("upload: file is empty")
	ErrFileTooLarge   = errors.New("upload: file too large")
	ErrMimeNotAllowed = errors.New("upload: mime-type not allowed")

	ErrBadCursor = errors.New("list: malformed cursor")
)
