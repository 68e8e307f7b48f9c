package port

import (
	"context"
	"time"

	"mediavault/internal/uuid"
)

// Cache provides caching capabilities for media details and gallery pages.
type Cache interface {
	GetMediaDetails(ctx context.Context, id uuid.UUID) ([]byte, error)
	GetEtagMediaDetails(ctx context.Context, id uuid.UUID) (string, error)
	SetMediaDetails(ctx context.Context, id uuid.UUID, data []byte, ttl time.Duration)
	SetEtagMediaDetails(ctx context.Context, id uuid.UUID, etag string, ttl time.Duration)
	DeleteMediaDetails(ctx context.Context, id uuid.UUID) error

	GetMediaList(ctx context.Context, key string) ([]byte, error)
	GetEtagMediaList(ctx context.Context, key string) (string, error)
	SetMediaList(ctx context.Context, key string, data []byte, ttl time.Duration)
	SetEtagMediaList(ctx context.Context, key string, etag string, ttl time.Duration)

	// ListVersion is a monotonic counter folded into every gallery cache key;
	// bumping it invalidates all cached pages at once.
	ListVersion(ctx context.Context) (int64, error)
	BumpListVersion(ctx context.Context) error
}
