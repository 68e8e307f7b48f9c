package cache

import (
	"context"
	"time"

	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

// NoopCache is used when no redis instance is configured; every read is a miss.
type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetMediaDetails(ctx context.Context, id uuid.UUID) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagMediaDetails(ctx context.Context, id uuid.UUID) (string, error) {
	return "", nil
}

func (n *NoopCache) SetMediaDetails(ctx context.Context, id uuid.UUID, data []byte, ttl time.Duration) {
}

func (n *NoopCache) SetEtagMediaDetails(ctx context.Context, id uuid.UUID, etag string, ttl time.Duration) {
}

func (n *NoopCache) DeleteMediaDetails(ctx context.Context, id uuid.UUID) error { return nil }

func (n *NoopCache) GetMediaList(ctx context.Context, key string) ([]byte, error) {
	return nil, nil
}

func (n *NoopCache) GetEtagMediaList(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (n *NoopCache) SetMediaList(ctx context.Context, key string, data []byte, ttl time.Duration) {
}

func (n *NoopCache) SetEtagMediaList(ctx context.Context, key string, etag string, ttl time.Duration) {
}

func (n *NoopCache) ListVersion(ctx context.Context) (int64, error) { return 0, nil }

func (n *NoopCache) BumpListVersion(ctx context.Context) error { return nil }
