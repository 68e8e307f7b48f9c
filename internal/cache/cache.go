package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

// NewCacheWithClient wraps an existing redis client, mainly for tests.
func NewCacheWithClient(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) GetMediaDetails(ctx context.Context, id uuid.UUID) ([]byte, error) {
	log.Printf("getting entry in cache for media #%s...", id)

	return c.get(ctx, detailsKey(id))
}

func (c *Cache) GetEtagMediaDetails(ctx context.Context, id uuid.UUID) (string, error) {
	log.Printf("getting etag entry in cache for media #%s...", id)

	val, err := c.get(ctx, detailsEtagKey(id))
	if err != nil {
		return "", err
	}
	return string(val), nil
}

func (c *Cache) SetMediaDetails(ctx context.Context, id uuid.UUID, data []byte, ttl time.Duration) {
	log.Printf("creating entry in cache for media #%s, valid for %s...", id, ttl)

	if err := c.client.Set(ctx, detailsKey(id), data, ttl).Err(); err != nil {
		log.Printf("WARN: redis set failed for media #%s: %v", id, err)
	}
}

func (c *Cache) SetEtagMediaDetails(ctx context.Context, id uuid.UUID, etag string, ttl time.Duration) {
	log.Printf("creating etag entry in cache for media #%s, valid for %s...", id, ttl)

	if err := c.client.Set(ctx, detailsEtagKey(id), etag, ttl).Err(); err != nil {
		log.Printf("WARN: redis set failed for etag of media #%s: %v", id, err)
	}
}

func (c *Cache) DeleteMediaDetails(ctx context.Context, id uuid.UUID) error {
	log.Printf("deleting entries in cache for media #%s...", id)

	if err := c.client.Del(ctx, detailsKey(id), detailsEtagKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) GetMediaList(ctx context.Context, key string) ([]byte, error) {
	log.Printf("getting entry in cache for media list %q...", key)

	return c.get(ctx, listKey(key))
}

func (c *Cache) GetEtagMediaList(ctx context.Context, key string) (string, error) {
	log.Printf("getting etag entry in cache for media list %q...", key)

	val, err := c.get(ctx, listEtagKey(key))
	if err != nil {
		return "", err
	}
	return string(val), nil
}

func (c *Cache) SetMediaList(ctx context.Context, key string, data []byte, ttl time.Duration) {
	log.Printf("creating entry in cache for media list %q, valid for %s...", key, ttl)

	if err := c.client.Set(ctx, listKey(key), data, ttl).Err(); err != nil {
		log.Printf("WARN: redis set failed for media list %q: %v", key, err)
	}
}

func (c *Cache) SetEtagMediaList(ctx context.Context, key string, etag string, ttl time.Duration) {
	log.Printf("creating etag entry in cache for media list %q, valid for %s...", key, ttl)

	if err := c.client.Set(ctx, listEtagKey(key), etag, ttl).Err(); err != nil {
		log.Printf("WARN: redis set failed for etag of media list %q: %v", key, err)
	}
}

func (c *Cache) ListVersion(ctx context.Context) (int64, error) {
	val, err := c.client.Get(ctx, listVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) BumpListVersion(ctx context.Context) error {
	log.Print("bumping media list cache version...")

	if err := c.client.Incr(ctx, listVersionKey).Err(); err != nil {
		return fmt.Errorf("redis incr failed: %w", err)
	}
	return nil
}

func (c *Cache) get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

const listVersionKey = "media_list_version"

func detailsKey(id uuid.UUID) string {
	return "media_details:" + id.String()
}

func detailsEtagKey(id uuid.UUID) string {
	return "media_details_etag:" + id.String()
}

func listKey(key string) string {
	return "media_list:" + key
}

func listEtagKey(key string) string {
	return "media_list_etag:" + key
}
