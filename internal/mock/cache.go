package mock

import (
	"context"
	"time"

	"mediavault/internal/uuid"
)

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	DetailsOut  []byte
	ListOut     []byte
	VersionOut  int64
	EtagDetails string
	EtagList    string

	// captured inputs
	ListKey string

	// errors
	GetDetailsErr     error
	GetEtagDetailsErr error
	DelDetailsErr     error
	GetListErr        error
	GetEtagListErr    error
	VersionErr        error
	BumpErr           error

	// call flags
	GetDetailsCalled     bool
	GetEtagDetailsCalled bool
	SetDetailsCalled     bool
	SetEtagDetailsCalled bool
	DelDetailsCalled     bool
	GetListCalled        bool
	GetEtagListCalled    bool
	SetListCalled        bool
	SetEtagListCalled    bool
	VersionCalled        bool
	BumpCalled           bool
}

func (c *Cache) GetMediaDetails(ctx context.Context, id uuid.UUID) ([]byte, error) {
	c.GetDetailsCalled = true
	if c.GetDetailsErr != nil {
		return nil, c.GetDetailsErr
	}
	return c.DetailsOut, nil
}

func (c *Cache) GetEtagMediaDetails(ctx context.Context, id uuid.UUID) (string, error) {
	c.GetEtagDetailsCalled = true
	if c.GetEtagDetailsErr != nil {
		return "", c.GetEtagDetailsErr
	}
	return c.EtagDetails, nil
}

func (c *Cache) SetMediaDetails(ctx context.Context, id uuid.UUID, data []byte, ttl time.Duration) {
	c.SetDetailsCalled = true
	c.DetailsOut = data
}

func (c *Cache) SetEtagMediaDetails(ctx context.Context, id uuid.UUID, etag string, ttl time.Duration) {
	c.SetEtagDetailsCalled = true
	c.EtagDetails = etag
}

func (c *Cache) DeleteMediaDetails(ctx context.Context, id uuid.UUID) error {
	c.DelDetailsCalled = true
	return c.DelDetailsErr
}

func (c *Cache) GetMediaList(ctx context.Context, key string) ([]byte, error) {
	c.GetListCalled = true
	c.ListKey = key
	if c.GetListErr != nil {
		return nil, c.GetListErr
	}
	return c.ListOut, nil
}

func (c *Cache) GetEtagMediaList(ctx context.Context, key string) (string, error) {
	c.GetEtagListCalled = true
	if c.GetEtagListErr != nil {
		return "", c.GetEtagListErr
	}
	return c.EtagList, nil
}

func (c *Cache) SetMediaList(ctx context.Context, key string, data []byte, ttl time.Duration) {
	c.SetListCalled = true
	c.ListKey = key
	c.ListOut = data
}

func (c *Cache) SetEtagMediaList(ctx context.Context, key string, etag string, ttl time.Duration) {
	c.SetEtagListCalled = true
	c.EtagList = etag
}

func (c *Cache) ListVersion(ctx context.Context) (int64, error) {
	c.VersionCalled = true
	if c.VersionErr != nil {
		return 0, c.VersionErr
	}
	return c.VersionOut, nil
}

func (c *Cache) BumpListVersion(ctx context.Context) error {
	c.BumpCalled = true
	return c.BumpErr
}
