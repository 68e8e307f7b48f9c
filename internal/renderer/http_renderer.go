package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"time"

	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

const (
	detailsTTL = 5 * time.Minute
	listTTL    = time.Minute
)

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: cache}
}

// RenderGetMedia fetches media details either from cache or from the wrapped
// use case. It returns the JSON encoded output and a quoted ETag string.
func (r *httpRenderer) RenderGetMedia(ctx context.Context, getter port.MediaGetter, id uuid.UUID) ([]byte, string, error) {
	raw, err := r.cache.GetMediaDetails(ctx, id)
	etag, errEtag := r.cache.GetEtagMediaDetails(ctx, id)
	if err == nil && errEtag == nil && raw != nil && etag != "" {
		return raw, etag, nil
	}

	out, err := getter.GetMedia(ctx, id)
	if err != nil {
		return nil, "", err
	}

	raw, err = json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag = etagFor(raw)
	r.cache.SetMediaDetails(ctx, id, raw, detailsTTL)
	r.cache.SetEtagMediaDetails(ctx, id, etag, detailsTTL)

	return raw, etag, nil
}

// RenderListMedias fetches a gallery page either from cache or from the
// wrapped use case. Cache keys embed the current list version so bumping the
// version drops every cached page at once.
func (r *httpRenderer) RenderListMedias(ctx context.Context, lister port.MediaLister, in port.ListMediasInput) ([]byte, string, error) {
	version, errVersion := r.cache.ListVersion(ctx)
	key := listCacheKey(version, in)

	if errVersion == nil {
		raw, err := r.cache.GetMediaList(ctx, key)
		etag, errEtag := r.cache.GetEtagMediaList(ctx, key)
		if err == nil && errEtag == nil && raw != nil && etag != "" {
			return raw, etag, nil
		}
	}

	out, err := lister.ListMedias(ctx, in)
	if err != nil {
		return nil, "", err
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag := etagFor(raw)
	if errVersion == nil {
		r.cache.SetMediaList(ctx, key, raw, listTTL)
		r.cache.SetEtagMediaList(ctx, key, etag, listTTL)
	}

	return raw, etag, nil
}

func etagFor(raw []byte) string {
	return fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
}

func listCacheKey(version int64, in port.ListMediasInput) string {
	params := fmt.Sprintf("s=%s&l=%d&c=%s", in.Search, in.Limit, in.Cursor)
	return fmt.Sprintf("v%d:%08x", version, crc32.ChecksumIEEE([]byte(params)))
}
