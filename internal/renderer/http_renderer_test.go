package renderer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"strings"
	"testing"

	"mediavault/internal/mock"
	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

func TestRenderGetMedia_CacheHit(t *testing.T) {
	id := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	cached := []byte(`{"id":"aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"}`)

	cache := &mock.Cache{DetailsOut: cached, EtagDetails: `"cafebabe"`}
	getter := &mock.MockMediaGetter{}
	r := NewHTTPRenderer(cache)

	raw, etag, err := r.RenderGetMedia(context.Background(), getter, id)
	if err != nil {
		t.Fatalf("RenderGetMedia: %v", err)
	}
	if !bytes.Equal(raw, cached) {
		t.Errorf("raw = %q; want cached payload", raw)
	}
	if etag != `"cafebabe"` {
		t.Errorf("etag = %q; want cached etag", etag)
	}
	if getter.Called {
		t.Error("use case should not run on a cache hit")
	}
}

func TestRenderGetMedia_CacheMiss(t *testing.T) {
	id := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	out := port.MediaOutput{
		ID:               id,
		URL:              "https://cdn.example.com/key",
		OriginalFilename: "sunset.png",
		MimeType:         "image/png",
		SizeBytes:        12345,
	}

	cache := &mock.Cache{}
	getter := &mock.MockMediaGetter{Out: out}
	r := NewHTTPRenderer(cache)

	raw, etag, err := r.RenderGetMedia(context.Background(), getter, id)
	if err != nil {
		t.Fatalf("RenderGetMedia: %v", err)
	}
	if !getter.Called || getter.ID != id {
		t.Errorf("use case not called with #%s", id)
	}

	want, _ := json.Marshal(out)
	if !bytes.Equal(raw, want) {
		t.Errorf("raw = %q; want %q", raw, want)
	}
	wantEtag := fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(want))
	if etag != wantEtag {
		t.Errorf("etag = %q; want %q", etag, wantEtag)
	}
	if !cache.SetDetailsCalled || !cache.SetEtagDetailsCalled {
		t.Error("expected fresh result to be cached")
	}
}

func TestRenderGetMedia_UsecaseError(t *testing.T) {
	id := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

	cache := &mock.Cache{}
	getter := &mock.MockMediaGetter{Err: errors.New("boom")}
	r := NewHTTPRenderer(cache)

	_, _, err := r.RenderGetMedia(context.Background(), getter, id)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if cache.SetDetailsCalled {
		t.Error("nothing should be cached on failure")
	}
}

func TestRenderGetMedia_CacheErrorFallsThrough(t *testing.T) {
	id := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

	cache := &mock.Cache{GetDetailsErr: errors.New("redis down")}
	getter := &mock.MockMediaGetter{Out: port.MediaOutput{ID: id}}
	r := NewHTTPRenderer(cache)

	raw, etag, err := r.RenderGetMedia(context.Background(), getter, id)
	if err != nil {
		t.Fatalf("RenderGetMedia: %v", err)
	}
	if !getter.Called {
		t.Error("use case should run when the cache errors")
	}
	if raw == nil || etag == "" {
		t.Error("expected a rendered payload despite the cache error")
	}
}

func TestRenderListMedias_CacheHit(t *testing.T) {
	cached := []byte(`{"items":[]}`)
	cache := &mock.Cache{VersionOut: 3, ListOut: cached, EtagList: `"deadbeef"`}
	lister := &mock.MockMediaLister{}
	r := NewHTTPRenderer(cache)

	in := port.ListMediasInput{Search: "sunset", Limit: 20}
	raw, etag, err := r.RenderListMedias(context.Background(), lister, in)
	if err != nil {
		t.Fatalf("RenderListMedias: %v", err)
	}
	if !bytes.Equal(raw, cached) || etag != `"deadbeef"` {
		t.Errorf("got (%q, %q); want cached payload", raw, etag)
	}
	if lister.Called {
		t.Error("use case should not run on a cache hit")
	}
	if !strings.HasPrefix(cache.ListKey, "v3:") {
		t.Errorf("list key = %q; want v3: prefix", cache.ListKey)
	}
}

func TestRenderListMedias_CacheMiss(t *testing.T) {
	out := port.ListMediasOutput{
		Items:      []port.MediaOutput{{OriginalFilename: "sunset.png"}},
		NextCursor: "abc",
	}
	cache := &mock.Cache{VersionOut: 7}
	lister := &mock.MockMediaLister{Out: out}
	r := NewHTTPRenderer(cache)

	in := port.ListMediasInput{Limit: 50}
	raw, etag, err := r.RenderListMedias(context.Background(), lister, in)
	if err != nil {
		t.Fatalf("RenderListMedias: %v", err)
	}
	if !lister.Called {
		t.Fatal("use case should run on a cache miss")
	}

	want, _ := json.Marshal(out)
	if !bytes.Equal(raw, want) {
		t.Errorf("raw = %q; want %q", raw, want)
	}
	wantEtag := fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(want))
	if etag != wantEtag {
		t.Errorf("etag = %q; want %q", etag, wantEtag)
	}
	if !cache.SetListCalled || !cache.SetEtagListCalled {
		t.Error("expected fresh page to be cached")
	}
	if !strings.HasPrefix(cache.ListKey, "v7:") {
		t.Errorf("list key = %q; want v7: prefix", cache.ListKey)
	}
}

func TestRenderListMedias_VersionErrorSkipsCache(t *testing.T) {
	cache := &mock.Cache{VersionErr: errors.New("redis down")}
	lister := &mock.MockMediaLister{Out: port.ListMediasOutput{}}
	r := NewHTTPRenderer(cache)

	raw, etag, err := r.RenderListMedias(context.Background(), lister, port.ListMediasInput{Limit: 50})
	if err != nil {
		t.Fatalf("RenderListMedias: %v", err)
	}
	if !lister.Called {
		t.Error("use case should run when the version counter is unreachable")
	}
	if raw == nil || etag == "" {
		t.Error("expected a rendered payload despite the cache error")
	}
	if cache.GetListCalled || cache.SetListCalled {
		t.Error("cache should be bypassed entirely when the version is unknown")
	}
}

func TestRenderListMedias_UsecaseError(t *testing.T) {
	cache := &mock.Cache{}
	lister := &mock.MockMediaLister{Err: errors.New("boom")}
	r := NewHTTPRenderer(cache)

	_, _, err := r.RenderListMedias(context.Background(), lister, port.ListMediasInput{Limit: 50})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if cache.SetListCalled {
		t.Error("nothing should be cached on failure")
	}
}

func TestListCacheKey_DistinguishesInputs(t *testing.T) {
	a := listCacheKey(1, port.ListMediasInput{Search: "a", Limit: 50})
	b := listCacheKey(1, port.ListMediasInput{Search: "b", Limit: 50})
	if a == b {
		t.Error("different searches must map to different keys")
	}

	v1 := listCacheKey(1, port.ListMediasInput{Limit: 50})
	v2 := listCacheKey(2, port.ListMediasInput{Limit: 50})
	if v1 == v2 {
		t.Error("different versions must map to different keys")
	}
}
