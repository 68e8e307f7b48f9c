package media

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"mediavault/internal/mock"
	"mediavault/internal/model"
	"mediavault/internal/uuid"
)

func TestGetMedia_NotFound(t *testing.T) {
	repo := &mock.MockMediaRepo{GetErr: sql.ErrNoRows}
	strg := &mock.Storage{}
	svc := NewMediaGetter(repo, strg, "medias")

	_, err := svc.GetMedia(context.Background(), uuid.NewUUID())
	if !errors.Is(err, ErrObjectNotFound) {
		t.Errorf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestGetMedia_RepoError(t *testing.T) {
	repo := &mock.MockMediaRepo{GetErr: errors.New("db down")}
	strg := &mock.Storage{}
	svc := NewMediaGetter(repo, strg, "medias")

	_, err := svc.GetMedia(context.Background(), uuid.NewUUID())
	if err == nil || errors.Is(err, ErrObjectNotFound) {
		t.Errorf("expected the raw repo error, got %v", err)
	}
}

func TestGetMedia_Success(t *testing.T) {
	id := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	alt := "a sunset"
	thumb := "thumbnails/" + id.String() + ".webp"
	now := time.Now().UTC()
	repo := &mock.MockMediaRepo{MediaRecord: &model.Media{
		ID:               id,
		ObjectKey:        "2024/01/02/abc.png",
		OriginalFilename: "sunset.png",
		URL:              "https://cdn.example.com/medias/2024/01/02/abc.png",
		MimeType:         "image/png",
		SizeBytes:        12345,
		AltText:          &alt,
		Tags:             model.Tags{"travel"},
		ThumbnailKey:     &thumb,
		Metadata:         model.Metadata{Width: 800, Height: 600},
		CreatedAt:        now,
	}}
	strg := &mock.Storage{}
	svc := NewMediaGetter(repo, strg, "medias")

	out, err := svc.GetMedia(context.Background(), id)
	if err != nil {
		t.Fatalf("GetMedia: %v", err)
	}
	if out.ID != id || out.OriginalFilename != "sunset.png" {
		t.Errorf("output = %+v", out)
	}
	if out.Width != 800 || out.Height != 600 {
		t.Errorf("dimensions = %dx%d; want 800x600", out.Width, out.Height)
	}
	if out.AltText == nil || *out.AltText != alt {
		t.Errorf("alt text = %v", out.AltText)
	}
	if out.ThumbnailURL == nil {
		t.Fatal("expected a thumbnail URL")
	}
	if want := strg.PublicURL("medias", thumb); *out.ThumbnailURL != want {
		t.Errorf("thumbnail URL = %q; want %q", *out.ThumbnailURL, want)
	}
	if !out.CreatedAt.Equal(now) {
		t.Errorf("created_at = %s; want %s", out.CreatedAt, now)
	}
}

func TestGetMedia_NoThumbnail(t *testing.T) {
	id := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	repo := &mock.MockMediaRepo{MediaRecord: &model.Media{
		ID:               id,
		OriginalFilename: "report.pdf",
		MimeType:         "application/pdf",
		Metadata:         model.Metadata{PageCount: 3},
	}}
	strg := &mock.Storage{}
	svc := NewMediaGetter(repo, strg, "medias")

	out, err := svc.GetMedia(context.Background(), id)
	if err != nil {
		t.Fatalf("GetMedia: %v", err)
	}
	if out.ThumbnailURL != nil {
		t.Errorf("thumbnail URL = %v; want nil", out.ThumbnailURL)
	}
	if out.PageCount != 3 {
		t.Errorf("page count = %d; want 3", out.PageCount)
	}
}
