package media

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"mediavault/internal/mock"
	"mediavault/internal/model"
	"mediavault/internal/uuid"
)

func TestGenerateThumbnail_NotFound(t *testing.T) {
	repo := &mock.MockMediaRepo{GetErr: sql.ErrNoRows}
	svc := NewThumbnailGenerator(repo, &mock.Storage{}, &mock.Thumbnailer{}, &mock.Cache{}, "medias", 320)

	err := svc.GenerateThumbnail(context.Background(), uuid.NewUUID())
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestGenerateThumbnail_SkipsNonImage(t *testing.T) {
	mrec := &model.Media{ID: uuid.NewUUID(), MimeType: "application/pdf", ObjectKey: "k.pdf"}
	repo := &mock.MockMediaRepo{MediaRecord: mrec}
	strg := &mock.Storage{}
	thumb := &mock.Thumbnailer{}
	svc := NewThumbnailGenerator(repo, strg, thumb, &mock.Cache{}, "medias", 320)

	if err := svc.GenerateThumbnail(context.Background(), mrec.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strg.GetCalled || thumb.Called || repo.UpdateCalled {
		t.Error("nothing should happen for a non-image media")
	}
}

func TestGenerateThumbnail_EncodeError(t *testing.T) {
	mrec := &model.Media{ID: uuid.NewUUID(), MimeType: "image/png", ObjectKey: "k.png"}
	repo := &mock.MockMediaRepo{MediaRecord: mrec}
	thumb := &mock.Thumbnailer{Err: errors.New("corrupt image")}
	svc := NewThumbnailGenerator(repo, &mock.Storage{}, thumb, &mock.Cache{}, "medias", 320)

	if err := svc.GenerateThumbnail(context.Background(), mrec.ID); err == nil {
		t.Fatal("expected error, got nil")
	}
	if repo.UpdateCalled {
		t.Error("row should not be updated when encoding fails")
	}
}

func TestGenerateThumbnail_Success(t *testing.T) {
	mrec := &model.Media{ID: uuid.NewUUID(), MimeType: "image/png", ObjectKey: "2026/08/01/k.png"}
	repo := &mock.MockMediaRepo{MediaRecord: mrec}
	strg := &mock.Storage{}
	thumb := &mock.Thumbnailer{Out: []byte("webp-bytes")}
	ca := &mock.Cache{}
	svc := NewThumbnailGenerator(repo, strg, thumb, ca, "medias", 240)

	if err := svc.GenerateThumbnail(context.Background(), mrec.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if thumb.Width != 240 {
		t.Errorf("thumbnailer should receive the configured width, got %d", thumb.Width)
	}
	wantKey := "thumbnails/" + mrec.ID.String() + ".webp"
	if len(strg.SavedKeys) != 1 || strg.SavedKeys[0] != wantKey {
		t.Errorf("thumbnail should be saved under %q, got %v", wantKey, strg.SavedKeys)
	}
	if !repo.UpdateCalled || repo.Updated.ThumbnailKey == nil || *repo.Updated.ThumbnailKey != wantKey {
		t.Error("the thumbnail key should be recorded on the row")
	}
	if !ca.DelDetailsCalled || !ca.BumpCalled {
		t.Error("caches should be invalidated once the thumbnail exists")
	}
}
