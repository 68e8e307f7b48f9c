package media

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io"
	"time"

	"mediavault/internal/logger"
	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

type thumbnailGeneratorSrv struct {
	repo   port.MediaRepository
	strg   port.Storage
	thumb  port.Thumbnailer
	cache  port.Cache
	bucket string
	width  int
}

// compile-time check: *thumbnailGeneratorSrv must satisfy port.ThumbnailGenerator
var _ port.ThumbnailGenerator = (*thumbnailGeneratorSrv)(nil)

// NewThumbnailGenerator constructs a ThumbnailGenerator implementation.
func NewThumbnailGenerator(repo port.MediaRepository, strg port.Storage, thumb port.Thumbnailer, cache port.Cache, bucket string, width int) port.ThumbnailGenerator {
	return &thumbnailGeneratorSrv{repo, strg, thumb, cache, bucket, width}
}

// GenerateThumbnail downloads the original image, produces a WebP thumbnail
// and records its key on the media row. Non-image medias are skipped.
func (s *thumbnailGeneratorSrv) GenerateThumbnail(ctx context.Context, id uuid.UUID) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrObjectNotFound
		}
		return err
	}
	if !IsImage(m.MimeType) {
		logger.Debugf(ctx, "media #%s is not an image, skipping thumbnail", m.ID)
		return nil
	}

	file, err := s.strg.GetFile(ctx, s.bucket, m.ObjectKey)
	if err != nil {
		return err
	}
	defer func(file io.ReadSeekCloser) {
		if err := file.Close(); err != nil {
			logger.Warnf(ctx, "failed to close reader for %q", m.ObjectKey)
		}
	}(file)

	data, err := s.thumb.Thumbnail(m.MimeType, file, s.width)
	if err != nil {
		return err
	}

	key := ThumbnailKey(m.ID)
	if err := s.strg.SaveFile(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		map[string]string{"Content-Type": "image/webp"},
	); err != nil {
		return err
	}

	m.ThumbnailKey = &key
	m.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, m); err != nil {
		return err
	}

	if err := s.cache.DeleteMediaDetails(ctx, m.ID); err != nil {
		logger.Warnf(ctx, "failed deleting cache for media #%s: %v", m.ID, err)
	}
	if err := s.cache.BumpListVersion(ctx); err != nil {
		logger.Warnf(ctx, "failed to bump gallery cache version: %v", err)
	}

	return nil
}
