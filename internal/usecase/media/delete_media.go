package media

import (
	"context"
	"database/sql"
	"errors"

	"mediavault/internal/logger"
	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

type mediaDeleterSrv struct {
	repo   port.MediaRepository
	cache  port.Cache
	strg   port.Storage
	bucket string
}

// compile-time check: *mediaDeleterSrv must satisfy port.MediaDeleter
var _ port.MediaDeleter = (*mediaDeleterSrv)(nil)

// NewMediaDeleter constructs a MediaDeleter implementation.
func NewMediaDeleter(repo port.MediaRepository, cache port.Cache, strg port.Storage, bucket string) port.MediaDeleter {
	return &mediaDeleterSrv{repo, cache, strg, bucket}
}

// DeleteMedia removes the stored objects, then the metadata row. When the
// original object removal fails the row is left untouched so the gallery
// stays consistent with storage.
func (s *mediaDeleterSrv) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrObjectNotFound
		}
		return err
	}

	if m.ThumbnailKey != nil {
		if err := s.strg.RemoveFile(ctx, s.bucket, *m.ThumbnailKey); err != nil {
			logger.Warnf(ctx, "failed to remove thumbnail %q: %v", *m.ThumbnailKey, err)
		}
	}

	if err := s.strg.RemoveFile(ctx, s.bucket, m.ObjectKey); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, m.ID); err != nil {
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
