package media

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mediavault/internal/logger"
	"mediavault/internal/port"
)

type mediaUpdaterSrv struct {
	repo   port.MediaRepository
	cache  port.Cache
	strg   port.Storage
	bucket string
}

// compile-time check: *mediaUpdaterSrv must satisfy port.MediaUpdater
var _ port.MediaUpdater = (*mediaUpdaterSrv)(nil)

// NewMediaUpdater constructs a MediaUpdater implementation.
func NewMediaUpdater(repo port.MediaRepository, cache port.Cache, strg port.Storage, bucket string) port.MediaUpdater {
	return &mediaUpdaterSrv{repo, cache, strg, bucket}
}

// UpdateMedia edits alt text and tags; nil input fields are left unchanged.
func (s *mediaUpdaterSrv) UpdateMedia(ctx context.Context, in port.UpdateMediaInput) (port.MediaOutput, error) {
	m, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return port.MediaOutput{}, ErrObjectNotFound
		}
		return port.MediaOutput{}, err
	}

	if in.AltText != nil {
		m.AltText = in.AltText
	}
	if in.Tags != nil {
		m.Tags = *in.Tags
	}
	m.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, m); err != nil {
		return port.MediaOutput{}, err
	}

	if err := s.cache.DeleteMediaDetails(ctx, m.ID); err != nil {
		logger.Warnf(ctx, "failed deleting cache for media #%s: %v", m.ID, err)
	}
	if err := s.cache.BumpListVersion(ctx); err != nil {
		logger.Warnf(ctx, "failed to bump gallery cache version: %v", err)
	}

	return toMediaOutput(m, s.strg, s.bucket), nil
}
