package media

import (
	"context"
	"database/sql"
	"errors"

	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

type mediaGetterSrv struct {
	repo   port.MediaRepository
	strg   port.Storage
	bucket string
}

// compile-time check: *mediaGetterSrv must satisfy port.MediaGetter
var _ port.MediaGetter = (*mediaGetterSrv)(nil)

// NewMediaGetter constructs a MediaGetter implementation.
func NewMediaGetter(repo port.MediaRepository, strg port.Storage, bucket string) port.MediaGetter {
	return &mediaGetterSrv{repo, strg, bucket}
}

func (s *mediaGetterSrv) GetMedia(ctx context.Context, id uuid.UUID) (port.MediaOutput, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return port.MediaOutput{}, ErrObjectNotFound
		}
		return port.MediaOutput{}, err
	}

	return toMediaOutput(m, s.strg, s.bucket), nil
}
