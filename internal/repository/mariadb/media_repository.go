package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"mediavault/internal/model"
	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

type MediaRepository struct {
	db *sql.DB
}

// compile-time check: *MediaRepository must satisfy port.MediaRepository
var _ port.MediaRepository = (*MediaRepository)(nil)

func NewMediaRepository(db *sql.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

const mediaColumns = "id, object_key, original_filename, url, mime_type, size_bytes, alt_text, tags, thumbnail_key, uploader_id, metadata, created_at, updated_at"

func (r *MediaRepository) Create(ctx context.Context, media *model.Media) error {
	log.Printf("creating database record for media #%s...", media.ID)

	const query = `
      INSERT INTO medias
        (id, object_key, original_filename, url, mime_type, size_bytes, alt_text, tags, thumbnail_key, uploader_id, metadata)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		media.ID, media.ObjectKey, media.OriginalFilename,
		media.URL, media.MimeType, media.SizeBytes,
		media.AltText, media.Tags, media.ThumbnailKey,
		media.UploaderID, media.Metadata,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *MediaRepository) Update(ctx context.Context, media *model.Media) error {
	log.Printf("updating database record for media #%s...", media.ID)

	const query = `
      UPDATE medias
      SET
        url           = ?,
        alt_text      = ?,
        tags          = ?,
        thumbnail_key = ?,
        metadata      = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		media.URL,
		media.AltText,
		media.Tags,
		media.ThumbnailKey,
		media.Metadata,
		media.ID, // WHERE clause
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *MediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	log.Printf("fetching media #%s from the database...", id)

	query := fmt.Sprintf("SELECT %s FROM medias WHERE id = ?", mediaColumns)
	row := r.db.QueryRowContext(ctx, query, id)

	var media model.Media
	if err := scanMedia(row, &media); err != nil {
		return nil, err
	}

	return &media, nil
}

func (r *MediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log.Printf("deleting database record for media #%s...", id)

	_, err := r.db.ExecContext(ctx, "DELETE FROM medias WHERE id = ?", id)
	return err
}

// List returns rows newest first, filtered and keyset-paginated.
func (r *MediaRepository) List(ctx context.Context, filter port.ListMediasFilter) ([]model.Media, error) {
	var (
		conds []string
		args  []any
	)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		conds = append(conds, `(
            LOWER(original_filename) LIKE ?
            OR LOWER(COALESCE(alt_text, '')) LIKE ?
            OR LOWER(COALESCE(CAST(tags AS CHAR), '')) LIKE ?
        )`)
		args = append(args, pattern, pattern, pattern)
	}
	if filter.Before != nil {
		conds = append(conds, "(created_at < ? OR (created_at = ? AND id < ?))")
		args = append(args, filter.Before.CreatedAt, filter.Before.CreatedAt, filter.Before.ID)
	}

	query := fmt.Sprintf("SELECT %s FROM medias", mediaColumns)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var medias []model.Media
	for rows.Next() {
		var media model.Media
		if err := scanMedia(rows, &media); err != nil {
			return nil, err
		}
		medias = append(medias, media)
	}

	return medias, rows.Err()
}

func (r *MediaRepository) OwnsObjectKey(ctx context.Context, key string) (bool, error) {
	const query = "SELECT EXISTS(SELECT 1 FROM medias WHERE object_key = ? OR thumbnail_key = ?)"

	var owned bool
	if err := r.db.QueryRowContext(ctx, query, key, key).Scan(&owned); err != nil {
		return false, err
	}
	return owned, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedia(row rowScanner, media *model.Media) error {
	return row.Scan(
		&media.ID, &media.ObjectKey, &media.OriginalFilename,
		&media.URL, &media.MimeType, &media.SizeBytes,
		&media.AltText, &media.Tags, &media.ThumbnailKey,
		&media.UploaderID, &media.Metadata,
		&media.CreatedAt, &media.UpdatedAt,
	)
}
