package port

import (
	"context"
	"time"

	"mediavault/internal/model"
	"mediavault/internal/uuid"
)

// ListCursor is a keyset pagination position: the (created_at, id) pair of
// the last row of the previous page.
type ListCursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// ListMediasFilter narrows and bounds a gallery listing.
type ListMediasFilter struct {
	// Search is matched case-insensitively as a substring of the original
	// filename, the alt text and the tags.
	Search string
	// Limit is the maximum number of rows returned.
	Limit int
	// Before, when set, restricts the listing to rows strictly older than
	// the cursor position.
	Before *ListCursor
}

// MediaRepository defines persistence operations for medias.
type MediaRepository interface {
	Create(ctx context.Context, media *model.Media) error
	Update(ctx context.Context, media *model.Media) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ListMediasFilter) ([]model.Media, error)
	// OwnsObjectKey reports whether any row references the given storage key,
	// either as its original object or as its thumbnail.
	OwnsObjectKey(ctx context.Context, key string) (bool, error)
}
