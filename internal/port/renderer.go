package port

import (
	"context"

	"mediavault/internal/uuid"
)

// HTTPRenderer mediates between HTTP handlers and the media read use cases.
// It provides caching capabilities and returns both the JSON representation of
// the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	// RenderGetMedia returns the cached JSON result and its ETag if available
	// or executes the underlying use case and caches the output otherwise.
	RenderGetMedia(ctx context.Context, getter MediaGetter, id uuid.UUID) ([]byte, string, error)
	// RenderListMedias does the same for a gallery page; cache entries are
	// keyed by the query and the current list version.
	RenderListMedias(ctx context.Context, lister MediaLister, in ListMediasInput) ([]byte, string, error)
}
