package port

import (
	"context"

	"mediavault/internal/uuid"
)

// TaskDispatcher enqueues asynchronous tasks related to media processing.
type TaskDispatcher interface {
	EnqueueGenerateThumbnail(ctx context.Context, id uuid.UUID) error
	EnqueueSweepOrphans(ctx context.Context) error
}
