package worker

import (
	"context"
	"log"

	"mediavault/internal/port"
	"mediavault/internal/task"
	"mediavault/internal/uuid"
)

// GenerateThumbnailHandler handles a generate-thumbnail task.
// It converts the incoming task payload to the input expected by
// the thumbnail generator service and delegates the call.
func GenerateThumbnailHandler(ctx context.Context, p task.GenerateThumbnailPayload, svc port.ThumbnailGenerator) error {
	id, err := uuid.Parse(p.MediaID)
	if err != nil {
		log.Printf("❌  Invalid media ID %q: %v", p.MediaID, err)
		return err
	}

	if err := svc.GenerateThumbnail(ctx, id); err != nil {
		log.Printf("❌  Failed to generate thumbnail for media #%s: %v", id, err)
		return err
	}

	log.Printf("✅  Successfully generated thumbnail for media #%s", id)
	return nil
}
