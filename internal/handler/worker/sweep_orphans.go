package worker

import (
	"context"
	"log"

	"mediavault/internal/port"
)

// SweepOrphansHandler handles a sweep-orphans task by delegating to the
// orphan sweeper service.
func SweepOrphansHandler(ctx context.Context, svc port.OrphanSweeper) error {
	if err := svc.SweepOrphans(ctx); err != nil {
		log.Printf("❌  Failed to sweep orphaned objects: %v", err)
		return err
	}

	log.Print("✅  Successfully swept orphaned objects")
	return nil
}
