package media

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"mediavault/internal/logger"
	"mediavault/internal/port"
)

// OrphanGracePeriod keeps freshly written objects out of the sweep so an
// upload in flight is never mistaken for an orphan.
const OrphanGracePeriod = 24 * time.Hour

const sweepConcurrency = 8

type orphanSweeperSrv struct {
	repo   port.MediaRepository
	strg   port.Storage
	bucket string
}

// compile-time check: *orphanSweeperSrv must satisfy port.OrphanSweeper
var _ port.OrphanSweeper = (*orphanSweeperSrv)(nil)

// NewOrphanSweeper constructs an OrphanSweeper implementation.
func NewOrphanSweeper(repo port.MediaRepository, strg port.Storage, bucket string) port.OrphanSweeper {
	return &orphanSweeperSrv{repo, strg, bucket}
}

// SweepOrphans walks the bucket and removes objects beyond the grace period
// that no metadata row references. Such objects are left behind when the
// process dies between the storage write and the row insert.
func (s *orphanSweeperSrv) SweepOrphans(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(sweepConcurrency)

	cutoff := time.Now().Add(-OrphanGracePeriod)
	for obj := range s.strg.ListFiles(ctx, s.bucket, "") {
		if obj.LastModified.After(cutoff) {
			continue
		}

		obj := obj
		g.Go(func() error {
			owned, err := s.repo.OwnsObjectKey(ctx, obj.Key)
			if err != nil {
				return err
			}
			if owned {
				return nil
			}

			if err := s.strg.RemoveFile(ctx, s.bucket, obj.Key); err != nil {
				return err
			}
			logger.Infof(ctx, "removed orphaned object %q", obj.Key)
			return nil
		})
	}

	return g.Wait()
}
