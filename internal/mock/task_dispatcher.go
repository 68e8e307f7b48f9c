package mock

import (
	"context"

	"mediavault/internal/uuid"
)

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	ThumbnailCalled bool
	ThumbnailIDs    []uuid.UUID
	ThumbnailErr    error

	SweepCalled bool
	SweepErr    error
}

func (m *MockDispatcher) EnqueueGenerateThumbnail(ctx context.Context, id uuid.UUID) error {
	m.ThumbnailCalled = true
	m.ThumbnailIDs = append(m.ThumbnailIDs, id)
	return m.ThumbnailErr
}

func (m *MockDispatcher) EnqueueSweepOrphans(ctx context.Context) error {
	m.SweepCalled = true
	return m.SweepErr
}
