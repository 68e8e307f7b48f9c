package task

import (
	"context"

	"github.com/hibiken/asynq"

	"mediavault/internal/port"
	"mediavault/internal/uuid"
)

type Dispatcher struct {
	client *asynq.Client
}

// compile-time check
var _ port.TaskDispatcher = (*Dispatcher)(nil)

func NewDispatcher(addr, password string) *Dispatcher {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password})
	return &Dispatcher{client: c}
}

func (d *Dispatcher) EnqueueGenerateThumbnail(ctx context.Context, id uuid.UUID) error {
	t, err := NewGenerateThumbnailTask(id.String())
	if err != nil {
		return err
	}
	if _, err := d.client.EnqueueContext(ctx, t); err != nil {
		return err
	}
	return nil
}

func (d *Dispatcher) EnqueueSweepOrphans(ctx context.Context) error {
	if _, err := d.client.EnqueueContext(ctx, NewSweepOrphansTask()); err != nil {
		return err
	}
	return nil
}

func (d *Dispatcher) Close() error {
	return d.client.Close()
}
