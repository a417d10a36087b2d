package task

import "context"

type Repository interface {
	// Create appends a single task to its event's task set.
	Create(ctx context.Context, t *Task) error
	// CreateBatch appends tasks (all belonging to eventID) in one atomic
	// write: either every task is persisted or none is.
	CreateBatch(ctx context.Context, eventID string, tasks []*Task) error
	Get(ctx context.Context, id string) (*Task, error)
	ListByEvent(ctx context.Context, eventID string) ([]*Task, error)
	List(ctx context.Context) ([]*Task, error)
	Update(ctx context.Context, t *Task) error
}
