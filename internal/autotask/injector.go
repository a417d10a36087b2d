package autotask

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/showdesk/showdesk/internal/event"
	"github.com/showdesk/showdesk/internal/eventbus"
	"github.com/showdesk/showdesk/internal/task"
)

// Injector materializes the generator's output into the task store, at
// most once per event.
type Injector struct {
	generator *Generator
	eventRepo event.Repository
	taskRepo  task.Repository
	eventBus  *eventbus.Bus
}

func NewInjector(generator *Generator, eventRepo event.Repository, taskRepo task.Repository, eventBus *eventbus.Bus) *Injector {
	return &Injector{
		generator: generator,
		eventRepo: eventRepo,
		taskRepo:  taskRepo,
		eventBus:  eventBus,
	}
}

// InjectStandardTasks generates and persists the event's automated tasks,
// returning how many were created. A second call for the same event is an
// idempotent no-op returning 0; it never tops up individual missing tasks.
// Persistence is a single batch: either every generated task is stored or
// none is.
func (i *Injector) InjectStandardTasks(ctx context.Context, eventID string) (int, error) {
	ev, err := i.eventRepo.Get(ctx, eventID)
	if err != nil {
		return 0, err
	}

	existing, err := i.taskRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return 0, err
	}
	for _, t := range existing {
		if t.IsAutomated {
			slog.DebugContext(ctx, "automated tasks already present, skipping injection", "event_id", eventID)
			return 0, nil
		}
	}

	tasks := i.generator.Generate(ctx, ev)
	if err := i.taskRepo.CreateBatch(ctx, eventID, tasks); err != nil {
		return 0, err
	}

	i.eventBus.PublishNew(eventbus.TypeTasksInjected, eventID, map[string]string{
		"event_title": ev.Title,
		"count":       strconv.Itoa(len(tasks)),
	})
	slog.InfoContext(ctx, "injected automated tasks", "event_id", eventID, "count", len(tasks))
	return len(tasks), nil
}

// Preview returns the tasks injection would create for the event without
// persisting anything. No idempotency check is applied.
func (i *Injector) Preview(ctx context.Context, eventID string) ([]*task.Task, error) {
	ev, err := i.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return i.generator.Generate(ctx, ev), nil
}
