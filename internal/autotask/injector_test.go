package autotask

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showdesk/showdesk/internal/catalog"
	"github.com/showdesk/showdesk/internal/clock"
	"github.com/showdesk/showdesk/internal/event"
	eventrepo "github.com/showdesk/showdesk/internal/event/repositoryimpl"
	"github.com/showdesk/showdesk/internal/eventbus"
	"github.com/showdesk/showdesk/internal/task"
	taskrepo "github.com/showdesk/showdesk/internal/task/repositoryimpl"
	"github.com/showdesk/showdesk/internal/venue"
	"github.com/showdesk/showdesk/pkg/cerr"
	"github.com/showdesk/showdesk/pkg/civil"
	"github.com/showdesk/showdesk/pkg/storage"
)

type injectorFixture struct {
	injector  *Injector
	eventRepo *eventrepo.YAMLRepository
	taskRepo  *taskrepo.YAMLRepository
	bus       *eventbus.Bus
}

func newInjectorFixture(t *testing.T, today civil.Date) *injectorFixture {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	eventRepo := eventrepo.NewYAMLRepository(store)
	taskRepo := taskrepo.NewYAMLRepository(store)
	bus := eventbus.New()
	resolver := venue.NewResolver("Argentina", venue.BuiltinEntries())
	generator := NewGenerator(resolver, clock.NewFixedDate(today))

	return &injectorFixture{
		injector:  NewInjector(generator, eventRepo, taskRepo, bus),
		eventRepo: eventRepo,
		taskRepo:  taskRepo,
		bus:       bus,
	}
}

func (f *injectorFixture) createEvent(t *testing.T, venueName string, date civil.Date) *event.Event {
	t.Helper()
	ev := &event.Event{
		ID:     "EVT-001",
		Title:  "Primavera Fest",
		Date:   date,
		Venue:  venueName,
		Status: event.StatusConfirmed,
	}
	require.NoError(t, f.eventRepo.Create(context.Background(), ev))
	return ev
}

func TestInjectStandardTasks(t *testing.T) {
	today := civil.NewDate(2026, time.June, 1)
	f := newInjectorFixture(t, today)
	ev := f.createEvent(t, "Montevideo", today.AddDays(19))
	ctx := context.Background()

	created, err := f.injector.InjectStandardTasks(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, catalog.Size()+4, created)

	stored, err := f.taskRepo.ListByEvent(ctx, ev.ID)
	require.NoError(t, err)
	assert.Len(t, stored, created)

	// Listing comes back in due-date order.
	for i := 1; i < len(stored); i++ {
		assert.False(t, stored[i].DueDate.Before(stored[i-1].DueDate))
	}
}

func TestInjectStandardTasks_Idempotent(t *testing.T) {
	today := civil.NewDate(2026, time.June, 1)
	f := newInjectorFixture(t, today)
	ev := f.createEvent(t, "Luna Park", today.AddDays(30))
	ctx := context.Background()

	first, err := f.injector.InjectStandardTasks(ctx, ev.ID)
	require.NoError(t, err)
	require.Equal(t, catalog.Size(), first)

	// Second injection is a no-op, even if some tasks were completed or
	// removed in between conceptually; it never tops up.
	second, err := f.injector.InjectStandardTasks(ctx, ev.ID)
	require.NoError(t, err)
	assert.Zero(t, second)

	stored, err := f.taskRepo.ListByEvent(ctx, ev.ID)
	require.NoError(t, err)
	assert.Len(t, stored, catalog.Size())
}

func TestInjectStandardTasks_ManualTasksDoNotBlock(t *testing.T) {
	today := civil.NewDate(2026, time.June, 1)
	f := newInjectorFixture(t, today)
	ev := f.createEvent(t, "Luna Park", today.AddDays(30))
	ctx := context.Background()

	manual := &task.Task{
		ID:       task.ManualTaskID(ev.ID),
		EventID:  ev.ID,
		Title:    "Call the mayor's office",
		Status:   task.StatusPending,
		Priority: task.PriorityMedium,
		Assignee: task.AssigneeProducer,
		Category: task.CategoryExtras,
		DueDate:  today.AddDays(5),
	}
	require.NoError(t, f.taskRepo.Create(ctx, manual))

	created, err := f.injector.InjectStandardTasks(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, catalog.Size(), created)

	stored, err := f.taskRepo.ListByEvent(ctx, ev.ID)
	require.NoError(t, err)
	assert.Len(t, stored, catalog.Size()+1)
}

func TestInjectStandardTasks_UnknownEvent(t *testing.T) {
	f := newInjectorFixture(t, civil.NewDate(2026, time.June, 1))

	_, err := f.injector.InjectStandardTasks(context.Background(), "EVT-missing")
	require.Error(t, err)
	assert.True(t, cerr.IsCode(err, cerr.NotFound))
}

func TestInjectStandardTasks_PublishesBusEvent(t *testing.T) {
	today := civil.NewDate(2026, time.June, 1)
	f := newInjectorFixture(t, today)
	ev := f.createEvent(t, "Luna Park", today.AddDays(30))

	_, ch := f.bus.Subscribe(8)

	_, err := f.injector.InjectStandardTasks(context.Background(), ev.ID)
	require.NoError(t, err)

	select {
	case got := <-ch:
		assert.Equal(t, eventbus.TypeTasksInjected, got.Type)
		assert.Equal(t, ev.ID, got.ResourceID)
		assert.Equal(t, "Primavera Fest", got.Metadata["event_title"])
		assert.Equal(t, "25", got.Metadata["count"])
	default:
		t.Fatal("expected a tasks.injected bus event")
	}
}

func TestPreview(t *testing.T) {
	today := civil.NewDate(2026, time.June, 1)
	f := newInjectorFixture(t, today)
	ev := f.createEvent(t, "Montevideo", today.AddDays(19))
	ctx := context.Background()

	tasks, err := f.injector.Preview(ctx, ev.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, catalog.Size()+4)

	// Preview persists nothing and repeats freely.
	stored, err := f.taskRepo.ListByEvent(ctx, ev.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)

	again, err := f.injector.Preview(ctx, ev.ID)
	require.NoError(t, err)
	assert.Len(t, again, len(tasks))
}
