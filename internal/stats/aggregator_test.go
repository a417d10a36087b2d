package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showdesk/showdesk/internal/clock"
	"github.com/showdesk/showdesk/internal/event"
	eventrepo "github.com/showdesk/showdesk/internal/event/repositoryimpl"
	"github.com/showdesk/showdesk/internal/task"
	taskrepo "github.com/showdesk/showdesk/internal/task/repositoryimpl"
	"github.com/showdesk/showdesk/pkg/civil"
	"github.com/showdesk/showdesk/pkg/storage"
)

func newFixture(t *testing.T, today civil.Date) (*Aggregator, *eventrepo.YAMLRepository, *taskrepo.YAMLRepository) {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	eventRepo := eventrepo.NewYAMLRepository(store)
	taskRepo := taskrepo.NewYAMLRepository(store)
	return NewAggregator(eventRepo, taskRepo, clock.NewFixedDate(today)), eventRepo, taskRepo
}

func seedEvent(t *testing.T, repo *eventrepo.YAMLRepository, id string, date civil.Date) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &event.Event{
		ID:     id,
		Title:  id,
		Date:   date,
		Status: event.StatusConfirmed,
	}))
}

func seedTask(t *testing.T, repo *taskrepo.YAMLRepository, eventID, name string, automated bool, status task.Status) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &task.Task{
		ID:          eventID + ":std:" + name,
		EventID:     eventID,
		Title:       name,
		Status:      status,
		Priority:    task.PriorityMedium,
		Assignee:    task.AssigneeProducer,
		Category:    task.CategoryBooking,
		DueDate:     civil.NewDate(2026, time.June, 15),
		IsAutomated: automated,
	}))
}

func TestCollect(t *testing.T) {
	today := civil.NewDate(2026, time.June, 10)
	agg, eventRepo, taskRepo := newFixture(t, today)

	seedEvent(t, eventRepo, "EVT-past", today.AddDays(-1))
	seedEvent(t, eventRepo, "EVT-today", today)
	seedEvent(t, eventRepo, "EVT-soon", today.AddDays(30))
	seedEvent(t, eventRepo, "EVT-far", today.AddDays(31))

	seedTask(t, taskRepo, "EVT-today", "a", true, task.StatusPending)
	seedTask(t, taskRepo, "EVT-today", "b", true, task.StatusCompleted)
	seedTask(t, taskRepo, "EVT-today", "c", true, task.StatusInProgress)
	seedTask(t, taskRepo, "EVT-today", "d", true, task.StatusBlocked)
	seedTask(t, taskRepo, "EVT-soon", "e", true, task.StatusPending)
	seedTask(t, taskRepo, "EVT-soon", "manual", false, task.StatusPending)

	got, err := agg.Collect(context.Background())
	require.NoError(t, err)

	// Manual tasks never count; in-flight automated tasks count in the
	// total but neither as completed nor pending.
	assert.Equal(t, &Stats{
		TotalAutomatedTasks:     5,
		CompletedAutomatedTasks: 1,
		PendingAutomatedTasks:   2,
		UpcomingEvents:          2,
	}, got)
}

func TestCollect_Empty(t *testing.T) {
	agg, _, _ := newFixture(t, civil.NewDate(2026, time.June, 10))

	got, err := agg.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Stats{}, got)
}
