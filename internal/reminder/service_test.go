package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showdesk/showdesk/internal/clock"
	"github.com/showdesk/showdesk/internal/task"
	taskrepo "github.com/showdesk/showdesk/internal/task/repositoryimpl"
	"github.com/showdesk/showdesk/pkg/civil"
	"github.com/showdesk/showdesk/pkg/storage"
)

func newServiceFixture(t *testing.T, today civil.Date, horizonDays int) (*Service, *taskrepo.YAMLRepository) {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	repo := taskrepo.NewYAMLRepository(store)
	return NewService(repo, clock.NewFixedDate(today), horizonDays), repo
}

func seedTask(t *testing.T, repo *taskrepo.YAMLRepository, id string, due civil.Date, status task.Status, critical bool, priority task.Priority) {
	t.Helper()
	err := repo.Create(context.Background(), &task.Task{
		ID:         "EVT-001:std:" + id,
		EventID:    "EVT-001",
		Title:      id,
		Status:     status,
		Priority:   priority,
		Assignee:   task.AssigneeProducer,
		Category:   task.CategoryBooking,
		DueDate:    due,
		IsCritical: critical,
	})
	require.NoError(t, err)
}

func TestCheckTaskReminders(t *testing.T) {
	today := civil.NewDate(2026, time.June, 10)
	svc, repo := newServiceFixture(t, today, 14)

	seedTask(t, repo, "overdue", today.AddDays(-3), task.StatusPending, true, task.PriorityHigh)
	seedTask(t, repo, "due-today", today, task.StatusInProgress, false, task.PriorityMedium)
	seedTask(t, repo, "due-tomorrow", today.AddDays(1), task.StatusPending, false, task.PriorityMedium)
	seedTask(t, repo, "inside-horizon", today.AddDays(12), task.StatusPending, false, task.PriorityLow)
	seedTask(t, repo, "beyond-horizon", today.AddDays(20), task.StatusPending, false, task.PriorityLow)
	seedTask(t, repo, "done", today.AddDays(-1), task.StatusCompleted, false, task.PriorityHigh)

	reminders, err := svc.CheckTaskReminders(context.Background())
	require.NoError(t, err)

	byTask := make(map[string]Reminder, len(reminders))
	for _, r := range reminders {
		byTask[r.TaskID] = r
	}
	require.Len(t, byTask, 4)

	assert.Equal(t, UrgencyHigh, byTask["EVT-001:std:overdue"].Urgency)
	assert.Equal(t, `"overdue" is 3 days overdue`, byTask["EVT-001:std:overdue"].Message)

	assert.Equal(t, UrgencyHigh, byTask["EVT-001:std:due-today"].Urgency)
	assert.Equal(t, `"due-today" is due today`, byTask["EVT-001:std:due-today"].Message)

	assert.Equal(t, UrgencyMedium, byTask["EVT-001:std:due-tomorrow"].Urgency)
	assert.Equal(t, `"due-tomorrow" is due tomorrow`, byTask["EVT-001:std:due-tomorrow"].Message)

	assert.Equal(t, UrgencyLow, byTask["EVT-001:std:inside-horizon"].Urgency)
	assert.Equal(t, `"inside-horizon" is due in 12 days`, byTask["EVT-001:std:inside-horizon"].Message)

	assert.NotContains(t, byTask, "EVT-001:std:beyond-horizon")
	assert.NotContains(t, byTask, "EVT-001:std:done")
}

func TestCheckTaskReminders_OneDayOverdue(t *testing.T) {
	today := civil.NewDate(2026, time.June, 10)
	svc, repo := newServiceFixture(t, today, 14)
	seedTask(t, repo, "late", today.AddDays(-1), task.StatusPending, false, task.PriorityMedium)

	reminders, err := svc.CheckTaskReminders(context.Background())
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, `"late" is 1 day overdue`, reminders[0].Message)
}

func TestTasksByPriority(t *testing.T) {
	today := civil.NewDate(2026, time.June, 10)
	svc, repo := newServiceFixture(t, today, 14)

	seedTask(t, repo, "critical-high", today.AddDays(2), task.StatusPending, true, task.PriorityHigh)
	seedTask(t, repo, "critical-low", today.AddDays(3), task.StatusPending, true, task.PriorityLow)
	seedTask(t, repo, "important", today.AddDays(4), task.StatusPending, false, task.PriorityHigh)
	seedTask(t, repo, "normal-medium", today.AddDays(5), task.StatusPending, false, task.PriorityMedium)
	seedTask(t, repo, "normal-low", today.AddDays(6), task.StatusPending, false, task.PriorityLow)

	p, err := svc.TasksByPriority(context.Background(), "EVT-001")
	require.NoError(t, err)

	ids := func(tasks []*task.Task) []string {
		var out []string
		for _, tk := range tasks {
			out = append(out, tk.Title)
		}
		return out
	}

	// Criticality wins over priority; the groups are disjoint.
	assert.ElementsMatch(t, []string{"critical-high", "critical-low"}, ids(p.Critical))
	assert.ElementsMatch(t, []string{"important"}, ids(p.Important))
	assert.ElementsMatch(t, []string{"normal-medium", "normal-low"}, ids(p.Normal))
}

func TestTasksByPriority_EmptyEvent(t *testing.T) {
	svc, _ := newServiceFixture(t, civil.NewDate(2026, time.June, 10), 14)

	p, err := svc.TasksByPriority(context.Background(), "EVT-empty")
	require.NoError(t, err)
	assert.Empty(t, p.Critical)
	assert.Empty(t, p.Important)
	assert.Empty(t, p.Normal)
}
