package repositoryimpl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showdesk/showdesk/internal/task"
	"github.com/showdesk/showdesk/pkg/cerr"
	"github.com/showdesk/showdesk/pkg/civil"
	"github.com/showdesk/showdesk/pkg/storage"
)

func newRepo(t *testing.T) *YAMLRepository {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return NewYAMLRepository(store)
}

func newTask(eventID, catalogID string, due civil.Date) *task.Task {
	return &task.Task{
		ID:          task.StandardTaskID(eventID, catalogID),
		EventID:     eventID,
		Title:       catalogID,
		Status:      task.StatusPending,
		Priority:    task.PriorityMedium,
		Assignee:    task.AssigneeProducer,
		Category:    task.CategoryBooking,
		DueDate:     due,
		IsAutomated: true,
	}
}

func TestCreateBatch_RoundTrip(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	due := civil.NewDate(2026, time.June, 10)

	batch := []*task.Task{
		newTask("EVT-001", "later", due.AddDays(5)),
		newTask("EVT-001", "sooner", due),
	}
	require.NoError(t, repo.CreateBatch(ctx, "EVT-001", batch))

	got, err := repo.ListByEvent(ctx, "EVT-001")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "sooner", got[0].Title)
	assert.Equal(t, "later", got[1].Title)
}

func TestCreateBatch_DuplicateIsAllOrNothing(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	due := civil.NewDate(2026, time.June, 10)

	require.NoError(t, repo.CreateBatch(ctx, "EVT-001", []*task.Task{
		newTask("EVT-001", "existing", due),
	}))

	// One duplicate poisons the whole batch; the fresh task must not land.
	err := repo.CreateBatch(ctx, "EVT-001", []*task.Task{
		newTask("EVT-001", "fresh", due),
		newTask("EVT-001", "existing", due),
	})
	require.Error(t, err)
	assert.True(t, cerr.IsCode(err, cerr.AlreadyExists))

	got, err := repo.ListByEvent(ctx, "EVT-001")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "existing", got[0].Title)
}

func TestCreateBatch_RejectsForeignEventTask(t *testing.T) {
	repo := newRepo(t)

	err := repo.CreateBatch(context.Background(), "EVT-001", []*task.Task{
		newTask("EVT-002", "stray", civil.NewDate(2026, time.June, 10)),
	})
	require.Error(t, err)
	assert.True(t, cerr.IsCode(err, cerr.InvalidArgument))
}

func TestGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	created := newTask("EVT-001", "hold", civil.NewDate(2026, time.June, 10))
	require.NoError(t, repo.Create(ctx, created))

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.DueDate, got.DueDate)

	_, err = repo.Get(ctx, task.StandardTaskID("EVT-001", "missing"))
	assert.True(t, cerr.IsCode(err, cerr.NotFound))

	_, err = repo.Get(ctx, "no-separator")
	assert.True(t, cerr.IsCode(err, cerr.InvalidArgument))
}

func TestUpdate(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	created := newTask("EVT-001", "hold", civil.NewDate(2026, time.June, 10))
	require.NoError(t, repo.Create(ctx, created))

	created.Status = task.StatusCompleted
	require.NoError(t, repo.Update(ctx, created))

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, got.Status)

	err = repo.Update(ctx, newTask("EVT-001", "missing", civil.NewDate(2026, time.June, 10)))
	assert.True(t, cerr.IsCode(err, cerr.NotFound))
}

func TestList_AcrossEvents(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	due := civil.NewDate(2026, time.June, 10)

	require.NoError(t, repo.Create(ctx, newTask("EVT-001", "a", due)))
	require.NoError(t, repo.Create(ctx, newTask("EVT-002", "b", due)))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListByEvent_Empty(t *testing.T) {
	repo := newRepo(t)

	got, err := repo.ListByEvent(context.Background(), "EVT-none")
	require.NoError(t, err)
	assert.Empty(t, got)
}
