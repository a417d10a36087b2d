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
	"github.com/showdesk/showdesk/internal/task"
	"github.com/showdesk/showdesk/internal/venue"
	"github.com/showdesk/showdesk/pkg/civil"
)

func newGenerator(today civil.Date) *Generator {
	resolver := venue.NewResolver("Argentina", venue.BuiltinEntries())
	return NewGenerator(resolver, clock.NewFixedDate(today))
}

func testEvent(venueName string, date civil.Date) *event.Event {
	return &event.Event{
		ID:     "EVT-001",
		Title:  "Primavera Fest",
		Date:   date,
		Venue:  venueName,
		Status: event.StatusConfirmed,
	}
}

func TestGenerate_DomesticEvent(t *testing.T) {
	today := civil.NewDate(2026, time.March, 1)
	eventDate := civil.NewDate(2026, time.June, 20)
	g := newGenerator(today)

	tasks := g.Generate(context.Background(), testEvent("Luna Park", eventDate))
	require.Len(t, tasks, catalog.Size())

	byID := make(map[string]*task.Task, len(tasks))
	for _, tk := range tasks {
		assert.True(t, tk.IsAutomated)
		assert.Empty(t, tk.AutomatedKind)
		assert.Equal(t, "EVT-001", tk.EventID)
		assert.Equal(t, task.StatusPending, tk.Status)
		byID[tk.ID] = tk
	}

	// Due dates are fixed offsets from the event date.
	hold := byID[task.StandardTaskID("EVT-001", "booking-venue-hold")]
	require.NotNil(t, hold)
	assert.Equal(t, civil.NewDate(2026, time.February, 20), hold.DueDate)
	assert.True(t, hold.IsCritical)

	runner := byID[task.StandardTaskID("EVT-001", "extras-runner-schedule")]
	require.NotNil(t, runner)
	assert.Equal(t, civil.NewDate(2026, time.June, 19), runner.DueDate)
}

func TestGenerate_CustomsVenueInsideWindow(t *testing.T) {
	today := civil.NewDate(2026, time.June, 1)
	eventDate := civil.NewDate(2026, time.June, 20)
	g := newGenerator(today)

	tasks := g.Generate(context.Background(), testEvent("Montevideo", eventDate))
	require.Len(t, tasks, catalog.Size()+4)

	byID := make(map[string]*task.Task, len(tasks))
	for _, tk := range tasks {
		byID[tk.ID] = tk
	}

	tests := []struct {
		kind task.AutomatedKind
		due  civil.Date
	}{
		{task.KindFlights, civil.NewDate(2026, time.June, 6)},
		{task.KindLodging, civil.NewDate(2026, time.June, 10)},
		{task.KindCustomsOutbound, civil.NewDate(2026, time.June, 13)},
		{task.KindCustomsReturn, civil.NewDate(2026, time.June, 18)},
	}
	for _, tt := range tests {
		tk := byID[task.AutomatedTaskID("EVT-001", tt.kind)]
		require.NotNil(t, tk, "missing %s task", tt.kind)
		assert.Equal(t, tt.due, tk.DueDate)
		assert.Equal(t, tt.kind, tk.AutomatedKind)
		assert.Equal(t, task.PriorityHigh, tk.Priority)
		assert.Equal(t, task.AssigneeCoordinator, tk.Assignee)
		assert.Equal(t, task.CategoryExtras, tk.Category)
		assert.True(t, tk.IsCritical)
		assert.Contains(t, tk.Description, "Uruguay")
	}
}

func TestGenerate_CustomsWindow(t *testing.T) {
	today := civil.NewDate(2026, time.June, 1)

	tests := []struct {
		name        string
		eventDate   civil.Date
		wantCustoms bool
	}{
		{"event today", today, false},
		{"event tomorrow", today.AddDays(1), true},
		{"last day of window", today.AddDays(60), true},
		{"one past the window", today.AddDays(61), false},
		{"far future", today.AddDays(120), false},
		{"past event", today.AddDays(-5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGenerator(today)
			tasks := g.Generate(context.Background(), testEvent("Santiago", tt.eventDate))
			want := catalog.Size()
			if tt.wantCustoms {
				want += 4
			}
			assert.Len(t, tasks, want)
		})
	}
}

func TestGenerate_UnmappedVenueGetsNoCustoms(t *testing.T) {
	today := civil.NewDate(2026, time.June, 1)
	g := newGenerator(today)

	tasks := g.Generate(context.Background(), testEvent("Estadio Obras", today.AddDays(30)))
	assert.Len(t, tasks, catalog.Size())
}

func TestGenerate_DueDatesIndependentOfToday(t *testing.T) {
	eventDate := civil.NewDate(2026, time.June, 20)
	ev := testEvent("Montevideo", eventDate)

	early := newGenerator(civil.NewDate(2026, time.May, 1)).Generate(context.Background(), ev)
	late := newGenerator(civil.NewDate(2026, time.June, 10)).Generate(context.Background(), ev)
	require.Len(t, late, len(early))

	earlyDue := make(map[string]civil.Date, len(early))
	for _, tk := range early {
		earlyDue[tk.ID] = tk.DueDate
	}
	for _, tk := range late {
		assert.Equal(t, earlyDue[tk.ID], tk.DueDate, "due date of %s must not depend on generation time", tk.ID)
	}
}
