package stats

import (
	"context"

	"github.com/showdesk/showdesk/internal/clock"
	"github.com/showdesk/showdesk/internal/event"
	"github.com/showdesk/showdesk/internal/schedule"
	"github.com/showdesk/showdesk/internal/task"
)

// UpcomingWindowDays bounds the upcoming-events counter: an event counts
// when it falls today through this many days out.
const UpcomingWindowDays = 30

type Stats struct {
	TotalAutomatedTasks     int `json:"totalAutomatedTasks"`
	CompletedAutomatedTasks int `json:"completedAutomatedTasks"`
	PendingAutomatedTasks   int `json:"pendingAutomatedTasks"`
	UpcomingEvents          int `json:"upcomingEvents"`
}

type Aggregator struct {
	eventRepo event.Repository
	taskRepo  task.Repository
	clk       clock.Clock
}

func NewAggregator(eventRepo event.Repository, taskRepo task.Repository, clk clock.Clock) *Aggregator {
	return &Aggregator{
		eventRepo: eventRepo,
		taskRepo:  taskRepo,
		clk:       clk,
	}
}

// Collect walks all tasks and events and tallies the dashboard counters.
// Only tasks in pending status count as pending; in_progress and blocked
// tasks are in flight, not waiting.
func (a *Aggregator) Collect(ctx context.Context) (*Stats, error) {
	tasks, err := a.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	s := &Stats{}
	for _, t := range tasks {
		if !t.IsAutomated {
			continue
		}
		s.TotalAutomatedTasks++
		switch t.Status {
		case task.StatusCompleted:
			s.CompletedAutomatedTasks++
		case task.StatusPending:
			s.PendingAutomatedTasks++
		}
	}

	events, err := a.eventRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	today := a.clk.Today()
	for _, e := range events {
		daysUntil := schedule.DaysUntil(e.Date, today)
		if daysUntil >= 0 && daysUntil <= UpcomingWindowDays {
			s.UpcomingEvents++
		}
	}
	return s, nil
}
