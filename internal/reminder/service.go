package reminder

import (
	"context"
	"fmt"

	"github.com/showdesk/showdesk/internal/clock"
	"github.com/showdesk/showdesk/internal/schedule"
	"github.com/showdesk/showdesk/internal/task"
	"github.com/showdesk/showdesk/pkg/civil"
)

type Reminder struct {
	TaskID  string     `json:"taskId"`
	EventID string     `json:"eventId"`
	Message string     `json:"message"`
	Urgency Urgency    `json:"urgency"`
	DueDate civil.Date `json:"dueDate"`
}

// Partition splits an event's tasks into the three priority tabs the UI
// renders.
type Partition struct {
	Critical  []*task.Task `json:"critical"`
	Important []*task.Task `json:"important"`
	Normal    []*task.Task `json:"normal"`
}

type Service struct {
	taskRepo    task.Repository
	clk         clock.Clock
	horizonDays int
}

// NewService builds a reminder service. horizonDays bounds low-urgency
// reminders: tasks due further out than that produce no reminder at all.
func NewService(taskRepo task.Repository, clk clock.Clock, horizonDays int) *Service {
	return &Service{
		taskRepo:    taskRepo,
		clk:         clk,
		horizonDays: horizonDays,
	}
}

// CheckTaskReminders scans all non-completed tasks and returns a reminder
// per task that is overdue, due soon, or inside the horizon.
func (s *Service) CheckTaskReminders(ctx context.Context) ([]Reminder, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	today := s.clk.Today()
	var reminders []Reminder
	for _, t := range tasks {
		if t.Status == task.StatusCompleted {
			continue
		}
		daysUntil := schedule.DaysUntil(t.DueDate, today)
		bucket := ClassifyTask(daysUntil, t.Status)
		if bucket == TaskNotFlagged && daysUntil > s.horizonDays {
			continue
		}
		reminders = append(reminders, Reminder{
			TaskID:  t.ID,
			EventID: t.EventID,
			Message: message(t.Title, bucket, daysUntil),
			Urgency: urgencyOf(bucket),
			DueDate: t.DueDate,
		})
	}
	return reminders, nil
}

// TasksByPriority partitions an event's tasks into critical, important and
// normal groups: critical catalog entries and customs kinds first, then
// remaining high-priority tasks, then the rest.
func (s *Service) TasksByPriority(ctx context.Context, eventID string) (*Partition, error) {
	tasks, err := s.taskRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	p := &Partition{
		Critical:  []*task.Task{},
		Important: []*task.Task{},
		Normal:    []*task.Task{},
	}
	for _, t := range tasks {
		switch {
		case t.IsCritical:
			p.Critical = append(p.Critical, t)
		case t.Priority == task.PriorityHigh:
			p.Important = append(p.Important, t)
		default:
			p.Normal = append(p.Normal, t)
		}
	}
	return p, nil
}

func message(title string, bucket TaskBucket, daysUntil int) string {
	switch bucket {
	case TaskOverdue:
		if daysUntil == -1 {
			return fmt.Sprintf("%q is 1 day overdue", title)
		}
		return fmt.Sprintf("%q is %d days overdue", title, -daysUntil)
	case TaskDueToday:
		return fmt.Sprintf("%q is due today", title)
	case TaskDueTomorrow:
		return fmt.Sprintf("%q is due tomorrow", title)
	case TaskDueThisWeek:
		return fmt.Sprintf("%q is due in %d days", title, daysUntil)
	default:
		return fmt.Sprintf("%q is due in %d days", title, daysUntil)
	}
}
