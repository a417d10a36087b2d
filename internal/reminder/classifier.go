// Package reminder buckets events and tasks by how far away they are and
// turns the urgent ones into reminder messages. All classification is a
// pure function of the signed day count from today.
package reminder

import "github.com/showdesk/showdesk/internal/task"

type EventBucket string

const (
	EventPast      EventBucket = "past"
	EventToday     EventBucket = "today"
	EventTomorrow  EventBucket = "tomorrow"
	EventThisWeek  EventBucket = "this_week"
	EventTwoWeeks  EventBucket = "two_weeks"
	EventThisMonth EventBucket = "this_month"
	EventLater     EventBucket = "later"
)

func ClassifyEvent(daysUntil int) EventBucket {
	switch {
	case daysUntil < 0:
		return EventPast
	case daysUntil == 0:
		return EventToday
	case daysUntil == 1:
		return EventTomorrow
	case daysUntil <= 7:
		return EventThisWeek
	case daysUntil <= 14:
		return EventTwoWeeks
	case daysUntil <= 30:
		return EventThisMonth
	default:
		return EventLater
	}
}

type TaskBucket string

const (
	TaskOverdue     TaskBucket = "overdue"
	TaskDueToday    TaskBucket = "due_today"
	TaskDueTomorrow TaskBucket = "due_tomorrow"
	TaskDueThisWeek TaskBucket = "due_this_week"
	// TaskNotFlagged covers completed tasks and anything more than a week
	// out.
	TaskNotFlagged TaskBucket = ""
)

func ClassifyTask(daysUntil int, status task.Status) TaskBucket {
	if status == task.StatusCompleted {
		return TaskNotFlagged
	}
	switch {
	case daysUntil < 0:
		return TaskOverdue
	case daysUntil == 0:
		return TaskDueToday
	case daysUntil == 1:
		return TaskDueTomorrow
	case daysUntil <= 7:
		return TaskDueThisWeek
	default:
		return TaskNotFlagged
	}
}

type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

func urgencyOf(bucket TaskBucket) Urgency {
	switch bucket {
	case TaskOverdue, TaskDueToday:
		return UrgencyHigh
	case TaskDueTomorrow, TaskDueThisWeek:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}
