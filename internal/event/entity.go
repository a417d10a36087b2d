package event

import (
	"time"

	"github.com/showdesk/showdesk/pkg/civil"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Event is a production at a venue on a calendar date. The scheduling
// engine treats it as read-only input.
type Event struct {
	ID        string     `yaml:"id" json:"id"`
	Title     string     `yaml:"title" json:"title"`
	Date      civil.Date `yaml:"date" json:"date"`
	Venue     string     `yaml:"venue" json:"venue"`
	Status    Status     `yaml:"status" json:"status"`
	CreatedAt time.Time  `yaml:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `yaml:"updated_at" json:"updatedAt"`
}
