package task

import (
	"time"

	"github.com/showdesk/showdesk/pkg/civil"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusBlocked    Status = "blocked"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusBlocked:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Category string

const (
	CategoryArte      Category = "ARTE"
	CategoryBooking   Category = "BOOKING"
	CategoryMarketing Category = "MARKETING"
	CategoryExtras    Category = "EXTRAS"
)

// Assignee is one of the two fixed people production work is split between.
type Assignee string

const (
	AssigneeProducer    Assignee = "producer"
	AssigneeCoordinator Assignee = "coordinator"
)

// AutomatedKind identifies the conditionally generated travel/customs
// tasks. These exist outside the static catalog and only for events at
// venues that require customs handling.
type AutomatedKind string

const (
	KindFlights         AutomatedKind = "flights"
	KindLodging         AutomatedKind = "lodging"
	KindCustomsOutbound AutomatedKind = "customs-outbound"
	KindCustomsReturn   AutomatedKind = "customs-return"
)

// Task is a unit of production work tied to an event. Automated tasks are
// created once by the injector; afterwards only their status changes.
type Task struct {
	ID            string        `yaml:"id" json:"id"`
	EventID       string        `yaml:"event_id" json:"eventId"`
	Title         string        `yaml:"title" json:"title"`
	Description   string        `yaml:"description" json:"description"`
	Status        Status        `yaml:"status" json:"status"`
	Priority      Priority      `yaml:"priority" json:"priority"`
	Assignee      Assignee      `yaml:"assignee" json:"assignee"`
	Category      Category      `yaml:"category" json:"category"`
	DueDate       civil.Date    `yaml:"due_date" json:"dueDate"`
	IsAutomated   bool          `yaml:"is_automated" json:"isAutomated"`
	AutomatedKind AutomatedKind `yaml:"automated_kind,omitempty" json:"automatedKind,omitempty"`
	CatalogID     string        `yaml:"catalog_id,omitempty" json:"catalogId,omitempty"`
	IsCritical    bool          `yaml:"is_critical" json:"isCritical"`
	CreatedAt     time.Time     `yaml:"created_at" json:"createdAt"`
	UpdatedAt     time.Time     `yaml:"updated_at" json:"updatedAt"`
}
