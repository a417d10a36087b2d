// Package autotask derives an event's production tasks: the full standard
// catalog plus, for events at venues that require customs handling, the
// four travel/customs tasks.
package autotask

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/showdesk/showdesk/internal/catalog"
	"github.com/showdesk/showdesk/internal/clock"
	"github.com/showdesk/showdesk/internal/event"
	"github.com/showdesk/showdesk/internal/schedule"
	"github.com/showdesk/showdesk/internal/task"
	"github.com/showdesk/showdesk/internal/venue"
)

// Customs-kind offsets relative to the event date, in days. Flights and
// lodging lead the trip; the customs paperwork pair brackets the travel
// window. All are strictly before the event.
const (
	FlightsLeadDays         = 14
	LodgingLeadDays         = 10
	CustomsOutboundLeadDays = 7
	CustomsReturnLeadDays   = 2
)

// CustomsWindowDays bounds customs-task generation: the event must be in
// the future and at most this many days away.
const CustomsWindowDays = 60

// Generator derives tasks for an event without touching any store.
type Generator struct {
	resolver *venue.Resolver
	clk      clock.Clock
}

func NewGenerator(resolver *venue.Resolver, clk clock.Clock) *Generator {
	return &Generator{resolver: resolver, clk: clk}
}

// Generate returns the tasks the engine would create for ev: every catalog
// entry, plus the customs kinds when the venue requires customs and the
// event is inside the customs window. Due dates are fixed relative to the
// event date and never depend on when generation runs.
func (g *Generator) Generate(ctx context.Context, ev *event.Event) []*task.Task {
	now := g.clk.Now()
	tasks := make([]*task.Task, 0, catalog.Size()+4)

	for _, def := range catalog.Entries() {
		tasks = append(tasks, materialize(ev, def, now))
	}

	if g.resolver.RequiresCustoms(ctx, ev.Venue) {
		daysToEvent := schedule.DaysUntil(ev.Date, g.clk.Today())
		if daysToEvent > 0 && daysToEvent <= CustomsWindowDays {
			country := g.resolver.CountryOf(ctx, ev.Venue)
			for _, kind := range customsKinds {
				tasks = append(tasks, materializeCustoms(ev, kind, country, now))
			}
		}
	}
	return tasks
}

func materialize(ev *event.Event, def catalog.Definition, now time.Time) *task.Task {
	return &task.Task{
		ID:          task.StandardTaskID(ev.ID, def.CatalogID),
		EventID:     ev.ID,
		Title:       def.Title,
		Description: describe(def.Description, def.GuidingQuestions),
		Status:      task.StatusPending,
		Priority:    def.Priority,
		Assignee:    def.Assignee,
		Category:    def.Category,
		DueDate:     schedule.DueDate(ev.Date, def.DaysBeforeEvent),
		IsAutomated: true,
		CatalogID:   def.CatalogID,
		IsCritical:  def.IsCritical,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

var customsKinds = []task.AutomatedKind{
	task.KindFlights,
	task.KindLodging,
	task.KindCustomsOutbound,
	task.KindCustomsReturn,
}

func materializeCustoms(ev *event.Event, kind task.AutomatedKind, country string, now time.Time) *task.Task {
	var (
		title    string
		desc     string
		daysLead int
	)
	switch kind {
	case task.KindFlights:
		title = "Book flights"
		desc = fmt.Sprintf("Book crew and artist flights for %s (%s).", ev.Title, country)
		daysLead = FlightsLeadDays
	case task.KindLodging:
		title = "Book lodging"
		desc = fmt.Sprintf("Book hotel rooms near the venue in %s.", country)
		daysLead = LodgingLeadDays
	case task.KindCustomsOutbound:
		title = "File outbound customs"
		desc = fmt.Sprintf("File the temporary-export manifest for gear travelling to %s.", country)
		daysLead = CustomsOutboundLeadDays
	case task.KindCustomsReturn:
		title = "Prepare return customs"
		desc = fmt.Sprintf("Prepare the re-import paperwork for the return from %s.", country)
		daysLead = CustomsReturnLeadDays
	}
	return &task.Task{
		ID:            task.AutomatedTaskID(ev.ID, kind),
		EventID:       ev.ID,
		Title:         title,
		Description:   desc,
		Status:        task.StatusPending,
		Priority:      task.PriorityHigh,
		Assignee:      task.AssigneeCoordinator,
		Category:      task.CategoryExtras,
		DueDate:       schedule.DueDate(ev.Date, daysLead),
		IsAutomated:   true,
		AutomatedKind: kind,
		IsCritical:    true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// describe joins the template description with its guiding questions as a
// bulleted checklist.
func describe(description string, questions []string) string {
	if len(questions) == 0 {
		return description
	}
	var b strings.Builder
	b.WriteString(description)
	for _, q := range questions {
		b.WriteString("\n- ")
		b.WriteString(q)
	}
	return b.String()
}
