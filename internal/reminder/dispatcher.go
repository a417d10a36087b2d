package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/showdesk/showdesk/internal/clock"
	"github.com/showdesk/showdesk/internal/eventbus"
	"github.com/showdesk/showdesk/internal/pushnotification"
	"github.com/showdesk/showdesk/pkg/civil"
	"github.com/showdesk/showdesk/pkg/panicerr"
)

const sweepInterval = time.Hour

// Dispatcher forwards reminder-worthy happenings to web push: task injection
// results as they occur, and high-urgency due-date reminders on a periodic
// sweep. Each task is pushed at most once per day.
type Dispatcher struct {
	eventBus *eventbus.Bus
	service  *Service
	sender   *pushnotification.Sender
	clk      clock.Clock

	mu        sync.Mutex
	sentOn    civil.Date
	sentToday map[string]struct{}
}

func NewDispatcher(eventBus *eventbus.Bus, service *Service, sender *pushnotification.Sender, clk clock.Clock) *Dispatcher {
	return &Dispatcher{
		eventBus:  eventBus,
		service:   service,
		sender:    sender,
		clk:       clk,
		sentToday: make(map[string]struct{}),
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	subID, ch := d.eventBus.Subscribe(256)
	defer d.eventBus.Unsubscribe(subID)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	slog.Info("reminder dispatcher started")
	d.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("reminder dispatcher stopped")
			return
		case <-ticker.C:
			d.sweep(ctx)
		case event, ok := <-ch:
			if !ok {
				return
			}
			if event.Type == eventbus.TypeTasksInjected {
				d.handleTasksInjected(ctx, event)
			}
		}
	}
}

func (d *Dispatcher) handleTasksInjected(ctx context.Context, event *eventbus.Event) {
	title := event.Metadata["event_title"]
	if title == "" {
		title = event.ResourceID
	}
	count := event.Metadata["count"]

	d.sender.SendToAll(ctx, &pushnotification.NotificationPayload{
		Title: "Tasks generated",
		Body:  fmt.Sprintf("%s tasks generated for %q", count, title),
		URL:   fmt.Sprintf("/events/%s/tasks", event.ResourceID),
		Tag:   event.ID,
	})
}

func (d *Dispatcher) sweep(ctx context.Context) {
	if err := panicerr.SafeContext(d.sweepOnce)(ctx); err != nil {
		slog.Error("reminder dispatcher: sweep panicked", "error", err)
	}
}

func (d *Dispatcher) sweepOnce(ctx context.Context) error {
	reminders, err := d.service.CheckTaskReminders(ctx)
	if err != nil {
		slog.Error("reminder dispatcher: failed to check reminders", "error", err)
		return nil
	}

	for _, rem := range reminders {
		if rem.Urgency != UrgencyHigh {
			continue
		}
		if !d.markSent(rem.TaskID) {
			continue
		}
		d.sender.SendToAll(ctx, &pushnotification.NotificationPayload{
			Title: "Task reminder",
			Body:  rem.Message,
			URL:   fmt.Sprintf("/events/%s/tasks", rem.EventID),
			Tag:   rem.TaskID,
		})
	}
	return nil
}

// markSent records that a reminder for the task went out today. It returns
// false if one was already sent today. The dedup set resets at midnight.
func (d *Dispatcher) markSent(taskID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	today := d.clk.Today()
	if !d.sentOn.Equal(today) {
		d.sentOn = today
		d.sentToday = make(map[string]struct{})
	}
	if _, ok := d.sentToday[taskID]; ok {
		return false
	}
	d.sentToday[taskID] = struct{}{}
	return true
}
