// Package schedule owns the two pieces of date arithmetic the whole engine
// is built on. Every urgency computation goes through DaysUntil so the
// today/tomorrow/overdue boundaries are identical across dashboard,
// reminders and countdowns.
package schedule

import "github.com/showdesk/showdesk/pkg/civil"

// DueDate returns the calendar date daysBefore days ahead of eventDate.
// Pure calendar subtraction, no time-of-day, no timezone conversion.
func DueDate(eventDate civil.Date, daysBefore int) civil.Date {
	return eventDate.AddDays(-daysBefore)
}

// DaysUntil returns the signed whole-day count from today to target:
// positive for future dates, zero for today, negative for past dates.
func DaysUntil(target, today civil.Date) int {
	return today.DaysUntil(target)
}
