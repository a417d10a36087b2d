// Package clock isolates "now". Every component that needs the current
// date obtains it through Clock, never from ambient system time, so tests
// can pin today and assert exact urgency boundaries.
package clock

import (
	"fmt"
	"time"

	"github.com/showdesk/showdesk/pkg/civil"
)

type Clock interface {
	// Today returns the current calendar date in the home timezone.
	Today() civil.Date
	// Now returns the current instant in the home timezone.
	Now() time.Time
}

// System reads the system clock in a fixed civil timezone.
type System struct {
	loc *time.Location
}

func NewSystem(timezone string) (*System, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}
	return &System{loc: loc}, nil
}

func (s *System) Today() civil.Date {
	return civil.DateOf(time.Now().In(s.loc))
}

func (s *System) Now() time.Time {
	return time.Now().In(s.loc)
}

// Fixed is a Clock frozen at a single instant, for tests.
type Fixed struct {
	Instant time.Time
}

func NewFixedDate(d civil.Date) *Fixed {
	return &Fixed{Instant: d.In(time.UTC)}
}

func (f *Fixed) Today() civil.Date {
	return civil.DateOf(f.Instant)
}

func (f *Fixed) Now() time.Time {
	return f.Instant
}
