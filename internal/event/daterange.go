package event

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMissingStart is returned when constructing a DateRange without a start date
	ErrMissingStart = errors.New("date range requires a start date")
	// ErrEndBeforeStart is returned when the end date is earlier than the start date
	ErrEndBeforeStart = errors.New("end date cannot be before start date")
)

// DateRange represents a period between two dates, or a single date when no
// end is set. Values are only built through NewDateRange, so a DateRange in
// hand always satisfies end >= start.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange creates a validated DateRange. A zero end value means the
// range covers a single date.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() {
		return DateRange{}, ErrMissingStart
	}
	if !end.IsZero() && end.Before(start) {
		return DateRange{}, ErrEndBeforeStart
	}
	return DateRange{start: start, end: end}, nil
}

// Start returns the date the range begins on
func (r DateRange) Start() time.Time {
	return r.start
}

// End returns the date the range ends on, and whether an end date exists
func (r DateRange) End() (time.Time, bool) {
	return r.end, !r.end.IsZero()
}

// String renders the range as user-facing Spanish text: "El <desc>" for a
// single date, "Del <desc> al <desc>" for a range.
func (r DateRange) String() string {
	if r.end.IsZero() {
		return fmt.Sprintf("El %s", Describe(r.start))
	}
	return fmt.Sprintf("Del %s al %s", Describe(r.start), Describe(r.end))
}
