package notion

import (
	"errors"
	"fmt"
)

// ErrNoUpcomingEvent is returned when the calendar holds no event after the
// requested instant.
var ErrNoUpcomingEvent = errors.New("no upcoming events in the calendar")

// MalformedRecordError reports a calendar record missing a required field or
// carrying one that cannot be parsed.
type MalformedRecordError struct {
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed calendar record: property %q %s", e.Field, e.Reason)
}

// UpstreamError reports that the Notion API was unreachable or answered with
// a non-success status.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("notion API unavailable: %v", e.Err)
	}
	return fmt.Sprintf("notion API returned status %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
