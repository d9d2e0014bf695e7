package notion

import (
	"time"

	"github.com/dieortin/escultoide-bot/internal/event"
)

// Notion date properties carry either a full timestamp or a bare date,
// depending on whether "include time" is set on the calendar entry.
var timestampLayouts = []string{time.RFC3339, "2006-01-02"}

func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// mapPage converts one raw calendar record into an Event. It is a pure
// transform; records missing the title or a parsable start date are
// rejected with a MalformedRecordError.
func mapPage(p page) (*event.Event, error) {
	props := p.Properties

	titleSegments := props[propTitle].Title
	if len(titleSegments) == 0 {
		return nil, &MalformedRecordError{Field: propTitle, Reason: "has no title text"}
	}
	title := titleSegments[0].PlainText

	// Location is optional and defaults to empty.
	var location string
	if segments := props[propLocation].RichText; len(segments) > 0 {
		location = segments[0].PlainText
	}

	date := props[propDate].Date
	if date == nil || date.Start == "" {
		return nil, &MalformedRecordError{Field: propDate, Reason: "is missing a start date"}
	}
	start, err := parseTimestamp(date.Start)
	if err != nil {
		return nil, &MalformedRecordError{Field: propDate, Reason: "has an unparsable start date"}
	}
	var end time.Time
	if date.End != "" {
		end, err = parseTimestamp(date.End)
		if err != nil {
			return nil, &MalformedRecordError{Field: propDate, Reason: "has an unparsable end date"}
		}
	}
	dateRange, err := event.NewDateRange(start, end)
	if err != nil {
		return nil, &MalformedRecordError{Field: propDate, Reason: err.Error()}
	}

	var eventType string
	if sel := props[propType].Select; sel != nil {
		eventType = sel.Name
	}

	var scouters []string
	for _, option := range props[propScouters].MultiSelect {
		scouters = append(scouters, option.Name)
	}

	return &event.Event{
		Title:        title,
		Date:         dateRange,
		Type:         eventType,
		Location:     location,
		Scouters:     scouters,
		Participants: len(props[propParticipants].Relation),
		URL:          p.URL,
	}, nil
}
