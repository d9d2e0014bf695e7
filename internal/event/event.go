package event

// Event represents a single calendar event from the group's Notion calendar
type Event struct {
	Title        string
	Date         DateRange
	Type         string
	Location     string
	Scouters     []string
	Participants int
	URL          string
}
