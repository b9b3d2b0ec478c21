package gcalendar

import "time"

// BlockKeyProperty is the private extended property that identifies an
// exported schedule block, so re-exporting the same schedule is idempotent.
const BlockKeyProperty = "planner_block"

// DefaultCalendarID is used when a request names no calendar.
const DefaultCalendarID = "primary"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "America/New_York"
	BlockKey    string // optional; stored under BlockKeyProperty
	ColorID     string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	BlockKey    string
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
	// OnlyBlocks restricts results to events created by the exporter.
	OnlyBlocks bool
}
