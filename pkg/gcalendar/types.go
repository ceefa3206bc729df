package gcalendar

import "time"

// BusyInterval is one busy period from a free/busy query.
// Treated as closed-open [Start, End) for overlap purposes.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// FreeBusyRequest is the input for a free/busy query.
type FreeBusyRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID    string
	Summary       string
	Description   string
	StartTime     time.Time
	EndTime       time.Time
	Timezone      string // e.g. "America/New_York"
	AttendeeEmail string
}

// Event is a simplified representation of a created Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
