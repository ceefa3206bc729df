package model

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// EventType is a bookable meeting kind offered on the booking page.
type EventType struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"` // minutes
	Location    string `json:"location,omitempty"`
}

// DayWindow is one day's working hours as wall-clock "HH:MM" strings in the
// owner's timezone.
type DayWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklySchedule maps weekday (0=Sunday..6=Saturday) to that day's working
// hours. Days absent from the map are non-working days.
type WeeklySchedule map[int]DayWindow

// AvailabilityPolicy is the owner's booking policy. Read-only to the
// availability engine; validated at the config boundary.
type AvailabilityPolicy struct {
	Timezone         string         `json:"timezone"` // IANA
	Schedule         WeeklySchedule `json:"schedule"`
	BufferMinutes    int            `json:"bufferMinutes"`
	MaxDaysInAdvance int            `json:"maxDaysInAdvance"`
	MinNoticeMinutes int            `json:"minNoticeMinutes"`
}

// Owner identifies the calendar the service books into.
type Owner struct {
	Name       string `json:"name"`
	CalendarID string `json:"calendarId"` // "primary" or a specific calendar ID
}

// Branding holds booking-page presentation settings.
type Branding struct {
	AccentColor string  `json:"accentColor"` // hex color
	LogoURL     *string `json:"logoUrl"`
}

// SchedConfig is the full scheduling configuration blob.
type SchedConfig struct {
	Events       []EventType        `json:"events"`
	Availability AvailabilityPolicy `json:"availability"`
	Owner        Owner              `json:"owner"`
	Branding     Branding           `json:"branding"`
}

// FindEvent returns the event type with the given slug.
func (c SchedConfig) FindEvent(slug string) (EventType, bool) {
	for _, e := range c.Events {
		if e.Slug == slug {
			return e, true
		}
	}
	return EventType{}, false
}

// TimeSlot is one bookable slot rendered for the visitor.
type TimeSlot struct {
	Time     string `json:"time"`     // "HH:MM" in the visitor's timezone
	Datetime string `json:"datetime"` // ISO-8601 with offset
}
