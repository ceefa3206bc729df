package booking

// CreateInput is a booking request for one slot.
//
// Date and Time are wall-clock values in the visitor's timezone, exactly as
// the availability listing rendered them.
type CreateInput struct {
	EventSlug       string
	Date            string // "YYYY-MM-DD"
	Time            string // "HH:MM"
	VisitorTimezone string // IANA
	Name            string
	Email           string
	Notes           string
}

// CreateOutput describes the created calendar event.
type CreateOutput struct {
	EventID    string
	HtmlLink   string
	EventTitle string
	Start      string // ISO-8601 with offset, visitor timezone
	End        string
}
