package availability

import "schedlink/internal/model"

// ComputeSlotsInput identifies the event type, calendar date, and the
// timezone the resulting slots should be rendered in.
type ComputeSlotsInput struct {
	EventSlug       string
	Date            string // "YYYY-MM-DD"
	VisitorTimezone string // IANA
}

// ComputeSlotsOutput carries the bookable slots in chronological order.
// An empty slice is a valid result (non-working day or fully booked).
type ComputeSlotsOutput struct {
	Slots []model.TimeSlot
}
