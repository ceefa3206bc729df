package booking

import "errors"

// Domain-specific errors for the booking package.
var (
	ErrEventTypeNotFound   = errors.New("event type not found")
	ErrSlotConflict        = errors.New("slot is no longer available")
	ErrUpstreamUnavailable = errors.New("calendar provider unavailable")
)
