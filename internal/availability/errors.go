package availability

import "errors"

// Domain-specific errors for the availability package.
var (
	ErrEventTypeNotFound   = errors.New("event type not found")
	ErrDateOutOfRange      = errors.New("date is beyond the booking horizon")
	ErrInvalidDuration     = errors.New("event duration must be positive")
	ErrUpstreamUnavailable = errors.New("calendar provider unavailable")
)
