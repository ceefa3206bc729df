package tzdate

import "errors"

var (
	// ErrInvalidTimezone marks an empty or unrecognized IANA zone identifier.
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrInvalidFormat marks a date or time string that does not match its
	// expected pattern.
	ErrInvalidFormat = errors.New("invalid format")
)
