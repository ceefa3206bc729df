package http

import (
	"errors"

	"schedlink/internal/booking"
	pkgErrors "schedlink/pkg/errors"
	"schedlink/pkg/ownertoken"
	"schedlink/pkg/tzdate"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, booking.ErrEventTypeNotFound):
		return pkgErrors.NewHTTPError(404, "event type not found")
	case errors.Is(err, booking.ErrSlotConflict):
		return pkgErrors.NewHTTPError(409, "slot is no longer available")
	case errors.Is(err, tzdate.ErrInvalidTimezone):
		return pkgErrors.NewHTTPError(400, "invalid timezone")
	case errors.Is(err, tzdate.ErrInvalidFormat):
		return pkgErrors.NewHTTPError(400, "invalid date or time")
	case errors.Is(err, ownertoken.ErrNotConnected):
		return pkgErrors.NewHTTPError(503, "calendar not connected")
	case errors.Is(err, booking.ErrUpstreamUnavailable):
		return pkgErrors.NewHTTPError(500, "calendar booking failed")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
