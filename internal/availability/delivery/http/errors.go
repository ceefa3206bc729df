package http

import (
	"errors"

	"schedlink/internal/availability"
	pkgErrors "schedlink/pkg/errors"
	"schedlink/pkg/ownertoken"
	"schedlink/pkg/tzdate"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, availability.ErrEventTypeNotFound):
		return pkgErrors.NewHTTPError(404, "event type not found")
	case errors.Is(err, availability.ErrDateOutOfRange):
		return pkgErrors.NewHTTPError(400, "date is beyond the booking horizon")
	case errors.Is(err, tzdate.ErrInvalidTimezone):
		return pkgErrors.NewHTTPError(400, "invalid timezone")
	case errors.Is(err, tzdate.ErrInvalidFormat):
		return pkgErrors.NewHTTPError(400, "invalid date")
	case errors.Is(err, ownertoken.ErrNotConnected):
		return pkgErrors.NewHTTPError(503, "calendar not connected")
	case errors.Is(err, availability.ErrUpstreamUnavailable):
		return pkgErrors.NewHTTPError(500, "calendar lookup failed")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
