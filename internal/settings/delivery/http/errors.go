package http

import (
	"errors"
	"fmt"

	"schedlink/internal/settings"
	pkgErrors "schedlink/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, settings.ErrInvalidConfig):
		// The validation detail is safe to echo back to the admin.
		return pkgErrors.NewHTTPError(400, fmt.Sprintf("%v", err))
	case errors.Is(err, settings.ErrStoreFailure):
		return pkgErrors.NewHTTPError(500, "config store unavailable")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
