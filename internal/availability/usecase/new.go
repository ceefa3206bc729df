package usecase

import (
	"time"

	"schedlink/internal/settings"
	"schedlink/pkg/gcalendar"
	pkgLog "schedlink/pkg/log"
	"schedlink/pkg/ownertoken"
	"schedlink/pkg/tzdate"
)

type implUseCase struct {
	l      pkgLog.Logger
	config settings.Reader
	tokens ownertoken.Accessor
	cal    gcalendar.API
	tz     *tzdate.Converter

	// now is split out so tests can pin the clock; the minimum-notice
	// cutoff must otherwise be computed fresh per request.
	now func() time.Time
}

// New creates a new availability UseCase instance.
func New(
	l pkgLog.Logger,
	config settings.Reader,
	tokens ownertoken.Accessor,
	cal gcalendar.API,
	tz *tzdate.Converter,
) *implUseCase {
	return &implUseCase{
		l:      l,
		config: config,
		tokens: tokens,
		cal:    cal,
		tz:     tz,
		now:    time.Now,
	}
}

// WithClock overrides the engine clock. Test hook.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}
