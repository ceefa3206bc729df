package usecase

import (
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
}

// New creates a new booking UseCase instance.
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
	}
}
