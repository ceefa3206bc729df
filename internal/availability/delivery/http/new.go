package http

import (
	"schedlink/internal/availability"
	"schedlink/pkg/log"
)

type handler struct {
	l  log.Logger
	uc availability.UseCase
}

// New creates a new HTTP handler for the availability domain.
func New(l log.Logger, uc availability.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
