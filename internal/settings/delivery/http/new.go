package http

import (
	"schedlink/internal/settings"
	"schedlink/pkg/log"
	"schedlink/pkg/ownertoken"
)

type handler struct {
	l      log.Logger
	uc     settings.UseCase
	tokens *ownertoken.Resolver
}

// New creates a new HTTP handler for the settings domain. The token resolver
// backs the admin connection endpoints.
func New(l log.Logger, uc settings.UseCase, tokens *ownertoken.Resolver) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		tokens: tokens,
	}
}
