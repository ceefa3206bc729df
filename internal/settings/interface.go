package settings

import (
	"context"

	"schedlink/internal/model"
)

// UseCase is the business logic for the scheduling configuration.
type UseCase interface {
	// Get returns the full config, seeding the store with defaults on first
	// use.
	Get(ctx context.Context) (model.SchedConfig, error)

	// Public returns the visitor-safe view of the config.
	Public(ctx context.Context) (PublicConfig, error)

	// Update validates and persists a new config.
	Update(ctx context.Context, cfg model.SchedConfig) error
}

// Reader is the read-only surface other domains consume.
type Reader interface {
	Get(ctx context.Context) (model.SchedConfig, error)
}
