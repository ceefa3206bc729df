package repository

import (
	"context"

	"schedlink/internal/model"
)

// ConfigRepository persists the scheduling config blob.
type ConfigRepository interface {
	// Load returns the stored config. The second return reports whether a
	// config has been stored yet.
	Load(ctx context.Context) (model.SchedConfig, bool, error)

	// Save overwrites the stored config.
	Save(ctx context.Context, cfg model.SchedConfig) error
}
