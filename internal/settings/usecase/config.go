package usecase

import (
	"context"
	"fmt"

	"schedlink/internal/model"
	"schedlink/internal/settings"
)

// Get returns the stored config, seeding the store with the compiled
// defaults on first use.
func (uc *implUseCase) Get(ctx context.Context) (model.SchedConfig, error) {
	cfg, ok, err := uc.repo.Load(ctx)
	if err != nil {
		return model.SchedConfig{}, fmt.Errorf("%w: %v", settings.ErrStoreFailure, err)
	}
	if ok {
		return cfg, nil
	}

	defaults := settings.Defaults()
	if err := uc.repo.Save(ctx, defaults); err != nil {
		// The seed is best-effort; serving defaults still works.
		uc.l.Warnf(ctx, "failed to seed default config: %v", err)
	}
	return defaults, nil
}

// Public projects the config into its visitor-safe view.
func (uc *implUseCase) Public(ctx context.Context) (settings.PublicConfig, error) {
	cfg, err := uc.Get(ctx)
	if err != nil {
		return settings.PublicConfig{}, err
	}

	return settings.PublicConfig{
		Events:       cfg.Events,
		Owner:        settings.PublicOwner{Name: cfg.Owner.Name},
		Branding:     cfg.Branding,
		Availability: settings.PublicAvailability{Timezone: cfg.Availability.Timezone},
	}, nil
}

// Update validates and persists a new config.
func (uc *implUseCase) Update(ctx context.Context, cfg model.SchedConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", settings.ErrInvalidConfig, err)
	}
	if err := uc.repo.Save(ctx, cfg); err != nil {
		return fmt.Errorf("%w: %v", settings.ErrStoreFailure, err)
	}
	return nil
}
