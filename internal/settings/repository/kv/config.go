package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"schedlink/internal/model"
	"schedlink/pkg/kvstore"
	"schedlink/pkg/log"
)

// configKey is the kv key holding the JSON config blob.
const configKey = "schedlink:config"

// Repository stores the scheduling config as a JSON blob in a kv store.
type Repository struct {
	store kvstore.Store
	l     log.Logger
}

// New creates a kv-backed config repository.
func New(store kvstore.Store, l log.Logger) *Repository {
	return &Repository{store: store, l: l}
}

func (r *Repository) Load(ctx context.Context) (model.SchedConfig, bool, error) {
	raw, ok, err := r.store.Get(ctx, configKey)
	if err != nil {
		return model.SchedConfig{}, false, fmt.Errorf("failed to load config: %w", err)
	}
	if !ok {
		return model.SchedConfig{}, false, nil
	}

	var cfg model.SchedConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return model.SchedConfig{}, false, fmt.Errorf("failed to decode stored config: %w", err)
	}
	return cfg, true, nil
}

func (r *Repository) Save(ctx context.Context, cfg model.SchedConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := r.store.Set(ctx, configKey, string(raw)); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
