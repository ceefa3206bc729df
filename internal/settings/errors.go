package settings

import "errors"

// Domain-specific errors for the settings package.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrStoreFailure  = errors.New("config store failure")
)
