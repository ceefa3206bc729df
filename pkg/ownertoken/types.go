package ownertoken

import (
	"context"
	"errors"
)

// Tokens is the owner's Google OAuth token set, stored encrypted.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"` // unix seconds
}

// Accessor yields a valid owner access token for calendar calls.
type Accessor interface {
	AccessToken(ctx context.Context) (string, error)
}

// ErrNotConnected means no usable owner token could be resolved from any
// source. Callers surface this as a distinct "calendar not connected"
// condition, not a generic failure.
var ErrNotConnected = errors.New("owner calendar not connected")
