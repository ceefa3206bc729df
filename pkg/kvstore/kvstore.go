// Package kvstore provides the small key-value persistence surface the
// service needs: one blob for the scheduling config and one for the owner's
// calendar tokens. The in-process implementation serves local development and
// tests; the Redis implementation is the durable production backend.
package kvstore

import "context"

// Store is a minimal get/set key-value store.
type Store interface {
	// Get returns the value for key. The second return reports whether the
	// key was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the value for key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}
