// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import "context"

// Storage keys. Each mutable collection owns exactly one key and is read
// and rewritten in full on every mutation; there are no partial updates
// and no transactional guarantees across keys.
const (
	KeyCart           = "gwDiningCart"
	KeyUser           = "gwDiningUser"
	KeyReviews        = "gwDiningLocationReviews"
	KeyAccommodations = "gwDiningAccommodationRequests"
)

// KVStore is the persistent key/value store behind all mutable state.
// Values are text-encoded structured records. Implementations must treat
// a missing key as absent rather than an error; decoding problems are the
// caller's concern.
type KVStore interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores the value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
