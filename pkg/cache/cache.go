// Package cache stores rendered radar artifacts between runs.
//
// A layout pass is fully determined by its configuration fingerprint and
// the simulation settings, so the bytes of every output format can be
// reused as long as both are unchanged:
//
//	key := cache.ArtifactKey(fingerprint, cache.ArtifactKeyOpts{Format: "svg"})
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return data
//	}
//
// [FileCache] keeps entries on disk for the CLI; [NullCache] disables
// caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// ArtifactKeyOpts are the settings besides the configuration that shape
// an output.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	MaxTicks int    `json:"max_ticks,omitempty"`
	Simulate bool   `json:"simulate"`
	Compact  bool   `json:"compact,omitempty"`
}

// artifactVersion changes whenever the layout or a renderer changes
// output for the same input.
const artifactVersion = 1

// ArtifactKey returns the cache key of one rendered output.
func ArtifactKey(fingerprint string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", artifactVersion, fingerprint, opts)
}
