// Package cache provides byte-level caching for expensive pipeline
// stages: Graphviz layout positions and rendered artifacts. Backends
// include an on-disk cache for CLI usage, a Redis cache for the serve
// mode, and a null cache for disabling caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache is the storage contract shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was found; expired or corrupt entries count as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A non-positive ttl stores
	// the entry without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts parameterize a layout cache key. Two layouts of the same
// network differ when computed by different engines.
type LayoutKeyOpts struct {
	Engine string // Graphviz engine name (dot, neato, sfdp, circo)
}

// ArtifactKeyOpts parameterize a rendered-artifact cache key.
type ArtifactKeyOpts struct {
	Strategy string // Edge strategy name
	Format   string // Output format (svg, png, html)
	Style    string // Hash of the resolved style options
}

// Keyer builds cache keys for the pipeline stages.
type Keyer interface {
	// LayoutKey keys computed node positions by network content hash and
	// layout options.
	LayoutKey(networkHash string, opts LayoutKeyOpts) string

	// ArtifactKey keys rendered output by network content hash and
	// render options.
	ArtifactKey(networkHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer builds unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key builder.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for cached node positions.
func (k *DefaultKeyer) LayoutKey(networkHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", networkHash, opts)
}

// ArtifactKey generates a key for cached rendered output.
func (k *DefaultKeyer) ArtifactKey(networkHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", networkHash, opts)
}
