package cache

import "time"

// Cache lifetimes per pipeline stage. Layouts are pure functions of the
// network and engine, so they keep for a long time; artifacts depend on
// style options that change more often.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)
