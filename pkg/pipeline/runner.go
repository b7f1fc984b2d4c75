package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/edgeviz/edgeviz/pkg/cache"
	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/network"
	"github.com/edgeviz/edgeviz/pkg/observability"
)

// Runner executes pipeline stages with caching. It is stateless except
// for the cache and logger; multiple goroutines can share one Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil keyer falls back to the default
// keyer; a nil cache disables caching.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Network is the loaded (and possibly laid-out) network.
	Network *network.Network

	// NetworkHash is the content hash of the network document.
	NetworkHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits per stage.
type CacheInfo struct {
	LayoutHit bool // positions came from cache
	RenderHit bool // all artifacts came from cache
}

// Execute runs the complete load → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, doc network.Document, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	n, err := network.ToNetwork(doc)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	result := &Result{Network: n}
	result.Stats.NodeCount = n.NodeCount()
	result.Stats.EdgeCount = n.EdgeCount()
	r.Logger.Info("loaded network",
		"nodes", n.NodeCount(),
		"edges", n.EdgeCount())

	if opts.Engine != "" {
		layoutStart := time.Now()
		hit, err := r.AssignPositionsWithCacheInfo(ctx, n, opts)
		if err != nil {
			return nil, fmt.Errorf("layout: %w", err)
		}
		result.Stats.LayoutTime = time.Since(layoutStart)
		result.CacheInfo.LayoutHit = hit
		r.Logger.Info("computed layout",
			"engine", opts.Engine,
			"cached", hit,
			"duration", result.Stats.LayoutTime)
	}

	result.NetworkHash = networkHash(n)

	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, n, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit
	r.Logger.Info("rendered outputs",
		"strategy", opts.Strategy,
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// AssignPositionsWithCacheInfo runs the Graphviz layout stage, consulting
// the cache first. The cached value is the position array keyed by the
// pre-layout network hash and engine; on a hit the positions are written
// back without invoking Graphviz.
func (r *Runner) AssignPositionsWithCacheInfo(ctx context.Context, n *network.Network, opts Options) (bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return false, err
	}
	r.applyLogger(&opts)

	key := r.Keyer.LayoutKey(networkHash(n), opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if applyCachedPositions(n, data) == nil {
				observability.Cache().OnCacheHit(ctx, observability.KeyTypeLayout)
				return true, nil
			}
			// Corrupt entry: recompute below.
		}
		observability.Cache().OnCacheMiss(ctx, observability.KeyTypeLayout)
	}

	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.Engine, n.NodeCount())
	err := network.AssignPositions(ctx, n, opts.Engine)
	observability.Pipeline().OnLayoutComplete(ctx, opts.Engine, time.Since(layoutStart), err)
	if err != nil {
		return false, err
	}

	if data, err := marshalPositions(n); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, observability.KeyTypeLayout, len(data))
	}
	return false, nil
}

// AssignPositions is a convenience wrapper discarding the cache hit info.
func (r *Runner) AssignPositions(ctx context.Context, n *network.Network, opts Options) error {
	_, err := r.AssignPositionsWithCacheInfo(ctx, n, opts)
	return err
}

// RenderWithCacheInfo renders artifacts, consulting the cache per format.
// The hit flag reports whether every requested format was served from
// cache; a single miss re-renders all formats, since strategy preparation
// dominates the cost.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, n *network.Network, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	hash := networkHash(n)

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		allCached := true
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				allCached = false
				break
			}
			artifacts[format] = data
		}
		if allCached {
			observability.Cache().OnCacheHit(ctx, observability.KeyTypeArtifact)
			return artifacts, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, observability.KeyTypeArtifact)
	}

	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Strategy, opts.Formats)
	rendered, err := RenderArtifacts(n, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Strategy, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, observability.KeyTypeArtifact, len(data))
	}
	return rendered, false, nil
}

// Render is a convenience wrapper discarding the cache hit info.
func (r *Runner) Render(ctx context.Context, n *network.Network, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, n, opts)
	return artifacts, err
}

// Close releases resources held by the runner, primarily the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// networkHash fingerprints a network by its document serialization.
func networkHash(n *network.Network) string {
	data, err := json.Marshal(network.FromNetwork(n))
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

// positionsEntry is the cached layout value.
type positionsEntry struct {
	Positions [][2]float64 `json:"positions"`
}

func marshalPositions(n *network.Network) ([]byte, error) {
	entry := positionsEntry{Positions: make([][2]float64, n.NodeCount())}
	for i := 0; i < n.NodeCount(); i++ {
		p := n.Position(i)
		entry.Positions[i] = [2]float64{p.X, p.Y}
	}
	return json.Marshal(entry)
}

// applyCachedPositions writes cached coordinates back into the network.
// Fails when the entry does not align with the node count, so stale
// entries for a different network shape are ignored.
func applyCachedPositions(n *network.Network, data []byte) error {
	var entry positionsEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return err
	}
	if len(entry.Positions) != n.NodeCount() {
		return fmt.Errorf("cached layout has %d positions, network has %d nodes",
			len(entry.Positions), n.NodeCount())
	}
	for i, xy := range entry.Positions {
		if err := n.SetPosition(i, geom.Point{X: xy[0], Y: xy[1]}); err != nil {
			return err
		}
	}
	return nil
}
