// Package edges implements the edge render strategies: plain uniform
// styling, weight-binned coloring, community gradients, and
// origin-destination gradients.
//
// Every strategy follows the same two-phase contract: it is constructed
// bound to one network, [Strategy.PrepareData] derives render-ready state
// from the network's edges, and [Strategy.Render] draws that state onto a
// canvas one or more times. PrepareData rebuilds the derived state from
// scratch on each call; Render never transforms data. Rendering before
// preparing fails with an ErrCodeNotPrepared error.
//
// Strategy instances are single-owner and not safe for concurrent use.
package edges

import (
	"image/color"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/network"
	"github.com/edgeviz/edgeviz/pkg/render/canvas"
	"github.com/edgeviz/edgeviz/pkg/render/palette"
)

// Strategy names as reported by Name and accepted by the CLI.
const (
	NamePlain     = "plain"
	NameWeighted  = "weighted"
	NameCommunity = "community-gradient"
	NameOD        = "origin-destination"
)

// Strategy is the two-phase edge rendering contract.
type Strategy interface {
	// Name returns the strategy identifier.
	Name() string

	// PrepareData derives render-ready state from the bound network's
	// edges. It performs no drawing. Validation failures surface here,
	// fail-fast, leaving no partial state behind.
	PrepareData() error

	// Render draws the prepared state onto the surface and returns one
	// handle per drawn batch. It performs no data transformation and may
	// be called repeatedly against the same prepared state.
	Render(surface canvas.Canvas, opts ...Option) ([]canvas.Handle, error)
}

// Options is the style surface recognized by the strategies. Each strategy
// reads the subset that applies to it and ignores the rest.
type Options struct {
	Color       string  // Uniform or ramp base color (hex or named)
	LineWidth   float64 // Stroke width
	LineStyle   string  // "solid", "dashed", or "dotted"
	Alpha       float64 // Opacity in [0, 1]
	Palette     string  // Named palette for binned/categorical coloring
	SourceColor string  // Gradient start color
	TargetColor string  // Gradient end color
	WeightScale float64 // Weight-driven stroke widening; 0 disables
}

// Option mutates render options.
type Option func(*Options)

// WithColor sets the uniform edge color (plain) or ramp base color (weighted).
func WithColor(c string) Option { return func(o *Options) { o.Color = c } }

// WithLineWidth sets the stroke width.
func WithLineWidth(w float64) Option { return func(o *Options) { o.LineWidth = w } }

// WithLineStyle sets the dash pattern by name: "solid", "dashed", "dotted".
func WithLineStyle(s string) Option { return func(o *Options) { o.LineStyle = s } }

// WithAlpha sets the stroke opacity.
func WithAlpha(a float64) Option { return func(o *Options) { o.Alpha = a } }

// WithPalette selects a named palette for the weighted tiers or community
// colors.
func WithPalette(name string) Option { return func(o *Options) { o.Palette = name } }

// WithSourceColor sets the gradient color at the origin end of each edge.
func WithSourceColor(c string) Option { return func(o *Options) { o.SourceColor = c } }

// WithTargetColor sets the gradient color at the destination end of each edge.
func WithTargetColor(c string) Option { return func(o *Options) { o.TargetColor = c } }

// WithWeightScale enables weight-driven stroke widening for gradient
// strategies: each curve's width grows by scale times its accumulated
// weight.
func WithWeightScale(scale float64) Option { return func(o *Options) { o.WeightScale = scale } }

// buildOptions applies opts on top of per-strategy defaults.
func buildOptions(defaults Options, opts []Option) Options {
	o := defaults
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// errNotPrepared is the shared render-before-prepare failure.
func errNotPrepared(name string) error {
	return errors.New(errors.ErrCodeNotPrepared, "%s: PrepareData must run before Render", name)
}

// collectLines gathers every edge's drawn geometry, in edge order.
// The invariant len(collectLines(n)) == n.EdgeCount() holds for all
// networks and is what ties prepared state to the edge collection.
func collectLines(n *network.Network) []geom.Polyline {
	lines := make([]geom.Polyline, 0, n.EdgeCount())
	for _, e := range n.Edges() {
		lines = append(lines, e.Path.Points)
	}
	return lines
}

// edgeWeights returns the network's "weight" property, or uniform 1s when
// the property is unset. Used by the gradient strategies to accumulate
// per-curve weights.
func edgeWeights(n *network.Network) []float64 {
	if w, ok := n.EdgeProperty(network.PropWeight); ok {
		return w
	}
	uniform := make([]float64, n.EdgeCount())
	for i := range uniform {
		uniform[i] = 1
	}
	return uniform
}

// resolveColor parses a color option, falling back to def on empty input.
func resolveColor(s, def string) (color.RGBA, error) {
	if s == "" {
		s = def
	}
	return palette.Parse(s)
}
