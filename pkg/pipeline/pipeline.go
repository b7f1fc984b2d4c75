// Package pipeline runs the load → layout → render pipeline shared by the
// CLI and the render service. Centralizing the stages here keeps caching
// behavior identical across entry points.
//
// The three stages are:
//
//  1. Load: read a network document (JSON) into a Network
//  2. Layout: assign node positions via Graphviz when requested
//  3. Render: apply an edge strategy and produce artifacts
//
// Each stage can run independently or as part of a complete run:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, doc, pipeline.Options{
//	    Strategy: "weighted",
//	    Bins:     5,
//	    Formats:  []string{"svg"},
//	})
package pipeline

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/edgeviz/edgeviz/pkg/cache"
	"github.com/edgeviz/edgeviz/pkg/network"
	"github.com/edgeviz/edgeviz/pkg/render/edges"
)

// Pipeline defaults, shared by CLI flags and service requests.
const (
	DefaultStrategy     = edges.NamePlain
	DefaultEngine       = network.EngineSFDP
	DefaultBins         = 5
	DefaultSamplePoints = 30
	DefaultWidth        = 800
	DefaultHeight       = 600
)

// Output format names.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatHTML = "html"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatHTML: true,
}

// ValidStrategies is the set of edge strategy names.
var ValidStrategies = map[string]bool{
	edges.NamePlain:     true,
	edges.NameWeighted:  true,
	edges.NameCommunity: true,
	edges.NameOD:        true,
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: svg, png, html)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStrategy checks that the name identifies an edge strategy.
func ValidateStrategy(name string) error {
	if !ValidStrategies[name] {
		return fmt.Errorf("invalid strategy: %q (must be one of: plain, weighted, community-gradient, origin-destination)", name)
	}
	return nil
}

// Options configures a pipeline run. The struct serializes as JSON for
// render service requests; runtime fields are excluded.
type Options struct {
	// Layout options. An empty Engine skips the layout stage and keeps
	// the document's positions.
	Engine string `json:"engine,omitempty"`

	// Strategy selection.
	Strategy        string    `json:"strategy,omitempty"`
	WeightsProperty string    `json:"weights_property,omitempty"`
	WeightValues    []float64 `json:"weight_values,omitempty"`
	Bins            int       `json:"bins,omitempty"`
	SamplePoints    int       `json:"sample_points,omitempty"`

	// Style options. Zero values defer to per-strategy defaults.
	Color       string  `json:"color,omitempty"`
	Palette     string  `json:"palette,omitempty"`
	SourceColor string  `json:"source_color,omitempty"`
	TargetColor string  `json:"target_color,omitempty"`
	LineStyle   string  `json:"line_style,omitempty"`
	LineWidth   float64 `json:"line_width,omitempty"`
	Alpha       float64 `json:"alpha,omitempty"`
	WeightScale float64 `json:"weight_scale,omitempty"`

	// Output options.
	Formats    []string `json:"formats,omitempty"`
	Width      int      `json:"width,omitempty"`
	Height     int      `json:"height,omitempty"`
	Background string   `json:"background,omitempty"`

	// Refresh bypasses cached layouts and artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized).
	Logger *log.Logger `json:"-"`

	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks all fields and applies defaults.
// Idempotent: repeat calls are no-ops.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLayout validates the layout stage options. The engine is only
// validated when layout is requested.
func (o *Options) ValidateForLayout() error {
	o.setLogger()
	if o.Engine == "" {
		return nil
	}
	return network.ValidateEngine(o.Engine)
}

// SetRenderDefaults applies render-stage defaults.
func (o *Options) SetRenderDefaults() {
	if o.Strategy == "" {
		o.Strategy = DefaultStrategy
	}
	if o.Bins == 0 {
		o.Bins = DefaultBins
	}
	if o.SamplePoints == 0 {
		o.SamplePoints = DefaultSamplePoints
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	o.setLogger()
}

// ValidateForRender validates and defaults the render stage options.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateStrategy(o.Strategy); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutKeyOpts returns the cache key options for the layout stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{Engine: o.Engine}
}

// ArtifactKeyOpts returns the cache key options for one rendered format.
// The style hash folds every option that affects pixel output, so any
// style change invalidates the cached artifact.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Strategy: o.Strategy,
		Format:   format,
		Style:    o.styleHash(),
	}
}

// styleHash fingerprints the style-affecting options.
func (o *Options) styleHash() string {
	return cache.Hash(fmt.Appendf(nil, "%s|%v|%d|%d|%s|%s|%s|%s|%s|%g|%g|%g|%d|%d|%s",
		o.WeightsProperty, o.WeightValues, o.Bins, o.SamplePoints,
		o.Color, o.Palette, o.SourceColor, o.TargetColor, o.LineStyle,
		o.LineWidth, o.Alpha, o.WeightScale, o.Width, o.Height, o.Background))
}
