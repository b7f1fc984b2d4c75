package pipeline

import (
	"bytes"
	"fmt"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/network"
	"github.com/edgeviz/edgeviz/pkg/render/canvas"
	"github.com/edgeviz/edgeviz/pkg/render/edges"
	"github.com/edgeviz/edgeviz/pkg/render/palette"
	"github.com/edgeviz/edgeviz/pkg/render/preview"
)

// BuildStrategy constructs the edge strategy named by the options, bound
// to the network.
func BuildStrategy(n *network.Network, opts Options) (edges.Strategy, error) {
	switch opts.Strategy {
	case edges.NamePlain:
		return edges.NewPlain(n), nil

	case edges.NameWeighted:
		source := edges.NoWeights()
		switch {
		case len(opts.WeightValues) > 0:
			source = edges.WeightsFromValues(opts.WeightValues)
		case opts.WeightsProperty != "":
			source = edges.WeightsFromProperty(opts.WeightsProperty)
		}
		return edges.NewWeighted(n, source, opts.Bins), nil

	case edges.NameCommunity:
		labels := n.Communities()
		if labels == nil {
			return nil, errors.New(errors.ErrCodeInvalidCommunities,
				"community rendering requires node community labels")
		}
		return edges.NewCommunityGradient(n, labels)

	case edges.NameOD:
		return edges.NewODGradient(n, opts.SamplePoints), nil
	}
	return nil, fmt.Errorf("invalid strategy: %q", opts.Strategy)
}

// RenderArtifacts prepares the strategy once and renders every requested
// format. Returns artifacts keyed by format name.
func RenderArtifacts(n *network.Network, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	strategy, err := BuildStrategy(n, opts)
	if err != nil {
		return nil, err
	}
	if err := strategy.PrepareData(); err != nil {
		return nil, err
	}

	style := styleOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(n, strategy, format, style, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// renderFormat draws one output format.
func renderFormat(n *network.Network, strategy edges.Strategy, format string, style []edges.Option, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		surface := canvas.NewSVG(float64(opts.Width), float64(opts.Height), svgOptions(opts)...)
		if _, err := strategy.Render(surface, style...); err != nil {
			return nil, err
		}
		return surface.Bytes(), nil

	case FormatPNG:
		surface := canvas.NewPNG(opts.Width, opts.Height, pngOptions(opts)...)
		if _, err := strategy.Render(surface, style...); err != nil {
			return nil, err
		}
		return surface.Bytes()

	case FormatHTML:
		var buf bytes.Buffer
		err := preview.Render(n, &buf, preview.Options{
			Width:  fmt.Sprintf("%dpx", opts.Width),
			Height: fmt.Sprintf("%dpx", opts.Height),
		})
		if err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("invalid format: %q", format)
}

// styleOptions translates pipeline options to strategy render options,
// passing only the ones the caller set so strategy defaults survive.
func styleOptions(opts Options) []edges.Option {
	var style []edges.Option
	if opts.Color != "" {
		style = append(style, edges.WithColor(opts.Color))
	}
	if opts.Palette != "" {
		style = append(style, edges.WithPalette(opts.Palette))
	}
	if opts.SourceColor != "" {
		style = append(style, edges.WithSourceColor(opts.SourceColor))
	}
	if opts.TargetColor != "" {
		style = append(style, edges.WithTargetColor(opts.TargetColor))
	}
	if opts.LineStyle != "" {
		style = append(style, edges.WithLineStyle(opts.LineStyle))
	}
	if opts.LineWidth > 0 {
		style = append(style, edges.WithLineWidth(opts.LineWidth))
	}
	if opts.Alpha > 0 {
		style = append(style, edges.WithAlpha(opts.Alpha))
	}
	if opts.WeightScale > 0 {
		style = append(style, edges.WithWeightScale(opts.WeightScale))
	}
	return style
}

func svgOptions(opts Options) []canvas.SVGOption {
	var out []canvas.SVGOption
	if c, err := palette.Parse(opts.Background); opts.Background != "" && err == nil {
		out = append(out, canvas.WithBackground(c))
	}
	return out
}

func pngOptions(opts Options) []canvas.PNGOption {
	var out []canvas.PNGOption
	if c, err := palette.Parse(opts.Background); opts.Background != "" && err == nil {
		out = append(out, canvas.WithPNGBackground(c))
	}
	return out
}
