// Package canvas defines the drawing surface consumed by the edge render
// strategies, together with SVG and PNG implementations.
//
// Strategies hand the canvas batches of line geometry; the canvas owns the
// mapping from data coordinates to the output viewport and returns a
// [Handle] per drawn batch. Handles identify draw objects for callers that
// build legends or manage layering on top of the raw output.
package canvas

import (
	"errors"
	"image/color"

	"github.com/google/uuid"

	"github.com/edgeviz/edgeviz/pkg/geom"
)

// ErrMalformedGeometry is returned by the draw calls when a batch contains
// a polyline with fewer than two points.
var ErrMalformedGeometry = errors.New("polyline needs at least two points")

// Handle identifies a drawn batch on a canvas.
type Handle struct {
	ID    string // Unique draw-object identifier
	Label string // Caller-supplied batch label (e.g. a bin or group name)
	Count int    // Number of polylines in the batch
}

// newHandle mints a handle for a drawn batch.
func newHandle(label string, count int) Handle {
	return Handle{ID: uuid.NewString(), Label: label, Count: count}
}

// LineStyle describes uniform stroke styling for a line batch.
type LineStyle struct {
	Color color.RGBA
	Width float64   // Stroke width in data-independent output units
	Dash  []float64 // Dash pattern; nil means solid
	Alpha float64   // Opacity in [0, 1]
}

// DashPattern translates a line style name into a dash pattern.
// Unknown names fall back to solid.
func DashPattern(style string) []float64 {
	switch style {
	case "dashed":
		return []float64{6, 4}
	case "dotted":
		return []float64{1, 3}
	default:
		return nil
	}
}

// LineBatch is a set of polylines drawn with one shared style.
type LineBatch struct {
	Label string
	Lines []geom.Polyline
	Style LineStyle
}

// GradientBatch is a set of curves drawn with a color gradient running from
// Source at each curve's start to Target at its end.
//
// Weights optionally holds one value per curve; when WeightScale is positive
// each curve's stroke width becomes Width + WeightScale*weight. A zero
// WeightScale keeps widths uniform.
type GradientBatch struct {
	Label       string
	Curves      []geom.Polyline
	Weights     []float64
	Source      color.RGBA
	Target      color.RGBA
	Width       float64
	Alpha       float64
	WeightScale float64
}

// strokeWidth returns the effective stroke width for curve i.
func (b GradientBatch) strokeWidth(i int) float64 {
	if b.WeightScale <= 0 || i >= len(b.Weights) {
		return b.Width
	}
	return b.Width + b.WeightScale*b.Weights[i]
}

// Canvas is a 2D surface accepting line and gradient batches.
//
// Implementations accumulate batches and produce their output when the
// caller finalizes them (see [SVG.Bytes] and [PNG.Bytes]). Draw calls
// validate geometry and return ErrMalformedGeometry for degenerate
// polylines; everything else is deferred to finalization.
type Canvas interface {
	// DrawLines draws a uniformly styled batch and returns its handle.
	DrawLines(batch LineBatch) (Handle, error)

	// DrawGradient draws a gradient-colored batch and returns its handle.
	DrawGradient(batch GradientBatch) (Handle, error)
}

// validateLines rejects polylines that cannot be stroked.
func validateLines(lines []geom.Polyline) error {
	for _, line := range lines {
		if len(line) < 2 {
			return ErrMalformedGeometry
		}
	}
	return nil
}

// gradientAt returns the gradient color at arc-position t in [0, 1].
func gradientAt(source, target color.RGBA, t float64) color.RGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-t) + float64(b)*t + 0.5)
	}
	return color.RGBA{
		R: lerp(source.R, target.R),
		G: lerp(source.G, target.G),
		B: lerp(source.B, target.B),
		A: lerp(source.A, target.A),
	}
}
