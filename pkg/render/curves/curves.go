// Package curves provides gradient-colored curve collections.
//
// A [ColoredCurveCollection] accumulates weighted polylines and draws them
// as a single batch whose color runs from a source color at each curve's
// start to a target color at its end. Collections are the building block
// for the community and origin-destination gradient strategies.
package curves

import (
	"image/color"

	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/render/canvas"
)

// Style controls how a collection is drawn.
type Style struct {
	Label string  // Batch label carried onto the draw handle
	Width float64 // Base stroke width
	Alpha float64 // Opacity in [0, 1]

	// WeightScale, when positive, widens each curve's stroke by
	// WeightScale times its accumulated weight. Zero keeps all curves at
	// the base width, i.e. weights are ignored for styling.
	WeightScale float64
}

// ColoredCurveCollection accumulates curves and renders them with a
// start-to-end color gradient.
//
// The zero value is ready to use. Collections are not safe for concurrent
// use.
type ColoredCurveCollection struct {
	curves  []geom.Polyline
	weights []float64
	source  color.RGBA
	target  color.RGBA
}

// AddCurve appends a curve with an associated weight.
// The point slice is stored as-is; callers hand over ownership.
func (c *ColoredCurveCollection) AddCurve(points geom.Polyline, weight float64) {
	c.curves = append(c.curves, points)
	c.weights = append(c.weights, weight)
}

// SetColors sets the gradient endpoints: every curve is tinted source at its
// start and target at its end.
func (c *ColoredCurveCollection) SetColors(source, target color.RGBA) {
	c.source = source
	c.target = target
}

// Len returns the number of accumulated curves.
func (c *ColoredCurveCollection) Len() int { return len(c.curves) }

// Curves returns the accumulated curve geometries. The returned slice is
// the live backing array; treat it as read-only.
func (c *ColoredCurveCollection) Curves() []geom.Polyline { return c.curves }

// TotalWeight returns the sum of all accumulated curve weights.
func (c *ColoredCurveCollection) TotalWeight() float64 {
	var total float64
	for _, w := range c.weights {
		total += w
	}
	return total
}

// Render draws the collection on the surface as one gradient batch and
// returns its handle. Geometry errors propagate from the canvas.
func (c *ColoredCurveCollection) Render(surface canvas.Canvas, style Style) (canvas.Handle, error) {
	return surface.DrawGradient(canvas.GradientBatch{
		Label:       style.Label,
		Curves:      c.curves,
		Weights:     c.weights,
		Source:      c.source,
		Target:      c.target,
		Width:       style.Width,
		Alpha:       style.Alpha,
		WeightScale: style.WeightScale,
	})
}
