package canvas

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/render/palette"
)

// SVGOption configures an SVG canvas.
type SVGOption func(*SVG)

// WithViewport fixes the data-coordinate rectangle mapped onto the output.
// Without it, the viewport is fitted to the drawn geometry at finalization.
func WithViewport(r geom.Rect) SVGOption {
	return func(c *SVG) { c.viewport = &r }
}

// WithPadding sets the inner padding between the viewport and the drawing,
// in output pixels.
func WithPadding(p float64) SVGOption {
	return func(c *SVG) { c.padding = p }
}

// WithBackground fills the output with a solid background color.
func WithBackground(bg color.RGBA) SVGOption {
	return func(c *SVG) { c.background = &bg }
}

// SVG is a Canvas producing a standalone SVG document.
//
// Draw calls accumulate batches; Bytes computes the data-to-pixel transform
// (flipping Y so data coordinates grow upward) and serializes the document.
// An SVG canvas is single-use: render, call Bytes, discard.
type SVG struct {
	width, height float64
	padding       float64
	viewport      *geom.Rect
	background    *color.RGBA

	lineOps []LineBatch
	gradOps []GradientBatch
	order   []drawKind
}

type drawKind int

const (
	drawLines drawKind = iota
	drawGradient
)

// NewSVG creates an SVG canvas with the given output size in pixels.
func NewSVG(width, height float64, opts ...SVGOption) *SVG {
	c := &SVG{width: width, height: height, padding: 10}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DrawLines implements Canvas.
func (c *SVG) DrawLines(batch LineBatch) (Handle, error) {
	if err := validateLines(batch.Lines); err != nil {
		return Handle{}, err
	}
	c.lineOps = append(c.lineOps, batch)
	c.order = append(c.order, drawLines)
	return newHandle(batch.Label, len(batch.Lines)), nil
}

// DrawGradient implements Canvas.
func (c *SVG) DrawGradient(batch GradientBatch) (Handle, error) {
	if err := validateLines(batch.Curves); err != nil {
		return Handle{}, err
	}
	c.gradOps = append(c.gradOps, batch)
	c.order = append(c.order, drawGradient)
	return newHandle(batch.Label, len(batch.Curves)), nil
}

// Bytes finalizes the canvas and returns the SVG document.
func (c *SVG) Bytes() []byte {
	tr := c.transform()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.width, c.height, c.width, c.height)

	if c.background != nil {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", palette.Hex(*c.background))
	}

	li, gi := 0, 0
	for _, kind := range c.order {
		switch kind {
		case drawLines:
			c.renderLineBatch(&buf, c.lineOps[li], tr)
			li++
		case drawGradient:
			c.renderGradientBatch(&buf, c.gradOps[gi], tr)
			gi++
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// transform maps data coordinates into the pixel viewport.
type svgTransform struct {
	sx, sy     float64
	minX, maxY float64
	padX, padY float64
}

func (t svgTransform) apply(p geom.Point) (float64, float64) {
	return t.padX + (p.X-t.minX)*t.sx, t.padY + (t.maxY-p.Y)*t.sy
}

func (c *SVG) transform() svgTransform {
	rect := geom.Rect{MaxX: 1, MaxY: 1}
	if c.viewport != nil {
		rect = *c.viewport
	} else {
		lines := make([]geom.Polyline, 0, len(c.lineOps)+len(c.gradOps))
		for _, op := range c.lineOps {
			lines = append(lines, op.Lines...)
		}
		for _, op := range c.gradOps {
			lines = append(lines, op.Curves...)
		}
		if r, ok := geom.Bounds(lines); ok {
			rect = r
		}
	}

	w, h := rect.Width(), rect.Height()
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	return svgTransform{
		sx:   (c.width - 2*c.padding) / w,
		sy:   (c.height - 2*c.padding) / h,
		minX: rect.MinX,
		maxY: rect.MaxY,
		padX: c.padding,
		padY: c.padding,
	}
}

func (c *SVG) renderLineBatch(buf *bytes.Buffer, batch LineBatch, tr svgTransform) {
	fmt.Fprintf(buf, `  <g stroke="%s" stroke-opacity="%.3f" stroke-width="%.2f" fill="none"%s data-label=%q>`+"\n",
		palette.Hex(batch.Style.Color), opacity(batch.Style.Alpha), batch.Style.Width,
		dashAttr(batch.Style.Dash), batch.Label)
	for _, line := range batch.Lines {
		fmt.Fprintf(buf, `    <polyline points="%s"/>`+"\n", pointsAttr(line, tr))
	}
	buf.WriteString("  </g>\n")
}

// renderGradientBatch approximates a continuous gradient with per-segment
// strokes colored at the segment midpoint of the curve parameter.
func (c *SVG) renderGradientBatch(buf *bytes.Buffer, batch GradientBatch, tr svgTransform) {
	fmt.Fprintf(buf, `  <g stroke-opacity="%.3f" stroke-linecap="round" fill="none" data-label=%q>`+"\n",
		opacity(batch.Alpha), batch.Label)
	for i, curve := range batch.Curves {
		width := batch.strokeWidth(i)
		segments := len(curve) - 1
		for j := 0; j < segments; j++ {
			t := (float64(j) + 0.5) / float64(segments)
			col := gradientAt(batch.Source, batch.Target, t)
			x1, y1 := tr.apply(curve[j])
			x2, y2 := tr.apply(curve[j+1])
			fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`+"\n",
				x1, y1, x2, y2, palette.Hex(col), width)
		}
	}
	buf.WriteString("  </g>\n")
}

func pointsAttr(line geom.Polyline, tr svgTransform) string {
	parts := make([]string, len(line))
	for i, p := range line {
		x, y := tr.apply(p)
		parts[i] = fmt.Sprintf("%.2f,%.2f", x, y)
	}
	return strings.Join(parts, " ")
}

func dashAttr(dash []float64) string {
	if len(dash) == 0 {
		return ""
	}
	parts := make([]string, len(dash))
	for i, d := range dash {
		parts[i] = fmt.Sprintf("%g", d)
	}
	return fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, ","))
}

// opacity normalizes an alpha value: out-of-range or unset values render opaque.
func opacity(alpha float64) float64 {
	if alpha <= 0 || alpha > 1 {
		return 1
	}
	return alpha
}
