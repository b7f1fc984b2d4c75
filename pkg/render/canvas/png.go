package canvas

import (
	"bytes"
	"image/color"

	"git.sr.ht/~sbinet/gg"

	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/render/palette"
)

// PNGOption configures a PNG canvas.
type PNGOption func(*PNG)

// WithPNGViewport fixes the data-coordinate rectangle mapped onto the image.
// Without it, the viewport is fitted to the drawn geometry at finalization.
func WithPNGViewport(r geom.Rect) PNGOption {
	return func(c *PNG) { c.viewport = &r }
}

// WithPNGPadding sets the inner padding between the image border and the
// drawing, in pixels.
func WithPNGPadding(p float64) PNGOption {
	return func(c *PNG) { c.padding = p }
}

// WithPNGBackground fills the image with a solid background color.
// Without it, the background is transparent.
func WithPNGBackground(bg color.RGBA) PNGOption {
	return func(c *PNG) { c.background = &bg }
}

// PNG is a Canvas producing a raster image.
//
// Like [SVG], draw calls accumulate batches and Bytes performs the actual
// rasterization, so the data-to-pixel transform can be fitted to everything
// drawn. A PNG canvas is single-use.
type PNG struct {
	width, height int
	padding       float64
	viewport      *geom.Rect
	background    *color.RGBA

	lineOps []LineBatch
	gradOps []GradientBatch
	order   []drawKind
}

// NewPNG creates a PNG canvas with the given image size in pixels.
func NewPNG(width, height int, opts ...PNGOption) *PNG {
	c := &PNG{width: width, height: height, padding: 10}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DrawLines implements Canvas.
func (c *PNG) DrawLines(batch LineBatch) (Handle, error) {
	if err := validateLines(batch.Lines); err != nil {
		return Handle{}, err
	}
	c.lineOps = append(c.lineOps, batch)
	c.order = append(c.order, drawLines)
	return newHandle(batch.Label, len(batch.Lines)), nil
}

// DrawGradient implements Canvas.
func (c *PNG) DrawGradient(batch GradientBatch) (Handle, error) {
	if err := validateLines(batch.Curves); err != nil {
		return Handle{}, err
	}
	c.gradOps = append(c.gradOps, batch)
	c.order = append(c.order, drawGradient)
	return newHandle(batch.Label, len(batch.Curves)), nil
}

// Bytes rasterizes the accumulated batches and returns PNG-encoded data.
func (c *PNG) Bytes() ([]byte, error) {
	tr := c.transform()
	dc := gg.NewContext(c.width, c.height)

	if c.background != nil {
		dc.SetColor(*c.background)
		dc.Clear()
	}
	dc.SetLineCapRound()

	li, gi := 0, 0
	for _, kind := range c.order {
		switch kind {
		case drawLines:
			rasterizeLineBatch(dc, c.lineOps[li], tr)
			li++
		case drawGradient:
			rasterizeGradientBatch(dc, c.gradOps[gi], tr)
			gi++
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *PNG) transform() svgTransform {
	s := &SVG{
		width:    float64(c.width),
		height:   float64(c.height),
		padding:  c.padding,
		viewport: c.viewport,
		lineOps:  c.lineOps,
		gradOps:  c.gradOps,
	}
	return s.transform()
}

func rasterizeLineBatch(dc *gg.Context, batch LineBatch, tr svgTransform) {
	dc.SetColor(palette.WithAlpha(batch.Style.Color, opacity(batch.Style.Alpha)))
	dc.SetLineWidth(batch.Style.Width)
	if len(batch.Style.Dash) > 0 {
		dc.SetDash(batch.Style.Dash...)
	} else {
		dc.SetDash()
	}
	for _, line := range batch.Lines {
		strokePolyline(dc, line, tr)
	}
}

func rasterizeGradientBatch(dc *gg.Context, batch GradientBatch, tr svgTransform) {
	dc.SetDash()
	alpha := opacity(batch.Alpha)
	for i, curve := range batch.Curves {
		dc.SetLineWidth(batch.strokeWidth(i))
		segments := len(curve) - 1
		for j := 0; j < segments; j++ {
			t := (float64(j) + 0.5) / float64(segments)
			dc.SetColor(palette.WithAlpha(gradientAt(batch.Source, batch.Target, t), alpha))
			x1, y1 := tr.apply(curve[j])
			x2, y2 := tr.apply(curve[j+1])
			dc.DrawLine(x1, y1, x2, y2)
			dc.Stroke()
		}
	}
}

func strokePolyline(dc *gg.Context, line geom.Polyline, tr svgTransform) {
	x, y := tr.apply(line[0])
	dc.MoveTo(x, y)
	for _, p := range line[1:] {
		x, y = tr.apply(p)
		dc.LineTo(x, y)
	}
	dc.Stroke()
}
