package canvas

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/geom"
)

func TestSVGRendersPolylines(t *testing.T) {
	c := NewSVG(200, 100, WithViewport(geom.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}), WithPadding(0))

	_, err := c.DrawLines(LineBatch{
		Label: "plain",
		Lines: []geom.Polyline{{{X: 0, Y: 0}, {X: 10, Y: 10}}},
		Style: LineStyle{Color: color.RGBA{0xab, 0xac, 0xab, 0xff}, Width: 1, Alpha: 0.75},
	})
	if err != nil {
		t.Fatalf("DrawLines() error = %v", err)
	}

	out := string(c.Bytes())
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("output missing svg header")
	}
	if !strings.Contains(out, `stroke="#abacab"`) {
		t.Error("output missing stroke color")
	}
	if !strings.Contains(out, `stroke-opacity="0.750"`) {
		t.Error("output missing stroke opacity")
	}
	// Y axis flips: data (0,0) maps to pixel (0,100), data (10,10) to (200,0).
	if !strings.Contains(out, `points="0.00,100.00 200.00,0.00"`) {
		t.Errorf("unexpected point mapping in output:\n%s", out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Error("output not terminated")
	}
}

func TestSVGDashAndBackground(t *testing.T) {
	c := NewSVG(100, 100, WithBackground(color.RGBA{0x1e, 0x1e, 0x2e, 0xff}))
	_, err := c.DrawLines(LineBatch{
		Lines: []geom.Polyline{{{X: 0, Y: 0}, {X: 1, Y: 0}}},
		Style: LineStyle{Color: color.RGBA{A: 0xff}, Width: 1, Dash: DashPattern("dashed")},
	})
	if err != nil {
		t.Fatalf("DrawLines() error = %v", err)
	}

	out := string(c.Bytes())
	if !strings.Contains(out, `<rect width="100%" height="100%" fill="#1e1e2e"/>`) {
		t.Error("output missing background rect")
	}
	if !strings.Contains(out, `stroke-dasharray="6,4"`) {
		t.Error("output missing dash pattern")
	}
}

func TestSVGGradientSegments(t *testing.T) {
	c := NewSVG(100, 100, WithPadding(0), WithViewport(geom.Rect{MaxX: 10, MaxY: 10}))

	_, err := c.DrawGradient(GradientBatch{
		Label:  "od",
		Curves: []geom.Polyline{{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}}},
		Source: color.RGBA{0, 0, 255, 255},
		Target: color.RGBA{255, 0, 0, 255},
		Width:  1,
		Alpha:  1,
	})
	if err != nil {
		t.Fatalf("DrawGradient() error = %v", err)
	}

	out := string(c.Bytes())
	// A 3-point curve becomes two <line> segments with interpolated colors.
	if got := strings.Count(out, "<line "); got != 2 {
		t.Errorf("gradient segment count = %d, want 2", got)
	}
	// Midpoint parameters 0.25 and 0.75 blend toward source and target.
	if !strings.Contains(out, `stroke="#4000bf"`) || !strings.Contains(out, `stroke="#bf0040"`) {
		t.Errorf("gradient colors not interpolated:\n%s", out)
	}
}

func TestSVGMalformedGeometry(t *testing.T) {
	c := NewSVG(100, 100)
	_, err := c.DrawLines(LineBatch{Lines: []geom.Polyline{{{X: 1, Y: 1}}}})
	if err != ErrMalformedGeometry {
		t.Errorf("DrawLines(single point) = %v, want ErrMalformedGeometry", err)
	}
	_, err = c.DrawGradient(GradientBatch{Curves: []geom.Polyline{{}}})
	if err != ErrMalformedGeometry {
		t.Errorf("DrawGradient(empty) = %v, want ErrMalformedGeometry", err)
	}
}

func TestSVGAutoViewport(t *testing.T) {
	c := NewSVG(110, 110, WithPadding(5))
	_, err := c.DrawLines(LineBatch{
		Lines: []geom.Polyline{{{X: -10, Y: -10}, {X: 10, Y: 10}}},
		Style: LineStyle{Color: color.RGBA{A: 0xff}, Width: 1},
	})
	if err != nil {
		t.Fatalf("DrawLines() error = %v", err)
	}
	out := string(c.Bytes())
	// Fitted viewport maps the extremes to the padded corners.
	if !strings.Contains(out, `points="5.00,105.00 105.00,5.00"`) {
		t.Errorf("auto viewport mapping wrong:\n%s", out)
	}
}

func TestPNGProducesImage(t *testing.T) {
	c := NewPNG(50, 50, WithPNGBackground(color.RGBA{255, 255, 255, 255}))
	_, err := c.DrawLines(LineBatch{
		Lines: []geom.Polyline{{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		Style: LineStyle{Color: color.RGBA{0, 0, 0, 255}, Width: 2},
	})
	if err != nil {
		t.Fatalf("DrawLines() error = %v", err)
	}

	data, err := c.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output missing PNG signature")
	}
}
