package canvas

import (
	"image/color"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/geom"
)

func TestDashPattern(t *testing.T) {
	tests := []struct {
		style string
		want  int
	}{
		{"solid", 0},
		{"dashed", 2},
		{"dotted", 2},
		{"unknown", 0},
	}
	for _, tt := range tests {
		if got := DashPattern(tt.style); len(got) != tt.want {
			t.Errorf("DashPattern(%q) has %d entries, want %d", tt.style, len(got), tt.want)
		}
	}
}

func TestGradientAt(t *testing.T) {
	src := color.RGBA{0, 0, 0, 255}
	dst := color.RGBA{200, 100, 50, 255}

	if got := gradientAt(src, dst, 0); got != src {
		t.Errorf("gradientAt(0) = %v, want source", got)
	}
	if got := gradientAt(src, dst, 1); got != dst {
		t.Errorf("gradientAt(1) = %v, want target", got)
	}
	mid := gradientAt(src, dst, 0.5)
	if mid.R != 100 || mid.G != 50 || mid.B != 25 {
		t.Errorf("gradientAt(0.5) = %v, want {100 50 25 255}", mid)
	}
}

func TestStrokeWidth(t *testing.T) {
	batch := GradientBatch{
		Width:       1.5,
		Weights:     []float64{0, 2},
		WeightScale: 0.5,
	}
	if got := batch.strokeWidth(0); got != 1.5 {
		t.Errorf("strokeWidth(0) = %v, want 1.5", got)
	}
	if got := batch.strokeWidth(1); got != 2.5 {
		t.Errorf("strokeWidth(1) = %v, want 2.5", got)
	}

	uniform := GradientBatch{Width: 2, Weights: []float64{5, 9}}
	if got := uniform.strokeWidth(1); got != 2 {
		t.Errorf("strokeWidth with zero scale = %v, want 2", got)
	}
}

func TestValidateLines(t *testing.T) {
	ok := []geom.Polyline{{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	if err := validateLines(ok); err != nil {
		t.Errorf("validateLines(ok) = %v, want nil", err)
	}
	bad := []geom.Polyline{{{X: 0, Y: 0}}}
	if err := validateLines(bad); err != ErrMalformedGeometry {
		t.Errorf("validateLines(bad) = %v, want ErrMalformedGeometry", err)
	}
}

func TestHandleIdentity(t *testing.T) {
	c := NewSVG(100, 100)
	line := geom.Polyline{{X: 0, Y: 0}, {X: 1, Y: 1}}

	h1, err := c.DrawLines(LineBatch{Label: "a", Lines: []geom.Polyline{line}})
	if err != nil {
		t.Fatalf("DrawLines() error = %v", err)
	}
	h2, err := c.DrawLines(LineBatch{Label: "b", Lines: []geom.Polyline{line, line}})
	if err != nil {
		t.Fatalf("DrawLines() error = %v", err)
	}

	if h1.ID == h2.ID {
		t.Error("handles should have distinct IDs")
	}
	if h1.Label != "a" || h2.Label != "b" {
		t.Errorf("labels = %q, %q, want a, b", h1.Label, h2.Label)
	}
	if h1.Count != 1 || h2.Count != 2 {
		t.Errorf("counts = %d, %d, want 1, 2", h1.Count, h2.Count)
	}
}
