package geom

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		t    float64
		want Point
	}{
		{"Start", Point{0, 0}, Point{10, 0}, 0, Point{0, 0}},
		{"Mid", Point{0, 0}, Point{10, 0}, 0.5, Point{5, 0}},
		{"End", Point{0, 0}, Point{10, 0}, 1, Point{10, 0}},
		{"Diagonal", Point{1, 1}, Point{3, 5}, 0.5, Point{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(tt.p, tt.q, tt.t)
			if got != tt.want {
				t.Errorf("Lerp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewPathClassification(t *testing.T) {
	tests := []struct {
		name   string
		points Polyline
		want   PathKind
	}{
		{"TwoPoints", Polyline{{0, 0}, {1, 1}}, KindSegment},
		{"ThreePoints", Polyline{{0, 0}, {1, 1}, {2, 0}}, KindCurve},
		{"OnePoint", Polyline{{0, 0}}, KindSegment},
		{"Empty", nil, KindSegment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPath(tt.points).Kind; got != tt.want {
				t.Errorf("NewPath().Kind = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResampleSegment(t *testing.T) {
	p := Segment(Point{0, 0}, Point{10, 0})
	got := p.Resample(3)

	want := Polyline{{0, 0}, {5, 0}, {10, 0}}
	if len(got) != len(want) {
		t.Fatalf("Resample() returned %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Resample()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResampleCurveIsIdentity(t *testing.T) {
	curve := NewPath(Polyline{{0, 0}, {2, 3}, {4, 1}, {6, 0}})
	got := curve.Resample(10)

	if len(got) != 4 {
		t.Fatalf("Resample() on curve returned %d points, want 4 (unchanged)", len(got))
	}
	for i, pt := range curve.Points {
		if got[i] != pt {
			t.Errorf("Resample()[%d] = %v, want %v (identity)", i, got[i], pt)
		}
	}
}

func TestPolylineLength(t *testing.T) {
	line := Polyline{{0, 0}, {3, 4}, {3, 8}}
	if got := line.Length(); math.Abs(got-9) > 1e-12 {
		t.Errorf("Length() = %v, want 9", got)
	}
	if got := (Polyline{{1, 1}}).Length(); got != 0 {
		t.Errorf("Length() of single point = %v, want 0", got)
	}
}

func TestBounds(t *testing.T) {
	lines := []Polyline{
		{{0, 0}, {10, 0}},
		{{-2, 5}, {3, -1}},
	}
	r, ok := Bounds(lines)
	if !ok {
		t.Fatal("Bounds() reported no points")
	}
	want := Rect{MinX: -2, MinY: -1, MaxX: 10, MaxY: 5}
	if r != want {
		t.Errorf("Bounds() = %+v, want %+v", r, want)
	}

	if _, ok := Bounds(nil); ok {
		t.Error("Bounds(nil) should report no points")
	}
}
