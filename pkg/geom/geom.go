// Package geom provides the small set of 2D primitives used by the edge
// renderers: points, polylines, and discriminated edge paths.
//
// Edge geometry is represented as a [Path] whose kind is decided once, at
// data-ingestion time: a geometry with exactly two points is a [KindSegment],
// anything longer is a [KindCurve]. Renderers dispatch on the kind instead of
// re-inspecting point counts.
package geom

import "math"

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Lerp returns the point at parameter t on the straight line from p to q.
// t=0 yields p, t=1 yields q. Values outside [0,1] extrapolate.
func Lerp(p, q Point, t float64) Point {
	return Point{
		X: p.X*(1-t) + q.X*t,
		Y: p.Y*(1-t) + q.Y*t,
	}
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Polyline is an ordered sequence of points describing how an edge is drawn.
type Polyline []Point

// Clone returns a copy of the polyline. Modifications to the returned slice
// do not affect the original.
func (p Polyline) Clone() Polyline {
	out := make(Polyline, len(p))
	copy(out, p)
	return out
}

// Length returns the total arc length of the polyline.
// Returns 0 for polylines with fewer than two points.
func (p Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += Dist(p[i-1], p[i])
	}
	return total
}

// PathKind discriminates edge geometry shapes.
type PathKind int

const (
	// KindSegment is a straight 2-point edge. Segments may be resampled into
	// evenly spaced interpolation points by gradient renderers.
	KindSegment PathKind = iota
	// KindCurve is an already-curved geometry with more than two points.
	// Curves are always passed through to renderers unchanged.
	KindCurve
)

// Path is an edge geometry with its shape decided at construction.
// The zero value is an empty segment; use NewPath to classify real geometry.
type Path struct {
	Kind   PathKind
	Points Polyline
}

// NewPath classifies a point sequence into a segment or curve.
// Two points produce a KindSegment; three or more produce a KindCurve.
// A single point or empty input is treated as a degenerate segment.
func NewPath(points Polyline) Path {
	if len(points) > 2 {
		return Path{Kind: KindCurve, Points: points}
	}
	return Path{Kind: KindSegment, Points: points}
}

// Segment constructs a straight path between two endpoints.
func Segment(src, dst Point) Path {
	return Path{Kind: KindSegment, Points: Polyline{src, dst}}
}

// Resample returns the path's geometry with straight segments resampled into
// n evenly spaced points via linear interpolation between the endpoints.
// Curves are returned unchanged (identity), as are segments when n < 2 or the
// segment is degenerate.
func (p Path) Resample(n int) Polyline {
	if p.Kind == KindCurve || n < 2 || len(p.Points) < 2 {
		return p.Points
	}
	src, dst := p.Points[0], p.Points[len(p.Points)-1]
	out := make(Polyline, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		out[i] = Lerp(src, dst, t)
	}
	return out
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Bounds returns the bounding box of all points across the given polylines.
// The second return value is false if no points exist.
func Bounds(lines []Polyline) (Rect, bool) {
	r := Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	found := false
	for _, line := range lines {
		for _, pt := range line {
			found = true
			r.MinX = math.Min(r.MinX, pt.X)
			r.MinY = math.Min(r.MinY, pt.Y)
			r.MaxX = math.Max(r.MaxX, pt.X)
			r.MaxY = math.Max(r.MaxY, pt.Y)
		}
	}
	if !found {
		return Rect{}, false
	}
	return r, true
}
