// Package network provides the graph model consumed by the edge renderers.
//
// A [Network] owns node positions and a collection of edges. Each edge
// carries a geometry (a straight segment by default, or an explicit curved
// path), its endpoint node indices, and access to named scalar properties
// stored in per-network property arrays aligned 1:1 with the edge order.
//
// The package also provides JSON import/export and Graphviz-backed position
// assignment for graphs imported without coordinates.
package network

import (
	"errors"
	"sort"

	"github.com/edgeviz/edgeviz/pkg/geom"
)

var (
	// ErrNodeOutOfRange is returned by [Network.AddEdge] when an endpoint
	// index does not refer to a node of the network.
	ErrNodeOutOfRange = errors.New("node index out of range")

	// ErrEdgeOutOfRange is returned by geometry and property accessors when
	// an edge index does not refer to an edge of the network.
	ErrEdgeOutOfRange = errors.New("edge index out of range")

	// ErrPropertyLength is returned by [Network.SetEdgeProperty] when the
	// value array is not aligned 1:1 with the network's edges.
	ErrPropertyLength = errors.New("property values must align with edge count")

	// ErrGeometryEndpoints is returned by [Network.SetEdgeGeometry] when the
	// supplied polyline has fewer than two points.
	ErrGeometryEndpoints = errors.New("edge geometry needs at least two points")
)

// Edge is a directed connection between two node indices.
// Its geometry is classified once at construction: two points make a straight
// segment, more make a curve. Scalar attributes (weight, betweenness, ...)
// live in the owning network's property arrays, keyed by the edge's Index.
type Edge struct {
	Index  int       // Position in the network's edge order
	Source int       // Source node index
	Target int       // Target node index
	Path   geom.Path // Drawn geometry
}

// SourcePoint returns the coordinates of the edge's source endpoint.
func (e Edge) SourcePoint() geom.Point { return e.Path.Points[0] }

// TargetPoint returns the coordinates of the edge's target endpoint.
func (e Edge) TargetPoint() geom.Point { return e.Path.Points[len(e.Path.Points)-1] }

// Network is a node-positioned graph with property-carrying edges.
//
// The zero value is not usable - use New to create a valid instance.
// Network is not safe for concurrent use without external synchronization.
type Network struct {
	positions   []geom.Point
	communities []string // optional, aligned with positions; empty when unset
	edges       []Edge
	props       map[string][]float64
	outgoing    map[int][]int // node index -> target node indices
}

// New creates a network over the given node positions.
// Node identity is positional: node i sits at positions[i]. The position
// slice is copied, so later modifications by the caller do not affect the
// network.
func New(positions []geom.Point) *Network {
	pos := make([]geom.Point, len(positions))
	copy(pos, positions)
	return &Network{
		positions: pos,
		props:     make(map[string][]float64),
		outgoing:  make(map[int][]int),
	}
}

// NodeCount returns the number of nodes in the network.
func (n *Network) NodeCount() int { return len(n.positions) }

// EdgeCount returns the number of edges in the network.
func (n *Network) EdgeCount() int { return len(n.edges) }

// Position returns the coordinates of node i.
// Panics if i is out of range, mirroring slice indexing.
func (n *Network) Position(i int) geom.Point { return n.positions[i] }

// SetPosition moves node i and updates the straight geometry of every
// incident edge. Curved geometries are left untouched - explicit curves are
// the caller's responsibility.
func (n *Network) SetPosition(i int, p geom.Point) error {
	if i < 0 || i >= len(n.positions) {
		return ErrNodeOutOfRange
	}
	n.positions[i] = p
	for idx := range n.edges {
		e := &n.edges[idx]
		if e.Path.Kind != geom.KindSegment {
			continue
		}
		if e.Source == i || e.Target == i {
			e.Path = geom.Segment(n.positions[e.Source], n.positions[e.Target])
		}
	}
	return nil
}

// AddEdge appends a directed edge between two existing nodes and returns its
// index in the edge order. The geometry defaults to a straight segment
// between the endpoint positions; use [Network.SetEdgeGeometry] for curves.
//
// Adding an edge invalidates previously set edge properties only in the
// sense that they no longer align; SetEdgeProperty must be called again
// with a full-length array. Multiple edges between the same nodes are
// allowed, and (a,b) is distinct from (b,a).
func (n *Network) AddEdge(source, target int) (int, error) {
	if source < 0 || source >= len(n.positions) || target < 0 || target >= len(n.positions) {
		return 0, ErrNodeOutOfRange
	}
	idx := len(n.edges)
	n.edges = append(n.edges, Edge{
		Index:  idx,
		Source: source,
		Target: target,
		Path:   geom.Segment(n.positions[source], n.positions[target]),
	})
	n.outgoing[source] = append(n.outgoing[source], target)
	return idx, nil
}

// SetEdgeGeometry replaces the drawn geometry of edge i with an explicit
// polyline. The shape is re-classified: two points keep the edge straight,
// more turn it into a curve.
func (n *Network) SetEdgeGeometry(i int, points geom.Polyline) error {
	if i < 0 || i >= len(n.edges) {
		return ErrEdgeOutOfRange
	}
	if len(points) < 2 {
		return ErrGeometryEndpoints
	}
	n.edges[i].Path = geom.NewPath(points.Clone())
	return nil
}

// Edges returns a copy of the edge collection in insertion order.
// Modifying the returned slice does not affect the network, though the
// geometry point slices are shared.
func (n *Network) Edges() []Edge {
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)
	return out
}

// Edge returns the edge at index i and true, or a zero edge and false.
func (n *Network) Edge(i int) (Edge, bool) {
	if i < 0 || i >= len(n.edges) {
		return Edge{}, false
	}
	return n.edges[i], true
}

// SetEdgeProperty stores a named scalar array aligned 1:1 with the edges.
// The values slice is copied. Returns ErrPropertyLength if the array does
// not match the current edge count.
func (n *Network) SetEdgeProperty(name string, values []float64) error {
	if len(values) != len(n.edges) {
		return ErrPropertyLength
	}
	vals := make([]float64, len(values))
	copy(vals, values)
	n.props[name] = vals
	return nil
}

// EdgeProperty returns the named property array and true, or nil and false
// if the property has not been set. The returned slice is the live backing
// array; treat it as read-only.
func (n *Network) EdgeProperty(name string) ([]float64, bool) {
	v, ok := n.props[name]
	return v, ok
}

// HasEdgeProperty reports whether the named property has been set.
func (n *Network) HasEdgeProperty(name string) bool {
	_, ok := n.props[name]
	return ok
}

// PropertyNames returns the names of all set edge properties, sorted.
func (n *Network) PropertyNames() []string {
	names := make([]string, 0, len(n.props))
	for name := range n.props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCommunities assigns a community label to every node. The array must be
// aligned with the node ordering. Pass nil to clear.
func (n *Network) SetCommunities(labels []string) error {
	if labels == nil {
		n.communities = nil
		return nil
	}
	if len(labels) != len(n.positions) {
		return ErrPropertyLength
	}
	n.communities = make([]string, len(labels))
	copy(n.communities, labels)
	return nil
}

// Communities returns the node community labels, or nil when unset.
// The returned slice is the live backing array; treat it as read-only.
func (n *Network) Communities() []string { return n.communities }
