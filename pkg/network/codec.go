package network

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/edgeviz/edgeviz/pkg/geom"
)

// Document is the canonical serialization format for networks.
// Used for file import/export, the render service, and caching.
//
// The format is human-readable and designed for round-trip fidelity:
// import → transform → export → re-import produces identical results.
type Document struct {
	Nodes []NodeJSON `json:"nodes"`
	Edges []EdgeJSON `json:"edges"`
}

// NodeJSON is a serialized node: a position with an optional community label.
// Nodes are identified positionally; the edge endpoints below index into
// this array.
type NodeJSON struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Community string  `json:"community,omitempty"`
}

// EdgeJSON is a serialized directed edge. Points, when present, describe a
// curved geometry as [x, y] pairs; absent points mean a straight segment
// between the endpoint positions. Weight is optional.
type EdgeJSON struct {
	Source int         `json:"source"`
	Target int         `json:"target"`
	Weight *float64    `json:"weight,omitempty"`
	Points [][]float64 `json:"points,omitempty"`
}

// ToNetwork builds a Network from its serialized form.
// Edge weights, when present on any edge, become the "weight" edge property;
// edges without an explicit weight default to 0. Node communities, when
// present on any node, are stored as the community label array (missing
// labels stay empty). Returns an error for out-of-range endpoints or
// malformed geometry points.
func ToNetwork(doc Document) (*Network, error) {
	positions := make([]geom.Point, len(doc.Nodes))
	for i, nj := range doc.Nodes {
		positions[i] = geom.Point{X: nj.X, Y: nj.Y}
	}
	n := New(positions)

	var weights []float64
	hasWeights := false

	for i, ej := range doc.Edges {
		idx, err := n.AddEdge(ej.Source, ej.Target)
		if err != nil {
			return nil, fmt.Errorf("add edge %d→%d: %w", ej.Source, ej.Target, err)
		}
		if len(ej.Points) > 0 {
			points, err := decodePoints(ej.Points)
			if err != nil {
				return nil, fmt.Errorf("edge %d geometry: %w", i, err)
			}
			if err := n.SetEdgeGeometry(idx, points); err != nil {
				return nil, fmt.Errorf("edge %d geometry: %w", i, err)
			}
		}
		if ej.Weight != nil {
			hasWeights = true
			weights = append(weights, *ej.Weight)
		} else {
			weights = append(weights, 0)
		}
	}

	if hasWeights {
		if err := n.SetEdgeProperty(PropWeight, weights); err != nil {
			return nil, err
		}
	}

	if communities := collectCommunities(doc.Nodes); communities != nil {
		if err := n.SetCommunities(communities); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// FromNetwork converts a Network to its serialization format.
// The "weight" edge property, when set, is emitted per edge. Curved
// geometries are emitted as point arrays; straight segments are omitted
// since they are reconstructed from the endpoint positions.
func FromNetwork(n *Network) Document {
	doc := Document{
		Nodes: make([]NodeJSON, n.NodeCount()),
		Edges: make([]EdgeJSON, 0, n.EdgeCount()),
	}

	communities := n.Communities()
	for i := range doc.Nodes {
		p := n.Position(i)
		doc.Nodes[i] = NodeJSON{X: p.X, Y: p.Y}
		if communities != nil {
			doc.Nodes[i].Community = communities[i]
		}
	}

	weights, hasWeights := n.EdgeProperty(PropWeight)
	for _, e := range n.Edges() {
		ej := EdgeJSON{Source: e.Source, Target: e.Target}
		if hasWeights {
			w := weights[e.Index]
			ej.Weight = &w
		}
		if e.Path.Kind == geom.KindCurve {
			ej.Points = encodePoints(e.Path.Points)
		}
		doc.Edges = append(doc.Edges, ej)
	}

	return doc
}

// UnmarshalDocument deserializes JSON bytes to a Document.
func UnmarshalDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// ReadFile loads a network from a JSON file.
func ReadFile(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := UnmarshalDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return ToNetwork(doc)
}

// WriteFile serializes a network to a JSON file with indentation.
func WriteFile(n *Network, path string) error {
	data, err := json.MarshalIndent(FromNetwork(n), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func decodePoints(raw [][]float64) (geom.Polyline, error) {
	points := make(geom.Polyline, len(raw))
	for i, pair := range raw {
		if len(pair) != 2 {
			return nil, fmt.Errorf("point %d: want [x, y], got %d values", i, len(pair))
		}
		points[i] = geom.Point{X: pair[0], Y: pair[1]}
	}
	return points, nil
}

func encodePoints(points geom.Polyline) [][]float64 {
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = []float64{p.X, p.Y}
	}
	return out
}

// collectCommunities extracts node community labels, returning nil when no
// node carries one.
func collectCommunities(nodes []NodeJSON) []string {
	any := false
	labels := make([]string, len(nodes))
	for i, nj := range nodes {
		labels[i] = nj.Community
		if nj.Community != "" {
			any = true
		}
	}
	if !any {
		return nil
	}
	return labels
}
