package network

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/edgeviz/edgeviz/pkg/geom"
)

// Graphviz layout engines accepted by AssignPositions.
const (
	EngineDot   = "dot"   // hierarchical, good for DAG-like networks
	EngineNeato = "neato" // spring model, small graphs
	EngineSFDP  = "sfdp"  // multiscale force-directed, large graphs
	EngineCirco = "circo" // circular layout
)

// validEngines is the set of supported Graphviz engines.
var validEngines = map[string]bool{
	EngineDot:   true,
	EngineNeato: true,
	EngineSFDP:  true,
	EngineCirco: true,
}

// ValidateEngine checks that the engine names a supported Graphviz layout.
func ValidateEngine(engine string) error {
	if !validEngines[engine] {
		return fmt.Errorf("invalid engine: %s (must be 'dot', 'neato', 'sfdp', or 'circo')", engine)
	}
	return nil
}

// AssignPositions delegates node placement to a Graphviz layout engine and
// writes the resulting coordinates back into the network. Straight edge
// geometries are rebuilt from the new positions; explicit curves are kept.
//
// This is used for imported graphs that carry topology but no coordinates.
// The network itself never computes a layout - placement is entirely
// Graphviz's.
func AssignPositions(ctx context.Context, n *Network, engine string) error {
	if err := ValidateEngine(engine); err != nil {
		return err
	}

	dot := toDOT(n, engine)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.XDOT, &buf); err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	positions, err := parsePositions(buf.String(), n.NodeCount())
	if err != nil {
		return err
	}
	for i, p := range positions {
		if err := n.SetPosition(i, p); err != nil {
			return err
		}
	}
	return nil
}

// toDOT serializes the network topology as a DOT digraph. Node names are
// the node indices. The layout graph attribute selects the engine.
func toDOT(n *Network, engine string) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  layout=%s;\n", engine)
	buf.WriteString("  node [shape=point];\n")
	for i := 0; i < n.NodeCount(); i++ {
		fmt.Fprintf(&buf, "  %d;\n", i)
	}
	for _, e := range n.Edges() {
		fmt.Fprintf(&buf, "  %d -> %d;\n", e.Source, e.Target)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// nodeStmtRe matches laid-out node statements of the form `0 [..., pos="x,y", ...];`.
var (
	nodeStmtRe = regexp.MustCompile(`(?m)^\s*(\d+)\s*\[([^\]]*)\]`)
	posAttrRe  = regexp.MustCompile(`pos="(-?[0-9.eE+-]+),(-?[0-9.eE+-]+)"`)
)

// parsePositions extracts node coordinates from xdot output.
// Graphviz wraps long attribute lists with backslash-newlines; those are
// joined before matching. Returns an error if any node is missing a position.
func parsePositions(xdot string, nodeCount int) ([]geom.Point, error) {
	joined := strings.ReplaceAll(xdot, "\\\n", "")

	positions := make([]geom.Point, nodeCount)
	seen := make([]bool, nodeCount)

	for _, m := range nodeStmtRe.FindAllStringSubmatch(joined, -1) {
		id, err := strconv.Atoi(m[1])
		if err != nil || id < 0 || id >= nodeCount {
			continue
		}
		pos := posAttrRe.FindStringSubmatch(m[2])
		if pos == nil {
			continue
		}
		x, errX := strconv.ParseFloat(pos[1], 64)
		y, errY := strconv.ParseFloat(pos[2], 64)
		if errX != nil || errY != nil {
			continue
		}
		positions[id] = geom.Point{X: x, Y: y}
		seen[id] = true
	}

	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("graphviz output missing position for node %d", i)
		}
	}
	return positions, nil
}
