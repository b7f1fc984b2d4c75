// Package preview renders an interactive HTML view of a network using
// Apache ECharts. Unlike the canvas renderers it does not draw the edge
// strategies; it serves as a quick structural check of positions, edges,
// and communities before committing to an SVG or PNG render.
package preview

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/edgeviz/edgeviz/pkg/network"
)

// Options controls the preview page.
type Options struct {
	Title    string
	Width    string // CSS size, e.g. "100vw"
	Height   string
	NodeSize float64
}

func (o *Options) setDefaults() {
	if o.Title == "" {
		o.Title = "edgeviz preview"
	}
	if o.Width == "" {
		o.Width = "100vw"
	}
	if o.Height == "" {
		o.Height = "100vh"
	}
	if o.NodeSize == 0 {
		o.NodeSize = 6
	}
}

// Render writes an HTML page visualizing the network to w.
func Render(n *network.Network, w io.Writer, o Options) error {
	o.setDefaults()

	page := components.NewPage()
	page.AddCharts(buildGraph(n, o))
	return page.Render(w)
}

// buildGraph converts the network to an ECharts graph series with fixed
// positions. ECharts y grows downward, so coordinates are flipped.
func buildGraph(n *network.Network, o Options) *charts.Graph {
	categories, categoryIndex := communityCategories(n)

	nodes := make([]opts.GraphNode, n.NodeCount())
	communities := n.Communities()
	for i := range nodes {
		p := n.Position(i)
		nodes[i] = opts.GraphNode{
			Name:       fmt.Sprintf("%d", i),
			X:          float32(p.X),
			Y:          float32(-p.Y),
			SymbolSize: float32(o.NodeSize),
		}
		if communities != nil {
			nodes[i].Category = categoryIndex[communities[i]]
		}
	}

	weights, hasWeights := n.EdgeProperty(network.PropWeight)
	links := make([]opts.GraphLink, 0, n.EdgeCount())
	for _, e := range n.Edges() {
		link := opts.GraphLink{
			Source: fmt.Sprintf("%d", e.Source),
			Target: fmt.Sprintf("%d", e.Target),
		}
		if hasWeights {
			link.Value = float32(weights[e.Index])
		}
		links = append(links, link)
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Width:     o.Width,
			Height:    o.Height,
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(len(categories) > 0),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)
	graph.AddSeries(
		"network",
		nodes,
		links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout:     "none",
			Roam:       opts.Bool(true),
			Categories: categories,
			EdgeSymbol: []string{"none", "arrow"},
		}),
	)
	return graph
}

// communityCategories builds one ECharts category per distinct community
// label, sorted for stable legend order.
func communityCategories(n *network.Network) ([]*opts.GraphCategory, map[string]int) {
	labels := n.Communities()
	if labels == nil {
		return nil, nil
	}
	seen := make(map[string]bool)
	var ids []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			ids = append(ids, l)
		}
	}
	sort.Strings(ids)

	categories := make([]*opts.GraphCategory, len(ids))
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		categories[i] = &opts.GraphCategory{Name: id}
		index[id] = i
	}
	return categories, index
}
