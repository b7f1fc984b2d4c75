package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/network"
)

func previewNetwork(t *testing.T) *network.Network {
	t.Helper()
	n := network.New([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
	for _, e := range [][2]int{{0, 1}, {1, 2}} {
		if _, err := n.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("add edge: %v", err)
		}
	}
	return n
}

func TestRenderProducesPage(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(previewNetwork(t), &buf, Options{Title: "test net"}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	html := buf.String()
	if !strings.Contains(html, "echarts") {
		t.Error("output is not an echarts page")
	}
	if !strings.Contains(html, "test net") {
		t.Error("page title not applied")
	}
}

func TestBuildGraphFixedPositions(t *testing.T) {
	n := previewNetwork(t)
	var o Options
	o.setDefaults()

	graph := buildGraph(n, o)
	if len(graph.MultiSeries) != 1 {
		t.Fatalf("series = %d, want 1", len(graph.MultiSeries))
	}

	nodes, ok := graph.MultiSeries[0].Data.([]opts.GraphNode)
	if !ok {
		t.Fatalf("unexpected series data type %T", graph.MultiSeries[0].Data)
	}
	if len(nodes) != 3 {
		t.Fatalf("nodes = %d, want 3", len(nodes))
	}
	// ECharts y grows downward, so positions are flipped.
	if nodes[2].X != 10 || nodes[2].Y != -10 {
		t.Errorf("node 2 at (%v, %v), want (10, -10)", nodes[2].X, nodes[2].Y)
	}
}

func TestCommunityCategoriesSorted(t *testing.T) {
	n := previewNetwork(t)
	if err := n.SetCommunities([]string{"b", "a", "b"}); err != nil {
		t.Fatalf("set communities: %v", err)
	}

	categories, index := communityCategories(n)
	if len(categories) != 2 {
		t.Fatalf("categories = %d, want 2", len(categories))
	}
	if categories[0].Name != "a" || categories[1].Name != "b" {
		t.Errorf("category order = [%s, %s]", categories[0].Name, categories[1].Name)
	}
	if index["a"] != 0 || index["b"] != 1 {
		t.Errorf("index = %v", index)
	}
}

func TestCommunityCategoriesAbsent(t *testing.T) {
	categories, index := communityCategories(previewNetwork(t))
	if categories != nil || index != nil {
		t.Errorf("expected nil categories for unlabeled network, got %v / %v", categories, index)
	}
}

func TestRenderEdgeWeightsAsLinkValues(t *testing.T) {
	n := previewNetwork(t)
	if err := n.SetEdgeProperty(network.PropWeight, []float64{2, 5}); err != nil {
		t.Fatalf("set weights: %v", err)
	}

	var buf bytes.Buffer
	if err := Render(n, &buf, Options{}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"value":5`) {
		t.Error("edge weight not serialized into link value")
	}
}
