package edges

import (
	"strings"
	"testing"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/network"
	"github.com/edgeviz/edgeviz/pkg/render/canvas"
)

// lineNetwork builds 0 -> 1 -> 2 -> 3 on a horizontal line.
func lineNetwork(t *testing.T) *network.Network {
	t.Helper()
	n := network.New([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}})
	for i := 0; i < 3; i++ {
		if _, err := n.AddEdge(i, i+1); err != nil {
			t.Fatalf("AddEdge(%d, %d) error = %v", i, i+1, err)
		}
	}
	return n
}

func TestPlainCoversEveryEdge(t *testing.T) {
	n := lineNetwork(t)
	s := NewPlain(n)
	if err := s.PrepareData(); err != nil {
		t.Fatalf("PrepareData() error = %v", err)
	}
	if got := len(s.Lines()); got != n.EdgeCount() {
		t.Errorf("prepared %d lines, want %d", got, n.EdgeCount())
	}

	surface := canvas.NewSVG(100, 100)
	handles, err := s.Render(surface)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(handles) != 1 {
		t.Fatalf("Render() returned %d handles, want 1", len(handles))
	}
	if handles[0].Count != n.EdgeCount() {
		t.Errorf("handle count = %d, want %d", handles[0].Count, n.EdgeCount())
	}
	if handles[0].Label != NamePlain {
		t.Errorf("handle label = %q, want %q", handles[0].Label, NamePlain)
	}
}

func TestPlainStyleOptions(t *testing.T) {
	n := lineNetwork(t)
	s := NewPlain(n)
	if err := s.PrepareData(); err != nil {
		t.Fatalf("PrepareData() error = %v", err)
	}

	surface := canvas.NewSVG(100, 100)
	_, err := s.Render(surface, WithColor("#123456"), WithLineStyle("dashed"), WithAlpha(0.5))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := string(surface.Bytes())
	if !strings.Contains(out, `stroke="#123456"`) {
		t.Error("output missing custom stroke color")
	}
	if !strings.Contains(out, `stroke-dasharray="6,4"`) {
		t.Error("output missing dash pattern")
	}
}

func TestRenderBeforePrepare(t *testing.T) {
	n := lineNetwork(t)
	if err := n.SetCommunities([]string{"a", "a", "b", "b"}); err != nil {
		t.Fatalf("SetCommunities() error = %v", err)
	}
	community, err := NewCommunityGradient(n, n.Communities())
	if err != nil {
		t.Fatalf("NewCommunityGradient() error = %v", err)
	}

	strategies := []Strategy{
		NewPlain(n),
		NewWeighted(n, NoWeights(), 2),
		community,
		NewODGradient(n, 10),
	}
	for _, s := range strategies {
		_, err := s.Render(canvas.NewSVG(10, 10))
		if !errors.Is(err, errors.ErrCodeNotPrepared) {
			t.Errorf("%s: Render before PrepareData = %v, want ErrCodeNotPrepared", s.Name(), err)
		}
	}
}

func TestWeightedEqualWidthBins(t *testing.T) {
	n := lineNetwork(t)
	if _, err := n.AddEdge(3, 0); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}

	s := NewWeighted(n, WeightsFromValues([]float64{1, 2, 3, 4}), 2)
	if err := s.PrepareData(); err != nil {
		t.Fatalf("PrepareData() error = %v", err)
	}

	wantGroups := []int{0, 0, 1, 1}
	for i, g := range s.Groups() {
		if g != wantGroups[i] {
			t.Errorf("Groups()[%d] = %d, want %d", i, g, wantGroups[i])
		}
	}
	edges := s.BinEdges()
	if len(edges) != 3 {
		t.Fatalf("BinEdges() has %d entries, want 3", len(edges))
	}
	if edges[0] != 1 || edges[1] != 2.5 || edges[2] != 4 {
		t.Errorf("BinEdges() = %v, want [1 2.5 4]", edges)
	}
}

func TestWeightedEmptyBinStillRendered(t *testing.T) {
	n := lineNetwork(t)
	s := NewWeighted(n, WeightsFromValues([]float64{1, 1, 10}), 3)
	if err := s.PrepareData(); err != nil {
		t.Fatalf("PrepareData() error = %v", err)
	}

	surface := canvas.NewSVG(100, 100)
	handles, err := s.Render(surface)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(handles) != 3 {
		t.Fatalf("Render() returned %d handles, want 3", len(handles))
	}
	if handles[0].Count != 2 || handles[1].Count != 0 || handles[2].Count != 1 {
		t.Errorf("batch counts = [%d %d %d], want [2 0 1]",
			handles[0].Count, handles[1].Count, handles[2].Count)
	}
}

func TestWeightedPropertyResolution(t *testing.T) {
	tests := []struct {
		name     string
		source   WeightSource
		wantCode errors.Code
	}{
		{"unknown property", WeightsFromProperty("flux"), errors.ErrCodeInvalidWeightsRef},
		{"misaligned values", WeightsFromValues([]float64{1}), errors.ErrCodeInvalidWeightsType},
		{"known property", WeightsFromProperty("capacity"), ""},
		{"betweenness fallback", NoWeights(), ""},
		{"betweenness by name", WeightsFromProperty(network.PropBetweenness), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := lineNetwork(t)
			if err := n.SetEdgeProperty("capacity", []float64{3, 1, 2}); err != nil {
				t.Fatalf("SetEdgeProperty() error = %v", err)
			}

			s := NewWeighted(n, tt.source, 2)
			err := s.PrepareData()
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("PrepareData() = %v, want code %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("PrepareData() error = %v", err)
			}
			if got := len(s.Weights()); got != n.EdgeCount() {
				t.Errorf("resolved %d weights, want %d", got, n.EdgeCount())
			}
		})
	}
}

func TestWeightedRejectsNonFiniteValues(t *testing.T) {
	n := lineNetwork(t)
	bad := []float64{1, 2, nan()}
	s := NewWeighted(n, WeightsFromValues(bad), 2)
	if err := s.PrepareData(); !errors.Is(err, errors.ErrCodeInvalidWeightsType) {
		t.Errorf("PrepareData() = %v, want ErrCodeInvalidWeightsType", err)
	}
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestWeightedBinCountValidation(t *testing.T) {
	n := lineNetwork(t)
	s := NewWeighted(n, NoWeights(), 0)
	if err := s.PrepareData(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("PrepareData() with k=0 = %v, want ErrCodeInvalidInput", err)
	}
}

func TestWeightedUniformWeightsSingleBin(t *testing.T) {
	n := lineNetwork(t)
	s := NewWeighted(n, WeightsFromValues([]float64{5, 5, 5}), 4)
	if err := s.PrepareData(); err != nil {
		t.Fatalf("PrepareData() error = %v", err)
	}
	for i, g := range s.Groups() {
		if g != 0 {
			t.Errorf("Groups()[%d] = %d, want 0 for degenerate range", i, g)
		}
	}
}

func TestCommunityOrderedPairs(t *testing.T) {
	n := network.New([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if _, err := n.AddEdge(0, 1); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}
	if _, err := n.AddEdge(1, 0); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}

	s, err := NewCommunityGradient(n, []string{"A", "B"})
	if err != nil {
		t.Fatalf("NewCommunityGradient() error = %v", err)
	}
	if err := s.PrepareData(); err != nil {
		t.Fatalf("PrepareData() error = %v", err)
	}

	keys := s.GroupKeys()
	if len(keys) != 2 {
		t.Fatalf("GroupKeys() has %d entries, want 2: direction must split groups", len(keys))
	}
	if keys[0] != (PairKey{Source: "A", Target: "B"}) || keys[1] != (PairKey{Source: "B", Target: "A"}) {
		t.Errorf("GroupKeys() = %v, want [A->B B->A]", keys)
	}
	for _, key := range keys {
		coll, ok := s.Group(key)
		if !ok || coll.Len() != 1 {
			t.Errorf("Group(%v) missing or wrong size", key)
		}
	}
}

func TestCommunityLabelAlignment(t *testing.T) {
	n := network.New([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	_, err := NewCommunityGradient(n, []string{"A"})
	if !errors.Is(err, errors.ErrCodeInvalidCommunities) {
		t.Errorf("NewCommunityGradient() = %v, want ErrCodeInvalidCommunities", err)
	}
}

func TestCommunityRenderOneBatchPerPair(t *testing.T) {
	n := lineNetwork(t)
	s, err := NewCommunityGradient(n, []string{"a", "a", "b", "b"})
	if err != nil {
		t.Fatalf("NewCommunityGradient() error = %v", err)
	}
	if err := s.PrepareData(); err != nil {
		t.Fatalf("PrepareData() error = %v", err)
	}

	surface := canvas.NewSVG(100, 100)
	handles, err := s.Render(surface)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	// Pairs present: a->a (edge 0-1), a->b (edge 1-2), b->b (edge 2-3).
	if len(handles) != 3 {
		t.Fatalf("Render() returned %d handles, want 3", len(handles))
	}
	out := string(surface.Bytes())
	for _, label := range []string{"a->a", "a->b", "b->b"} {
		if !strings.Contains(out, label) {
			t.Errorf("output missing batch label for pair %s", label)
		}
	}
}

func TestCommunityUnknownPalette(t *testing.T) {
	n := lineNetwork(t)
	s, err := NewCommunityGradient(n, []string{"a", "a", "b", "b"})
	if err != nil {
		t.Fatalf("NewCommunityGradient() error = %v", err)
	}
	if err := s.PrepareData(); err != nil {
		t.Fatalf("PrepareData() error = %v", err)
	}
	_, err = s.Render(canvas.NewSVG(10, 10), WithPalette("nope"))
	if !errors.Is(err, errors.ErrCodeInvalidPalette) {
		t.Errorf("Render() = %v, want ErrCodeInvalidPalette", err)
	}
}

func TestODResamplesStraightEdges(t *testing.T) {
	n := network.New([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	if _, err := n.AddEdge(0, 1); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}

	s := NewODGradient(n, 5)
	if err := s.PrepareData(); err != nil {
		t.Fatalf("PrepareData() error = %v", err)
	}

	cs := s.Curves().Curves()
	if len(cs) != 1 {
		t.Fatalf("prepared %d curves, want 1", len(cs))
	}
	if len(cs[0]) != 5 {
		t.Fatalf("resampled curve has %d points, want 5", len(cs[0]))
	}
	for i, want := range []float64{0, 2.5, 5, 7.5, 10} {
		if cs[0][i].X != want || cs[0][i].Y != 0 {
			t.Errorf("point %d = %v, want (%g, 0)", i, cs[0][i], want)
		}
	}
}

func TestODCurvesPassThrough(t *testing.T) {
	n := network.New([]geom.Point{{X: 0, Y: 0}, {X: 3, Y: 0}})
	if _, err := n.AddEdge(0, 1); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}
	bend := geom.Polyline{{X: 0, Y: 0}, {X: 1.5, Y: 2}, {X: 3, Y: 0}}
	if err := n.SetEdgeGeometry(0, bend); err != nil {
		t.Fatalf("SetEdgeGeometry() error = %v", err)
	}

	s := NewODGradient(n, 50)
	if err := s.PrepareData(); err != nil {
		t.Fatalf("PrepareData() error = %v", err)
	}
	cs := s.Curves().Curves()
	if len(cs[0]) != len(bend) {
		t.Errorf("curved edge resampled to %d points, want untouched %d", len(cs[0]), len(bend))
	}
}

func TestODSampleCountValidation(t *testing.T) {
	n := lineNetwork(t)
	s := NewODGradient(n, 1)
	if err := s.PrepareData(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("PrepareData() with nPoints=1 = %v, want ErrCodeInvalidInput", err)
	}
}

func TestODRenderSingleGradientBatch(t *testing.T) {
	n := lineNetwork(t)
	s := NewODGradient(n, 4)
	if err := s.PrepareData(); err != nil {
		t.Fatalf("PrepareData() error = %v", err)
	}

	surface := canvas.NewSVG(100, 100)
	handles, err := s.Render(surface, WithSourceColor("#0000ff"), WithTargetColor("#ff0000"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(handles) != 1 {
		t.Fatalf("Render() returned %d handles, want 1", len(handles))
	}
	if handles[0].Count != n.EdgeCount() {
		t.Errorf("handle count = %d, want %d", handles[0].Count, n.EdgeCount())
	}
}

func TestRenderTwiceSameState(t *testing.T) {
	n := lineNetwork(t)
	s := NewPlain(n)
	if err := s.PrepareData(); err != nil {
		t.Fatalf("PrepareData() error = %v", err)
	}

	h1, err := s.Render(canvas.NewSVG(10, 10))
	if err != nil {
		t.Fatalf("first Render() error = %v", err)
	}
	h2, err := s.Render(canvas.NewSVG(10, 10))
	if err != nil {
		t.Fatalf("second Render() error = %v", err)
	}
	if h1[0].Count != h2[0].Count {
		t.Errorf("repeat render drew %d lines, want %d", h2[0].Count, h1[0].Count)
	}
}
