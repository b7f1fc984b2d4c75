package edges

import (
	"fmt"
	"image/color"
	"math"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/network"
	"github.com/edgeviz/edgeviz/pkg/render/canvas"
	"github.com/edgeviz/edgeviz/pkg/render/palette"
)

// defaultWeightedBase is the ramp endpoint when no base color is given.
const defaultWeightedBase = "#a7a7a7"

// WeightSource names where the weighted strategy takes its per-edge
// weights from: a named edge property, an explicit value slice, or
// nothing at all, in which case edge betweenness is estimated from the
// topology.
type WeightSource struct {
	property string
	values   []float64
}

// WeightsFromProperty resolves weights from a named edge property at
// prepare time. The special name "betweenness" is computed on demand when
// the network does not carry it.
func WeightsFromProperty(name string) WeightSource {
	return WeightSource{property: name}
}

// WeightsFromValues supplies explicit per-edge weights. The slice must
// align one-to-one with the network's edges.
func WeightsFromValues(values []float64) WeightSource {
	return WeightSource{values: values}
}

// NoWeights requests the betweenness fallback.
func NoWeights() WeightSource { return WeightSource{} }

// Weighted partitions edges into k equal-width weight bins and draws one
// batch per bin, colored along a dark-to-light ramp or a named palette.
// Bin 0 holds the lightest weights and gets the darkest color.
type Weighted struct {
	net     *network.Network
	weights WeightSource
	k       int

	lines    []geom.Polyline
	resolved []float64 // per-edge weights after source resolution
	groups   []int     // per-edge bin index in [0, k)
	binEdges []float64 // k+1 ascending boundaries
}

// NewWeighted binds a weighted strategy to a network with a weight source
// and a bin count.
func NewWeighted(net *network.Network, weights WeightSource, k int) *Weighted {
	return &Weighted{net: net, weights: weights, k: k}
}

// Name implements Strategy.
func (w *Weighted) Name() string { return NameWeighted }

// PrepareData resolves the weight source, validates it against the edge
// collection, and partitions the edges into equal-width bins.
func (w *Weighted) PrepareData() error {
	if err := errors.ValidateBinCount(w.k); err != nil {
		return err
	}
	resolved, err := w.resolveWeights()
	if err != nil {
		return err
	}

	groups, binEdges := partitionEqualWidth(resolved, w.k)
	w.lines = collectLines(w.net)
	w.resolved = resolved
	w.groups = groups
	w.binEdges = binEdges
	return nil
}

// resolveWeights turns the configured source into one weight per edge.
func (w *Weighted) resolveWeights() ([]float64, error) {
	if w.weights.values != nil {
		if len(w.weights.values) != w.net.EdgeCount() {
			return nil, errors.New(errors.ErrCodeInvalidWeightsType,
				"weights must align with edges: got %d values for %d edges",
				len(w.weights.values), w.net.EdgeCount())
		}
		for _, v := range w.weights.values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.New(errors.ErrCodeInvalidWeightsType,
					"weights must be finite numbers, got %g", v)
			}
		}
		out := make([]float64, len(w.weights.values))
		copy(out, w.weights.values)
		return out, nil
	}

	name := w.weights.property
	if name == "" {
		name = network.PropBetweenness
	}
	if !w.net.HasEdgeProperty(name) {
		if name != network.PropBetweenness {
			return nil, errors.New(errors.ErrCodeInvalidWeightsRef,
				"weights must be a valid edge property: %q", name)
		}
		return w.net.EstimateBetweenness(), nil
	}
	vals, _ := w.net.EdgeProperty(name)
	return vals, nil
}

// partitionEqualWidth assigns each weight to one of k equal-width bins
// spanning [min, max]. The top boundary is inclusive, so the maximum
// weight lands in bin k-1, and a degenerate range puts everything in
// bin 0. Returns the per-value bin index and the k+1 boundaries.
func partitionEqualWidth(values []float64, k int) ([]int, []float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if len(values) == 0 {
		lo, hi = 0, 0
	}

	width := (hi - lo) / float64(k)
	binEdges := make([]float64, k+1)
	for i := range binEdges {
		binEdges[i] = lo + width*float64(i)
	}
	binEdges[k] = hi

	groups := make([]int, len(values))
	for i, v := range values {
		if width <= 0 {
			groups[i] = 0
			continue
		}
		idx := int((v - lo) / width)
		if idx >= k {
			idx = k - 1
		}
		groups[i] = idx
	}
	return groups, binEdges
}

// Groups returns the per-edge bin assignments. Nil before PrepareData.
func (w *Weighted) Groups() []int { return w.groups }

// BinEdges returns the k+1 ascending bin boundaries. Nil before
// PrepareData.
func (w *Weighted) BinEdges() []float64 { return w.binEdges }

// Weights returns the resolved per-edge weights. Nil before PrepareData.
func (w *Weighted) Weights() []float64 { return w.resolved }

// Render draws one batch per bin, darkest color first. Bins with no
// members still consume a ramp color and produce an empty batch, keeping
// the color assignment stable across networks.
func (w *Weighted) Render(surface canvas.Canvas, opts ...Option) ([]canvas.Handle, error) {
	if w.groups == nil {
		return nil, errNotPrepared(w.Name())
	}
	o := buildOptions(Options{
		Color:     defaultWeightedBase,
		LineWidth: 1,
		LineStyle: "solid",
		Alpha:     0.75,
	}, opts)

	colors, err := w.tierColors(o)
	if err != nil {
		return nil, err
	}

	byBin := make([][]geom.Polyline, w.k)
	for i, g := range w.groups {
		byBin[g] = append(byBin[g], w.lines[i])
	}

	handles := make([]canvas.Handle, 0, w.k)
	for bin := 0; bin < w.k; bin++ {
		h, err := surface.DrawLines(canvas.LineBatch{
			Label: binLabel(bin),
			Lines: byBin[bin],
			Style: canvas.LineStyle{
				Color: colors[bin],
				Width: o.LineWidth,
				Dash:  canvas.DashPattern(o.LineStyle),
				Alpha: o.Alpha,
			},
		})
		if err != nil {
			return nil, err
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// tierColors builds the k-color ramp: a named palette when requested,
// otherwise a dark ramp toward the base color.
func (w *Weighted) tierColors(o Options) ([]color.RGBA, error) {
	if o.Palette != "" {
		return palette.Colors(o.Palette, w.k)
	}
	base, err := resolveColor(o.Color, defaultWeightedBase)
	if err != nil {
		return nil, err
	}
	return palette.Dark(base, w.k), nil
}

func binLabel(bin int) string {
	return fmt.Sprintf("%s-bin-%d", NameWeighted, bin)
}
