package edges

import (
	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/network"
	"github.com/edgeviz/edgeviz/pkg/render/canvas"
	"github.com/edgeviz/edgeviz/pkg/render/curves"
)

// Default gradient endpoints for origin-destination rendering.
const (
	defaultODSource = "blue"
	defaultODTarget = "red"
)

// ODGradient draws every edge with an origin-to-destination color
// gradient. Straight edges are resampled to nPoints so the gradient has
// enough segments to fade smoothly; curved edges already carry their own
// sampling and pass through unchanged.
type ODGradient struct {
	net     *network.Network
	nPoints int

	coll *curves.ColoredCurveCollection
}

// NewODGradient binds an origin-destination gradient strategy to a
// network. nPoints is the sample count applied to straight edges.
func NewODGradient(net *network.Network, nPoints int) *ODGradient {
	return &ODGradient{net: net, nPoints: nPoints}
}

// Name implements Strategy.
func (o *ODGradient) Name() string { return NameOD }

// PrepareData resamples straight edges to the configured point count and
// gathers all edges into one curve collection.
func (o *ODGradient) PrepareData() error {
	if o.nPoints < 2 {
		return errors.New(errors.ErrCodeInvalidInput,
			"sample count must be at least 2, got %d", o.nPoints)
	}
	weights := edgeWeights(o.net)

	coll := &curves.ColoredCurveCollection{}
	for _, e := range o.net.Edges() {
		coll.AddCurve(e.Path.Resample(o.nPoints), weights[e.Index])
	}
	o.coll = coll
	return nil
}

// Curves returns the prepared curve collection. Nil before PrepareData.
func (o *ODGradient) Curves() *curves.ColoredCurveCollection { return o.coll }

// Render draws all edges as a single gradient batch fading from the
// source color at each edge's origin to the target color at its
// destination.
func (o *ODGradient) Render(surface canvas.Canvas, opts ...Option) ([]canvas.Handle, error) {
	if o.coll == nil {
		return nil, errNotPrepared(o.Name())
	}
	opt := buildOptions(Options{
		SourceColor: defaultODSource,
		TargetColor: defaultODTarget,
		LineWidth:   1,
		Alpha:       0.75,
	}, opts)

	src, err := resolveColor(opt.SourceColor, defaultODSource)
	if err != nil {
		return nil, err
	}
	dst, err := resolveColor(opt.TargetColor, defaultODTarget)
	if err != nil {
		return nil, err
	}

	o.coll.SetColors(src, dst)
	h, err := o.coll.Render(surface, curves.Style{
		Label:       o.Name(),
		Width:       opt.LineWidth,
		Alpha:       opt.Alpha,
		WeightScale: opt.WeightScale,
	})
	if err != nil {
		return nil, err
	}
	return []canvas.Handle{h}, nil
}
