package edges

import (
	"github.com/edgeviz/edgeviz/pkg/geom"
	"github.com/edgeviz/edgeviz/pkg/network"
	"github.com/edgeviz/edgeviz/pkg/render/canvas"
	"github.com/edgeviz/edgeviz/pkg/render/palette"
)

// Plain draws every edge with one uniform style. It is the baseline
// strategy and ignores all edge properties.
type Plain struct {
	net   *network.Network
	lines []geom.Polyline
}

// NewPlain binds a plain strategy to a network.
func NewPlain(net *network.Network) *Plain {
	return &Plain{net: net}
}

// Name implements Strategy.
func (p *Plain) Name() string { return NamePlain }

// PrepareData collects every edge's geometry in edge order.
func (p *Plain) PrepareData() error {
	p.lines = collectLines(p.net)
	return nil
}

// Lines returns the prepared geometries, one per edge. Nil before
// PrepareData.
func (p *Plain) Lines() []geom.Polyline { return p.lines }

// Render draws all edges as a single uniform batch.
func (p *Plain) Render(surface canvas.Canvas, opts ...Option) ([]canvas.Handle, error) {
	if p.lines == nil {
		return nil, errNotPrepared(p.Name())
	}
	o := buildOptions(Options{
		Color:     palette.DefaultEdgeColor,
		LineWidth: 1,
		LineStyle: "solid",
		Alpha:     0.75,
	}, opts)

	c, err := resolveColor(o.Color, palette.DefaultEdgeColor)
	if err != nil {
		return nil, err
	}
	h, err := surface.DrawLines(canvas.LineBatch{
		Label: p.Name(),
		Lines: p.lines,
		Style: canvas.LineStyle{
			Color: c,
			Width: o.LineWidth,
			Dash:  canvas.DashPattern(o.LineStyle),
			Alpha: o.Alpha,
		},
	})
	if err != nil {
		return nil, err
	}
	return []canvas.Handle{h}, nil
}
