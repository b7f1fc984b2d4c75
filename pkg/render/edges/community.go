package edges

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/edgeviz/edgeviz/pkg/errors"
	"github.com/edgeviz/edgeviz/pkg/network"
	"github.com/edgeviz/edgeviz/pkg/render/canvas"
	"github.com/edgeviz/edgeviz/pkg/render/curves"
	"github.com/edgeviz/edgeviz/pkg/render/palette"
)

// defaultCommunityPalette colors the community categories.
const defaultCommunityPalette = "plasma"

// PairKey identifies an ordered community pair. Direction matters:
// edges from A to B and edges from B to A form distinct groups.
type PairKey struct {
	Source string
	Target string
}

func (k PairKey) String() string { return k.Source + "->" + k.Target }

// CommunityGradient groups edges by the ordered pair of their endpoint
// communities and draws each group as one gradient batch running from the
// source community's color to the target community's color.
type CommunityGradient struct {
	net    *network.Network
	labels []string // node index -> community label
	ids    []string // distinct labels, sorted

	links map[PairKey]*curves.ColoredCurveCollection
	order []PairKey // deterministic render order
}

// NewCommunityGradient binds a community gradient strategy to a network
// with an explicit per-node community assignment. The assignment must
// cover every node.
func NewCommunityGradient(net *network.Network, nodeCommunities []string) (*CommunityGradient, error) {
	if len(nodeCommunities) != net.NodeCount() {
		return nil, errors.New(errors.ErrCodeInvalidCommunities,
			"community labels must align with nodes: got %d labels for %d nodes",
			len(nodeCommunities), net.NodeCount())
	}
	labels := make([]string, len(nodeCommunities))
	copy(labels, nodeCommunities)

	seen := make(map[string]bool)
	var ids []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			ids = append(ids, l)
		}
	}
	sort.Strings(ids)

	return &CommunityGradient{net: net, labels: labels, ids: ids}, nil
}

// Name implements Strategy.
func (g *CommunityGradient) Name() string { return NameCommunity }

// Communities returns the distinct community labels, sorted.
func (g *CommunityGradient) Communities() []string { return g.ids }

// PrepareData groups every edge into the collection for its ordered
// endpoint-community pair, accumulating edge weights per group.
func (g *CommunityGradient) PrepareData() error {
	weights := edgeWeights(g.net)

	links := make(map[PairKey]*curves.ColoredCurveCollection)
	var order []PairKey
	for _, e := range g.net.Edges() {
		key := PairKey{Source: g.labels[e.Source], Target: g.labels[e.Target]}
		coll, ok := links[key]
		if !ok {
			coll = &curves.ColoredCurveCollection{}
			links[key] = coll
			order = append(order, key)
		}
		coll.AddCurve(e.Path.Points, weights[e.Index])
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].Source != order[j].Source {
			return order[i].Source < order[j].Source
		}
		return order[i].Target < order[j].Target
	})

	g.links = links
	g.order = order
	return nil
}

// GroupKeys returns the ordered community pairs present in the network,
// sorted by source then target. Nil before PrepareData.
func (g *CommunityGradient) GroupKeys() []PairKey { return g.order }

// Group returns the curve collection for an ordered community pair.
func (g *CommunityGradient) Group(key PairKey) (*curves.ColoredCurveCollection, bool) {
	coll, ok := g.links[key]
	return coll, ok
}

// Render draws one gradient batch per ordered community pair. Each batch
// fades from the source community's color to the target community's
// color, so intra-community groups render in a single flat color.
func (g *CommunityGradient) Render(surface canvas.Canvas, opts ...Option) ([]canvas.Handle, error) {
	if g.links == nil {
		return nil, errNotPrepared(g.Name())
	}
	if len(g.order) == 0 {
		return []canvas.Handle{}, nil
	}
	o := buildOptions(Options{
		Palette:   defaultCommunityPalette,
		LineWidth: 1,
		Alpha:     0.75,
	}, opts)

	colors, err := communityColors(g.ids, o.Palette)
	if err != nil {
		return nil, err
	}

	handles := make([]canvas.Handle, 0, len(g.order))
	for _, key := range g.order {
		coll := g.links[key]
		coll.SetColors(colors[key.Source], colors[key.Target])
		h, err := coll.Render(surface, curves.Style{
			Label:       fmt.Sprintf("%s-%s", NameCommunity, key),
			Width:       o.LineWidth,
			Alpha:       o.Alpha,
			WeightScale: o.WeightScale,
		})
		if err != nil {
			return nil, err
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// communityColors assigns one palette color per community label.
func communityColors(ids []string, name string) (map[string]color.RGBA, error) {
	cs, err := palette.Colors(name, len(ids))
	if err != nil {
		return nil, err
	}
	out := make(map[string]color.RGBA, len(ids))
	for i, id := range ids {
		out[id] = cs[i]
	}
	return out, nil
}
