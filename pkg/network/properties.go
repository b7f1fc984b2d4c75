package network

// Well-known edge property names.
const (
	// PropWeight is the conventional name for imported edge weights.
	PropWeight = "weight"

	// PropBetweenness is the edge betweenness property. Unlike other
	// properties it can be computed on demand with EstimateBetweenness,
	// which renderers use as a fallback when the property is absent.
	PropBetweenness = "betweenness"
)

// EstimateBetweenness computes edge betweenness centrality for every edge,
// stores it under PropBetweenness, and returns the values.
//
// The computation is Brandes' algorithm on the directed, unweighted graph:
// every node is used as a BFS source and shortest-path dependencies are
// accumulated per edge. Values are raw dependency sums (unnormalized).
// Parallel edges each receive their own share of the shortest-path flow.
//
// Runs in O(N*E) time and replaces any previously stored betweenness.
func (n *Network) EstimateBetweenness() []float64 {
	numNodes := len(n.positions)
	bc := make([]float64, len(n.edges))

	// Incoming edge indices per node, for the dependency accumulation pass.
	edgesTo := make(map[int][]int, numNodes)
	for i, e := range n.edges {
		edgesTo[e.Target] = append(edgesTo[e.Target], i)
	}

	dist := make([]int, numNodes)
	sigma := make([]float64, numNodes)
	delta := make([]float64, numNodes)
	stack := make([]int, 0, numNodes)
	queue := make([]int, 0, numNodes)

	for s := 0; s < numNodes; s++ {
		for i := range dist {
			dist[i] = -1
			sigma[i] = 0
			delta[i] = 0
		}
		stack = stack[:0]
		queue = queue[:0]

		dist[s] = 0
		sigma[s] = 1
		queue = append(queue, s)

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)
			for _, w := range n.outgoing[v] {
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
				}
			}
		}

		// Accumulate dependencies onto edges, farthest nodes first.
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, ei := range edgesTo[w] {
				v := n.edges[ei].Source
				if dist[v] != dist[w]-1 || sigma[w] == 0 {
					continue
				}
				c := sigma[v] / sigma[w] * (1 + delta[w])
				bc[ei] += c
				delta[v] += c
			}
		}
	}

	stored := make([]float64, len(bc))
	copy(stored, bc)
	n.props[PropBetweenness] = stored
	return bc
}
