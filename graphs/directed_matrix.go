package graphs

import "github.com/cockroachdb/errors"

// DirectedMatrix is a weighted directed adjacency-matrix graph with
// parent lists maintained as a side product of AddEdge, so that
// algorithms keyed on "incoming edges of v" (Bellman-Ford, Johnson,
// FastComponents) never need to scan a row of the matrix.
type DirectedMatrix struct {
	n       int
	weight  [][]int64 // weight[u][v], INF if no edge u->v
	parents [][]Arc   // parents[v] = {u, w(u,v)} for every edge u->v
}

// NewDirectedMatrix returns an n-vertex graph with no edges.
func NewDirectedMatrix(n int) (*DirectedMatrix, error) {
	if n <= 0 {
		return nil, errors.Wrap(ErrNonPositiveSize, "graphs.NewDirectedMatrix")
	}
	g := &DirectedMatrix{
		n:       n,
		weight:  make([][]int64, n),
		parents: make([][]Arc, n),
	}
	for i := range g.weight {
		g.weight[i] = make([]int64, n)
		for j := range g.weight[i] {
			g.weight[i][j] = INF
		}
	}
	return g, nil
}

// NumVertices returns n.
func (g *DirectedMatrix) NumVertices() int { return g.n }

// AddEdge adds a directed edge source->destination with the given
// weight, overwriting any prior weight between the same pair and
// recording destination's new parent.
func (g *DirectedMatrix) AddEdge(source, destination int, weight int64) error {
	if source < 0 || source >= g.n || destination < 0 || destination >= g.n {
		return errors.Wrap(ErrInvalidVertex, "graphs.DirectedMatrix.AddEdge")
	}
	g.weight[source][destination] = weight
	for i := range g.parents[destination] {
		if g.parents[destination][i].To == source {
			g.parents[destination][i].Weight = weight
			return nil
		}
	}
	g.parents[destination] = append(g.parents[destination], Arc{To: source, Weight: weight})
	return nil
}

// Weight returns the weight of edge source->destination, or INF if
// there is none.
func (g *DirectedMatrix) Weight(source, destination int) int64 {
	return g.weight[source][destination]
}

// Children returns every v such that source->v is an edge.
func (g *DirectedMatrix) Children(source int) []Arc {
	out := make([]Arc, 0)
	for v := 0; v < g.n; v++ {
		if w := g.weight[source][v]; w < INF {
			out = append(out, Arc{To: v, Weight: w})
		}
	}
	return out
}

// Parents returns every {u, w(u,v)} such that u->v is an edge into v.
func (g *DirectedMatrix) Parents(v int) []Arc {
	return g.parents[v]
}
