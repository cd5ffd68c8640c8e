package graphs

import "github.com/cockroachdb/errors"

// Edge is an undirected weighted edge, stored with the smaller endpoint
// first for deterministic comparison.
type Edge struct {
	U, V   int
	Weight int64
}

func newEdge(u, v int, weight int64) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{U: u, V: v, Weight: weight}
}

// Other returns the endpoint of e that is not vertex. Panics if vertex
// is neither endpoint, matching the source's IllegalArgumentException.
func (e Edge) Other(vertex int) int {
	switch vertex {
	case e.U:
		return e.V
	case e.V:
		return e.U
	default:
		panic("graphs: vertex not in edge")
	}
}

// Less orders edges by weight first, then by endpoint pair, giving the
// deterministic tie-break used by Boruvka's cheapest-edge selection and
// by sorted test comparisons.
func (e Edge) Less(other Edge) bool {
	if e.Weight != other.Weight {
		return e.Weight < other.Weight
	}
	if e.U != other.U {
		return e.U < other.U
	}
	return e.V < other.V
}

// UndirectedGraph is a weighted undirected graph with per-vertex
// incidence lists, the representation used by FastComponents and
// Boruvka.
type UndirectedGraph struct {
	n         int
	edges     []Edge
	adjacency [][]Edge // adjacency[v] = edges incident to v
}

// NewUndirectedGraph returns an n-vertex graph with no edges.
func NewUndirectedGraph(n int) (*UndirectedGraph, error) {
	if n <= 0 {
		return nil, errors.Wrap(ErrNonPositiveSize, "graphs.NewUndirectedGraph")
	}
	return &UndirectedGraph{n: n, adjacency: make([][]Edge, n)}, nil
}

// NumVertices returns n.
func (g *UndirectedGraph) NumVertices() int { return g.n }

// AddEdge adds an undirected edge between u and v with the given
// weight.
func (g *UndirectedGraph) AddEdge(u, v int, weight int64) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return errors.Wrap(ErrInvalidVertex, "graphs.UndirectedGraph.AddEdge")
	}
	e := newEdge(u, v, weight)
	g.edges = append(g.edges, e)
	g.adjacency[u] = append(g.adjacency[u], e)
	g.adjacency[v] = append(g.adjacency[v], e)
	return nil
}

// Edges returns every edge in the graph.
func (g *UndirectedGraph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Incident returns every edge touching v.
func (g *UndirectedGraph) Incident(v int) []Edge {
	out := make([]Edge, len(g.adjacency[v]))
	copy(out, g.adjacency[v])
	return out
}

// TotalWeight returns the sum of every edge's weight.
func (g *UndirectedGraph) TotalWeight() int64 {
	var total int64
	for _, e := range g.edges {
		total += e.Weight
	}
	return total
}

// ToDirectedMatrix folds the undirected graph into a directed matrix by
// emitting both u->v and v->u for every edge, the representation
// FastComponents' parent/neighbor scan operates over.
func (g *UndirectedGraph) ToDirectedMatrix() (*DirectedMatrix, error) {
	dm, err := NewDirectedMatrix(g.n)
	if err != nil {
		return nil, err
	}
	for _, e := range g.edges {
		if err := dm.AddEdge(e.U, e.V, e.Weight); err != nil {
			return nil, err
		}
		if err := dm.AddEdge(e.V, e.U, e.Weight); err != nil {
			return nil, err
		}
	}
	return dm, nil
}
