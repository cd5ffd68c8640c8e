package loader

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/llp-go/lattice/graphs"
)

// LoadUnweightedUndirectedGraph reads an unweighted undirected graph
// given as a vertex count followed by exactly that many neighbor lines,
// one per vertex in order. A neighbor line lists adjacent indices
// separated by commas and/or whitespace, or is blank/"*" for a vertex
// with no neighbors. Each undirected edge {u, v} is materialized as the
// pair of unit-weight directed edges u->v and v->u. Self-loops are
// dropped unless allowSelfLoops is set.
func LoadUnweightedUndirectedGraph(r io.Reader, allowSelfLoops bool) (*graphs.DirectedMatrix, error) {
	sc := bufio.NewScanner(r)

	n, err := readDeclaredCount(sc)
	if err != nil {
		return nil, errors.Wrap(err, "loader.LoadUnweightedUndirectedGraph")
	}
	g, err := graphs.NewDirectedMatrix(n)
	if err != nil {
		return nil, errors.Wrap(err, "loader.LoadUnweightedUndirectedGraph")
	}

	for u := 0; u < n; u++ {
		line, err := requiredLine(sc)
		if err != nil {
			return nil, errors.Wrapf(err, "loader.LoadUnweightedUndirectedGraph: neighbors for vertex %d", u)
		}
		neighbors, err := parseNeighbors(line)
		if err != nil {
			return nil, errors.Wrapf(err, "loader.LoadUnweightedUndirectedGraph: neighbors for vertex %d", u)
		}
		for _, v := range neighbors {
			if v < 0 || v >= n {
				return nil, errors.Wrapf(ErrVertexOutOfRange, "loader.LoadUnweightedUndirectedGraph: vertex %d neighbor %d", u, v)
			}
			if u == v && !allowSelfLoops {
				continue
			}
			if err := g.AddEdge(u, v, 1); err != nil {
				return nil, errors.Wrap(err, "loader.LoadUnweightedUndirectedGraph")
			}
			if err := g.AddEdge(v, u, 1); err != nil {
				return nil, errors.Wrap(err, "loader.LoadUnweightedUndirectedGraph")
			}
		}
	}
	return g, nil
}

// LoadUnweightedUndirectedGraphFile opens path and delegates to
// LoadUnweightedUndirectedGraph.
func LoadUnweightedUndirectedGraphFile(path string, allowSelfLoops bool) (*graphs.DirectedMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "loader.LoadUnweightedUndirectedGraphFile")
	}
	defer f.Close()
	return LoadUnweightedUndirectedGraph(f, allowSelfLoops)
}

func parseNeighbors(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return nil, nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "not an integer: %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}
