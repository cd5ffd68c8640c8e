package loader

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/llp-go/lattice/graphs"
)

// LoadWeightedUndirectedGraph reads a weighted undirected graph given
// as a vertex count, an edge count, and that many "u v weight" triples,
// whitespace-separated.
func LoadWeightedUndirectedGraph(r io.Reader) (*graphs.UndirectedGraph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n, err := scanNonNegativeInt(sc, "vertex count")
	if err != nil {
		return nil, errors.Wrap(err, "loader.LoadWeightedUndirectedGraph")
	}
	m, err := scanNonNegativeInt(sc, "edge count")
	if err != nil {
		return nil, errors.Wrap(err, "loader.LoadWeightedUndirectedGraph")
	}

	g, err := graphs.NewUndirectedGraph(n)
	if err != nil {
		return nil, errors.Wrap(err, "loader.LoadWeightedUndirectedGraph")
	}

	for i := 0; i < m; i++ {
		u, err := scanInt(sc)
		if err != nil {
			return nil, errors.Wrapf(err, "loader.LoadWeightedUndirectedGraph: edge %d endpoint u", i)
		}
		v, err := scanInt(sc)
		if err != nil {
			return nil, errors.Wrapf(err, "loader.LoadWeightedUndirectedGraph: edge %d endpoint v", i)
		}
		w, err := scanInt(sc)
		if err != nil {
			return nil, errors.Wrapf(err, "loader.LoadWeightedUndirectedGraph: edge %d weight", i)
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, errors.Wrapf(ErrVertexOutOfRange, "loader.LoadWeightedUndirectedGraph: edge %d (%d, %d)", i, u, v)
		}
		if err := g.AddEdge(u, v, int64(w)); err != nil {
			return nil, errors.Wrap(err, "loader.LoadWeightedUndirectedGraph")
		}
	}
	if sc.Scan() {
		return nil, errors.Wrap(ErrTrailingData, "loader.LoadWeightedUndirectedGraph")
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "loader.LoadWeightedUndirectedGraph")
	}
	return g, nil
}

// LoadWeightedUndirectedGraphFile opens path and delegates to
// LoadWeightedUndirectedGraph.
func LoadWeightedUndirectedGraphFile(path string) (*graphs.UndirectedGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "loader.LoadWeightedUndirectedGraphFile")
	}
	defer f.Close()
	return LoadWeightedUndirectedGraph(f)
}

func scanInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, errors.Wrap(ErrTruncatedInput, "missing token")
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, errors.Wrapf(err, "not an integer: %q", sc.Text())
	}
	return v, nil
}

func scanNonNegativeInt(sc *bufio.Scanner, what string) (int, error) {
	v, err := scanInt(sc)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, errors.Wrapf(ErrInvalidCount, "%s %d", what, v)
	}
	return v, nil
}
