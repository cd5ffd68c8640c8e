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

// LoadDirectedGraph reads a weighted directed graph given as a vertex
// count followed by, for each vertex v in order, a comma-separated
// destination line and a comma-separated weight line of equal length.
// A destination/weight line may be blank or "*" to declare no outgoing
// edges for that vertex.
func LoadDirectedGraph(r io.Reader) (*graphs.DirectedMatrix, error) {
	sc := bufio.NewScanner(r)

	n, err := readDeclaredCount(sc)
	if err != nil {
		return nil, errors.Wrap(err, "loader.LoadDirectedGraph")
	}
	g, err := graphs.NewDirectedMatrix(n)
	if err != nil {
		return nil, errors.Wrap(err, "loader.LoadDirectedGraph")
	}

	for v := 0; v < n; v++ {
		destLine, err := requiredLine(sc)
		if err != nil {
			return nil, errors.Wrapf(err, "loader.LoadDirectedGraph: destinations for vertex %d", v)
		}
		wtsLine, err := requiredLine(sc)
		if err != nil {
			return nil, errors.Wrapf(err, "loader.LoadDirectedGraph: weights for vertex %d", v)
		}

		dests, err := parseCSVInts(destLine)
		if err != nil {
			return nil, errors.Wrapf(err, "loader.LoadDirectedGraph: destinations for vertex %d", v)
		}
		weights, err := parseCSVInts(wtsLine)
		if err != nil {
			return nil, errors.Wrapf(err, "loader.LoadDirectedGraph: weights for vertex %d", v)
		}
		if len(dests) != len(weights) {
			return nil, errors.Wrapf(ErrMismatchedLengths, "loader.LoadDirectedGraph: vertex %d has %d destinations but %d weights", v, len(dests), len(weights))
		}

		for i, to := range dests {
			if to < 0 || to >= n {
				return nil, errors.Wrapf(ErrVertexOutOfRange, "loader.LoadDirectedGraph: vertex %d destination %d", v, to)
			}
			if err := g.AddEdge(v, to, int64(weights[i])); err != nil {
				return nil, errors.Wrap(err, "loader.LoadDirectedGraph")
			}
		}
	}
	return g, nil
}

// LoadDirectedGraphFile opens path and delegates to LoadDirectedGraph.
func LoadDirectedGraphFile(path string) (*graphs.DirectedMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "loader.LoadDirectedGraphFile")
	}
	defer f.Close()
	return LoadDirectedGraph(f)
}

func readDeclaredCount(sc *bufio.Scanner) (int, error) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 {
			return 0, errors.Wrapf(ErrInvalidCount, "declared size %q", line)
		}
		return n, nil
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, errors.Wrap(ErrEmptyInput, "missing declared size")
}

func requiredLine(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", errors.Wrap(ErrTruncatedInput, "missing line")
	}
	return strings.TrimSpace(sc.Text()), nil
}

func parseCSVInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t == "" {
			continue
		}
		v, err := strconv.Atoi(t)
		if err != nil {
			return nil, errors.Wrapf(err, "not an integer: %q", t)
		}
		out = append(out, v)
	}
	return out, nil
}
