package bellmanford

import (
	"context"
	"sync/atomic"

	"github.com/cockroachdb/errors"

	"github.com/llp-go/lattice/graphs"
	"github.com/llp-go/lattice/llp"
)

// ErrSourceOutOfRange indicates the requested source vertex is not a
// valid index into the graph.
var ErrSourceOutOfRange = errors.New("bellmanford: source out of range")

// Solve returns the shortest-path distance vector from source over g.
// d[v] is graphs.INF for every vertex unreachable from source. ok is
// false if a negative cycle reachable from source was detected, in
// which case d's contents should not be relied upon.
func Solve(ctx context.Context, g *graphs.DirectedMatrix, source int, opts ...llp.Option) (d []int64, ok bool, err error) {
	n := g.NumVertices()
	if source < 0 || source >= n {
		return nil, false, errors.Wrap(ErrSourceOutOfRange, "bellmanford.Solve")
	}

	d = make([]int64, n)
	for i := range d {
		d[i] = graphs.INF
	}
	d[source] = 0

	budget := make([]int64, n)
	for i := range budget {
		budget[i] = int64(n - 1)
	}
	var negCycle atomic.Bool

	best := func(v int) int64 {
		b := d[v]
		for _, p := range g.Parents(v) {
			if cand := graphs.SaturatingAdd(d[p.To], p.Weight); cand < b {
				b = cand
			}
		}
		return b
	}

	contract := llp.Contract{
		N:        n,
		Eligible: func(v int) bool { return budget[v] >= 0 },
		Forbidden: []func(v int) bool{
			func(v int) bool { return best(v) < d[v] },
		},
		AdvanceSteps: []func(context.Context, int) error{
			func(_ context.Context, v int) error {
				dv := d[v]
				b := best(v)
				d[v] = b
				if budget[v] == 0 && b < dv {
					negCycle.Store(true)
				}
				budget[v]--
				return nil
			},
		},
	}

	k, err := llp.New(contract, opts...)
	if err != nil {
		return nil, false, err
	}
	defer k.Close()

	if err := k.Run(ctx); err != nil {
		return nil, false, err
	}
	if negCycle.Load() {
		return d, false, nil
	}
	return d, true, nil
}
