package johnson

import (
	"context"
	"sync/atomic"

	"github.com/cockroachdb/errors"

	"github.com/llp-go/lattice/dijkstra"
	"github.com/llp-go/lattice/graphs"
	"github.com/llp-go/lattice/llp"
)

// Solve computes a feasible vertex potential (price) for g such that
// w(u,v) + price[v] - price[u] >= 0 for every edge u->v, or reports
// ok=false if g has a negative cycle and no such potential exists.
func Solve(ctx context.Context, g *graphs.DirectedMatrix, opts ...llp.Option) (price []int64, ok bool, err error) {
	n := g.NumVertices()

	price = make([]int64, n)
	budget := make([]int64, n)
	for i := range budget {
		budget[i] = int64(n - 1)
	}
	var negCycle atomic.Bool

	best := func(v int) int64 {
		b := price[v]
		for _, p := range g.Parents(v) {
			if cand := price[p.To] - p.Weight; cand > b {
				b = cand
			}
		}
		return b
	}

	contract := llp.Contract{
		N:        n,
		Eligible: func(v int) bool { return budget[v] >= 0 },
		Forbidden: []func(v int) bool{
			func(v int) bool { return best(v) > price[v] },
		},
		AdvanceSteps: []func(context.Context, int) error{
			func(_ context.Context, v int) error {
				pv := price[v]
				b := best(v)
				price[v] = b
				if budget[v] == 0 && b > pv {
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
		return price, false, nil
	}
	return price, true, nil
}

// AllPairs computes shortest-path distances between every pair of
// vertices in g. It reweights every edge via Solve's potential so that
// the reweighted graph carries only non-negative weights, runs the
// dijkstra package once per source, and un-reweights the results.
// ok is false if g has a negative cycle, in which case dist is nil.
func AllPairs(ctx context.Context, g *graphs.DirectedMatrix, opts ...llp.Option) (dist [][]int64, ok bool, err error) {
	n := g.NumVertices()

	price, ok, err := Solve(ctx, g, opts...)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	rg, err := graphs.NewDirectedMatrix(n)
	if err != nil {
		return nil, false, errors.Wrap(err, "johnson.AllPairs: new matrix")
	}
	for u := 0; u < n; u++ {
		for _, arc := range g.Children(u) {
			reweighted := arc.Weight + price[arc.To] - price[u]
			if err := rg.AddEdge(u, arc.To, reweighted); err != nil {
				return nil, false, errors.Wrap(err, "johnson.AllPairs: add edge")
			}
		}
	}

	dist = make([][]int64, n)
	for s := 0; s < n; s++ {
		d, _, err := dijkstra.Dijkstra(rg, dijkstra.Source(s))
		if err != nil {
			return nil, false, errors.Wrap(err, "johnson.AllPairs: dijkstra")
		}
		row := make([]int64, n)
		for v := 0; v < n; v++ {
			if d[v] >= graphs.INF {
				row[v] = graphs.INF
				continue
			}
			row[v] = d[v] + price[s] - price[v]
		}
		dist[s] = row
	}
	return dist, true, nil
}
