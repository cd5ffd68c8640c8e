package boruvka

import (
	"context"
	"sync"

	"github.com/llp-go/lattice/graphs"
	"github.com/llp-go/lattice/llp"
)

type proposal struct {
	edge  graphs.Edge
	valid bool
}

// Solve returns the edges of a minimum spanning forest of g (one tree
// per connected component) and their total weight.
func Solve(ctx context.Context, g *graphs.UndirectedGraph, opts ...llp.Option) ([]graphs.Edge, int64, error) {
	n := g.NumVertices()
	uf := newUnionFind(n)
	proposals := make([]proposal, n)

	var mstMu sync.Mutex
	var mst []graphs.Edge
	var totalWeight int64

	// rootOf is a per-phase snapshot of each vertex's component root.
	// Sub-step 1 fills rootOf[v] as a side effect of computing its own
	// proposal (write-own-index only, same discipline as proposals[v]).
	// Sub-step 2 then reads rootOf exclusively instead of calling
	// uf.find live, so a root's component scan never races against a
	// sibling root's concurrent uf.union in the same phase; sub-step 1
	// is its own barrier and runs before any union in the phase, so the
	// snapshot is complete and immutable by the time sub-step 2 starts.
	rootOf := make([]int, n)
	for v := range rootOf {
		rootOf[v] = v
	}

	componentHasCrossingEdge := func(root int) bool {
		for u := 0; u < n; u++ {
			if uf.find(u) != root {
				continue
			}
			for _, e := range g.Incident(u) {
				if uf.find(e.Other(u)) != root {
					return true
				}
			}
		}
		return false
	}

	contract := llp.Contract{
		N: n,
		Forbidden: []func(int) bool{
			func(v int) bool { return componentHasCrossingEdge(uf.find(v)) },
		},
		AdvanceSteps: []func(context.Context, int) error{
			// Step 1: each vertex proposes its own cheapest edge
			// leaving its current component, and snapshots its own
			// root for step 2 to read without calling uf.find live.
			func(_ context.Context, v int) error {
				root := uf.find(v)
				rootOf[v] = root
				var best graphs.Edge
				found := false
				for _, e := range g.Incident(v) {
					if uf.find(e.Other(v)) == root {
						continue
					}
					if !found || e.Less(best) {
						best = e
						found = true
					}
				}
				proposals[v] = proposal{edge: best, valid: found}
				return nil
			},
			// Step 2: only component roots (per the step-1 snapshot)
			// reduce their members' proposals and perform the union.
			func(_ context.Context, v int) error {
				if rootOf[v] != v {
					return nil
				}
				root := v
				var best graphs.Edge
				found := false
				for u := 0; u < n; u++ {
					if rootOf[u] != root || !proposals[u].valid {
						continue
					}
					if !found || proposals[u].edge.Less(best) {
						best = proposals[u].edge
						found = true
					}
				}
				if !found {
					return nil
				}
				if uf.union(best.U, best.V) {
					mstMu.Lock()
					mst = append(mst, best)
					totalWeight += best.Weight
					mstMu.Unlock()
				}
				return nil
			},
		},
	}

	k, err := llp.New(contract, opts...)
	if err != nil {
		return nil, 0, err
	}
	defer k.Close()

	if err := k.Run(ctx); err != nil {
		return nil, 0, err
	}
	return mst, totalWeight, nil
}
