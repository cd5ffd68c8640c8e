package fastcomp

import (
	"context"

	"github.com/llp-go/lattice/graphs"
	"github.com/llp-go/lattice/internal/executor"
	"github.com/llp-go/lattice/llp"
)

// Solve returns parent, where parent[v] is the representative of v's
// connected component in the undirected graph that g encodes with both
// arc directions. Two vertices share a component iff they share a
// representative.
func Solve(ctx context.Context, g *graphs.DirectedMatrix, opts ...llp.Option) ([]int, error) {
	n := g.NumVertices()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	vmax := make([]int, n)

	hasDifferentParentInNeighborhood := func(v int) bool {
		for _, p := range g.Parents(v) {
			if parent[v] < parent[p.To] {
				return true
			}
		}
		return false
	}
	parentNotEqualGrandparent := func(v int) bool {
		return parent[v] != parent[parent[v]]
	}

	contract := llp.Contract{
		N: n,
		Forbidden: []func(int) bool{
			hasDifferentParentInNeighborhood,
			parentNotEqualGrandparent,
		},
		AdvanceSteps: []func(context.Context, int) error{
			func(_ context.Context, v int) error {
				m := parent[v]
				for _, p := range g.Parents(v) {
					if parent[p.To] > m {
						m = parent[p.To]
					}
				}
				vmax[v] = m
				return nil
			},
			func(_ context.Context, v int) error {
				if v != parent[v] {
					return nil
				}
				maxParent := vmax[v]
				for u := 0; u < n; u++ {
					if parent[u] == parent[v] && vmax[u] > maxParent {
						maxParent = vmax[u]
					}
				}
				parent[v] = maxParent
				return nil
			},
		},
	}

	k, err := llp.New(contract, opts...)
	if err != nil {
		return nil, err
	}
	defer k.Close()

	pool := executor.New()
	defer pool.Close()

	full := k.NewIndexSet()
	for v := 0; v < n; v++ {
		full.Set(v)
	}
	placeholder := k.NewIndexSet()
	fullIndices := full.Slice()

	// collapseToStars repeatedly halves every vertex's path to its root
	// until no vertex's parent still points through a grandparent.
	collapseToStars := func() error {
		for {
			hasForb, err := k.CollectForbidden(ctx, 1, placeholder)
			if err != nil {
				return err
			}
			if !hasForb {
				return nil
			}
			if err := pool.Run(ctx, len(fullIndices), func(_ context.Context, i int) error {
				v := fullIndices[i]
				parent[v] = parent[parent[v]]
				return nil
			}); err != nil {
				return err
			}
		}
	}

	for {
		hasForb, err := k.CollectForbidden(ctx, 0, placeholder)
		if err != nil {
			return nil, err
		}
		if !hasForb {
			return parent, nil
		}
		if err := k.Advance(ctx, full); err != nil {
			return nil, err
		}
		if err := collapseToStars(); err != nil {
			return nil, err
		}
	}
}
