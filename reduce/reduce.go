package reduce

import (
	"context"
	"math"

	"github.com/llp-go/lattice/internal/idxset"
	"github.com/llp-go/lattice/llp"
)

// Tree runs the Reduce instance and returns the internal tree vector of
// length n-1 (n = len(a)), laid out breadth-first with the root at
// index 0: G[v] = G[2v+1] + G[2v+2] for every non-leaf-parent node, and
// G[v] = A[2v-n+2] + A[2v-n+3] for every leaf-parent node, where A is a
// zero-padded copy of a extended to the next power of two so that
// leaf-parent lookups never run past the end of the backing array.
// For n <= 1 there are no internal nodes and Tree returns an empty
// slice.
func Tree(ctx context.Context, a []int64, opts ...llp.Option) ([]int64, error) {
	n := len(a)
	M := n - 1
	if M <= 0 {
		return []int64{}, nil
	}

	N := idxset.NextPowerOfTwo(n)
	padded := make([]int64, N)
	copy(padded, a)

	half := n/2 - 1 // first leaf-parent index, against the ORIGINAL length
	g := make([]int64, M)
	for i := range g {
		g[i] = math.MinInt64 / 2
	}
	tempG := make([]int64, M)

	contract := llp.Contract{
		N: M,
		Forbidden: []func(int) bool{
			func(v int) bool {
				var rhs int64
				if v < half {
					rhs = g[2*v+1] + g[2*v+2]
				} else {
					base := 2*v - n + 2
					rhs = safeAt(padded, base) + safeAt(padded, base+1)
				}
				if g[v] < rhs {
					tempG[v] = rhs
					return true
				}
				return false
			},
		},
		AdvanceSteps: []func(context.Context, int) error{
			func(_ context.Context, v int) error {
				g[v] = tempG[v]
				return nil
			},
		},
	}

	k, err := llp.New(contract, opts...)
	if err != nil {
		return nil, err
	}
	defer k.Close()

	if err := k.Run(ctx); err != nil {
		return nil, err
	}
	return g, nil
}

// safeAt returns padded[i], or 0 if i falls outside padded. The
// leaf-parent base index is linear in n rather than in the padded
// length N, so it can run slightly out of range for odd n; treating an
// out-of-range read as 0 keeps that case from panicking instead of
// silently mis-pairing elements.
func safeAt(padded []int64, i int) int64 {
	if i < 0 || i >= len(padded) {
		return 0
	}
	return padded[i]
}

// Solve returns the subtree-sum tree: G[0] is the sum of every element
// of a, and for every internal node v, G[v] = G[2v+1] + G[2v+2] at
// termination. This is exactly Tree; Solve is the public entry point
// named after the algorithm's operation.
func Solve(ctx context.Context, a []int64, opts ...llp.Option) ([]int64, error) {
	return Tree(ctx, a, opts...)
}
