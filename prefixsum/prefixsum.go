package prefixsum

import (
	"context"
	"math"

	"github.com/llp-go/lattice/internal/idxset"
	"github.com/llp-go/lattice/llp"
	"github.com/llp-go/lattice/reduce"
)

// Solve returns the inclusive prefix-sum array P, where P[i] equals the
// sum of a[0..i] for every i. In particular P[n-1] equals the sum of
// every element of a (the Reduce root).
func Solve(ctx context.Context, a []int64, opts ...llp.Option) ([]int64, error) {
	n := len(a)
	if n == 0 {
		return []int64{}, nil
	}

	N := idxset.NextPowerOfTwo(n)
	padded := make([]int64, N)
	copy(padded, a)

	S, err := reduce.Tree(ctx, padded, opts...)
	if err != nil {
		return nil, err
	}

	const negInf = math.MinInt64 / 4
	M := 2*N - 1
	g := make([]int64, M)
	for i := range g {
		g[i] = negInf
	}
	g[0] = 0
	tempG := make([]int64, M)

	propose := func(v int) (int64, bool) {
		if v == 0 {
			return 0, false
		}
		V := v + 1
		var rhs int64
		switch {
		case V%2 == 0:
			rhs = g[V/2-1]
		case V < N:
			rhs = S[V-2] + g[V/2-1]
		default:
			rhs = padded[V-N-1] + g[V/2-1]
		}
		return rhs, g[v] < rhs
	}

	contract := llp.Contract{
		N: M,
		Forbidden: []func(int) bool{
			func(v int) bool {
				rhs, forbidden := propose(v)
				if forbidden {
					tempG[v] = rhs
				}
				return forbidden
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

	start := N - 1
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = g[start+i] + a[i]
	}
	return out, nil
}
