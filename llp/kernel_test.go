package llp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestKernel_CountUpToTarget exercises the generic Contract/Kernel with a
// minimal instance: G[v] counts up from 0 to target[v], one unit per
// advance wave, forbidden while G[v] < target[v].
func TestKernel_CountUpToTarget(t *testing.T) {
	n := 5
	target := []int{0, 3, 1, 0, 2}
	g := make([]int, n)

	c := Contract{
		N: n,
		Forbidden: []func(int) bool{
			func(v int) bool { return g[v] < target[v] },
		},
		AdvanceSteps: []func(context.Context, int) error{
			func(_ context.Context, v int) error {
				g[v]++
				return nil
			},
		},
	}
	k, err := New(c)
	require.NoError(t, err)
	defer k.Close()

	require.NoError(t, k.Run(context.Background()))
	require.Equal(t, target, g)
}

func TestKernel_RejectsEmptyContract(t *testing.T) {
	_, err := New(Contract{N: 3})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestKernel_MultiStepAdvanceOrdering(t *testing.T) {
	n := 3
	stage := make([]int, n)
	done := make([]bool, n)

	c := Contract{
		N: n,
		Forbidden: []func(int) bool{
			func(v int) bool { return !done[v] },
		},
		AdvanceSteps: []func(context.Context, int) error{
			func(_ context.Context, v int) error { stage[v] = 1; return nil },
			func(_ context.Context, v int) error {
				require.Equal(t, 1, stage[v])
				stage[v] = 2
				return nil
			},
			func(_ context.Context, v int) error {
				require.Equal(t, 2, stage[v])
				done[v] = true
				return nil
			},
		},
	}
	k, err := New(c)
	require.NoError(t, err)
	defer k.Close()

	require.NoError(t, k.Run(context.Background()))
	for _, d := range done {
		require.True(t, d)
	}
}
