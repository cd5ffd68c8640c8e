package galeshapley

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolve_TwoByTwoMenOptimal(t *testing.T) {
	problem, err := NewProblem(
		[][]int{{0, 1}, {1, 0}},
		[][]int{{0, 1}, {1, 0}},
	)
	require.NoError(t, err)

	menMatching, womenMatching, err := Solve(context.Background(), problem)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, menMatching)
	require.Equal(t, []int{0, 1}, womenMatching)
	require.True(t, IsStable(problem, menMatching))
}

func TestSolve_SinglePair(t *testing.T) {
	problem, err := NewProblem([][]int{{0}}, [][]int{{0}})
	require.NoError(t, err)

	menMatching, _, err := Solve(context.Background(), problem)
	require.NoError(t, err)
	require.Equal(t, []int{0}, menMatching)
}

func TestSolve_ClassicThreeByThree(t *testing.T) {
	// Men all prefer woman 0 first; woman 0 prefers man 2 most.
	problem, err := NewProblem(
		[][]int{{0, 1, 2}, {0, 2, 1}, {0, 1, 2}},
		[][]int{{2, 0, 1}, {0, 1, 2}, {0, 1, 2}},
	)
	require.NoError(t, err)

	menMatching, womenMatching, err := Solve(context.Background(), problem)
	require.NoError(t, err)
	require.True(t, IsStable(problem, menMatching))

	for man, w := range menMatching {
		require.NotEqual(t, exhausted, w)
		require.Equal(t, man, womenMatching[w])
	}
}

func TestSolve_IsBijective(t *testing.T) {
	problem, err := NewProblem(
		[][]int{{1, 0, 2, 3}, {2, 1, 3, 0}, {0, 3, 1, 2}, {3, 2, 0, 1}},
		[][]int{{2, 0, 3, 1}, {1, 3, 0, 2}, {0, 2, 1, 3}, {3, 1, 2, 0}},
	)
	require.NoError(t, err)

	menMatching, _, err := Solve(context.Background(), problem)
	require.NoError(t, err)
	require.True(t, IsStable(problem, menMatching))

	seen := make(map[int]bool)
	for _, w := range menMatching {
		require.False(t, seen[w])
		seen[w] = true
	}
	require.Len(t, seen, 4)
}

func TestNewProblem_RejectsMalformedPreferences(t *testing.T) {
	_, err := NewProblem([][]int{{0, 0}, {0, 1}}, [][]int{{0, 1}, {0, 1}})
	require.ErrorIs(t, err, ErrMalformedPreferences)
}

func TestNewProblem_RejectsSizeMismatch(t *testing.T) {
	_, err := NewProblem([][]int{{0, 1}, {0, 1}}, [][]int{{0}})
	require.ErrorIs(t, err, ErrMalformedPreferences)
}
