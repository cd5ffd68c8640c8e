package reduce

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolve_TenElementSeed(t *testing.T) {
	a := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	got, err := Solve(context.Background(), a)
	require.NoError(t, err)
	require.Equal(t, []int64{55, 37, 18, 34, 3, 7, 11, 15, 19}, got)
}

func TestSolve_EightElementSeed(t *testing.T) {
	a := []int64{1, 2, 3, 4, 5, 6, 7, 8}
	got, err := Solve(context.Background(), a)
	require.NoError(t, err)
	require.Equal(t, []int64{36, 10, 26, 3, 7, 11, 15}, got)
}

func TestSolve_EmptyInput(t *testing.T) {
	got, err := Solve(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSolve_SingleElement(t *testing.T) {
	got, err := Solve(context.Background(), []int64{42})
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestTree_OddLengthDoesNotPanic(t *testing.T) {
	a := make([]int64, 7)
	for i := range a {
		a[i] = 1
	}
	tree, err := Tree(context.Background(), a)
	require.NoError(t, err)
	require.Len(t, tree, 6) // n-1
}

func TestTree_EvenLengthNoPadding(t *testing.T) {
	a := make([]int64, 6)
	for i := range a {
		a[i] = 1
	}
	tree, err := Tree(context.Background(), a)
	require.NoError(t, err)
	require.Len(t, tree, 5)
	require.EqualValues(t, 6, tree[0])
}
