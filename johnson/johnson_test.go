package johnson

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/llp-go/lattice/graphs"
)

func buildDAG(t *testing.T) *graphs.DirectedMatrix {
	g, err := graphs.NewDirectedMatrix(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 10))
	require.NoError(t, g.AddEdge(0, 2, 5))
	require.NoError(t, g.AddEdge(1, 2, -2))
	require.NoError(t, g.AddEdge(2, 3, 3))
	return g
}

func TestSolve_FeasiblePotential(t *testing.T) {
	g := buildDAG(t)
	price, ok, err := Solve(context.Background(), g)
	require.NoError(t, err)
	require.True(t, ok)

	for u := 0; u < g.NumVertices(); u++ {
		for _, arc := range g.Children(u) {
			require.GreaterOrEqual(t, arc.Weight+price[arc.To]-price[u], int64(0))
		}
	}
}

func TestSolve_NegativeCycleDetected(t *testing.T) {
	g, err := graphs.NewDirectedMatrix(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, -1))
	require.NoError(t, g.AddEdge(2, 1, -1))

	_, ok, err := Solve(context.Background(), g)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAllPairs_MatchesExpectedDistances(t *testing.T) {
	g := buildDAG(t)
	dist, ok, err := AllPairs(context.Background(), g)
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, []int64{0, 10, 5, 8}, dist[0])
	require.Equal(t, []int64{graphs.INF, 0, -2, 1}, dist[1])
	require.Equal(t, []int64{graphs.INF, graphs.INF, 0, 3}, dist[2])
	require.Equal(t, []int64{graphs.INF, graphs.INF, graphs.INF, 0}, dist[3])
}

func TestAllPairs_NegativeCycleReportsNotOK(t *testing.T) {
	g, err := graphs.NewDirectedMatrix(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, -1))
	require.NoError(t, g.AddEdge(2, 1, -1))

	dist, ok, err := AllPairs(context.Background(), g)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, dist)
}
