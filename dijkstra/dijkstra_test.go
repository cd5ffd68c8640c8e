// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate correct behavior under various configurations, including
// basic functionality, directed graphs, MaxDistance, InfEdgeThreshold, and edge
// cases such as single-vertex and self-loop graphs.
package dijkstra_test

import (
	"testing"

	"github.com/llp-go/lattice/dijkstra"
	"github.com/llp-go/lattice/graphs"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source(0))
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph when graph is nil, got %v", err)
	}
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	g, err := graphs.NewDirectedMatrix(3)
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(5))
	if err != dijkstra.ErrVertexNotFound {
		t.Fatalf("Expected ErrVertexNotFound, got %v", err)
	}
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g, err := graphs.NewDirectedMatrix(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 1, -5); err != nil {
		t.Fatal(err)
	}
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source(0))
	if err == nil {
		t.Fatal("expected ErrNegativeWeight, got nil")
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: Small graphs, path correctness without and with ReturnPath.
// ------------------------------------------------------------------------

func triangle(t *testing.T) *graphs.DirectedMatrix {
	t.Helper()
	// 0<->1(1), 1<->2(2), 0<->2(5), stored as symmetric directed arcs.
	g, err := graphs.NewDirectedMatrix(3)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range [][3]int64{{0, 1, 1}, {1, 0, 1}, {1, 2, 2}, {2, 1, 2}, {0, 2, 5}, {2, 0, 5}} {
		if err := g.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

func TestDijkstra_Triangle_NoPath(t *testing.T) {
	g := triangle(t)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	if err != nil {
		t.Fatal(err)
	}

	// Distance from 0 to 2 should be 3 via 0->1->2.
	if got, want := dist[2], int64(3); got != want {
		t.Errorf("dist[2] = %d; want %d", got, want)
	}
	if prev != nil {
		t.Errorf("expected nil predecessor slice, got %v", prev)
	}
}

func TestDijkstra_Triangle_WithPath(t *testing.T) {
	g := triangle(t)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	if dist[0] != 0 || dist[1] != 1 || dist[2] != 3 {
		t.Errorf("Unexpected distances: %v", dist)
	}

	if prev[1] != 0 {
		t.Errorf("prev[1] = %d; want %d", prev[1], 0)
	}
	if prev[2] != 1 {
		t.Errorf("prev[2] = %d; want %d", prev[2], 1)
	}
}

func TestDijkstra_ChainWithPath(t *testing.T) {
	// Graph: 0-1-2-3-4, with 3 also reaching 5-6.
	g, err := graphs.NewDirectedMatrix(7)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {3, 5}, {5, 6}} {
		if err := g.AddEdge(e[0], e[1], 1); err != nil {
			t.Fatal(err)
		}
		if err := g.AddEdge(e[1], e[0], 1); err != nil {
			t.Fatal(err)
		}
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	expectedDistances := []int64{0, 1, 2, 3, 4, 4, 5}
	for v, want := range expectedDistances {
		if got := dist[v]; got != want {
			t.Errorf("dist[%d] = %d; want %d", v, got, want)
		}
	}

	if prev[1] != 0 || prev[2] != 1 || prev[3] != 2 {
		t.Errorf("Unexpected predecessors: %v", prev)
	}
}

// ------------------------------------------------------------------------
// 3. Directed Graph Tests: Ensure correct handling of one-way edges.
// ------------------------------------------------------------------------

func TestDijkstra_MediumDirectedGraph(t *testing.T) {
	// Directed graph: 0->1(2), 0->2(1), 2->1(1), 1->3(3), 2->3(5).
	g, err := graphs.NewDirectedMatrix(4)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range [][3]int64{{0, 1, 2}, {0, 2, 1}, {2, 1, 1}, {1, 3, 3}, {2, 3, 5}} {
		if err := g.AddEdge(int(e[0]), int(e[1]), e[2]); err != nil {
			t.Fatal(err)
		}
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	if err != nil {
		t.Fatal(err)
	}

	// Expected: dist[2]=1, dist[1]=2 (via 0->2->1), dist[3]=5 (via 0->2->1->3).
	if dist[2] != 1 {
		t.Errorf("dist[2] = %d; want %d", dist[2], 1)
	}
	if dist[1] != 2 {
		t.Errorf("dist[1] = %d; want %d", dist[1], 2)
	}
	if dist[3] != 5 {
		t.Errorf("dist[3] = %d; want %d", dist[3], 5)
	}
	if prev != nil {
		t.Errorf("expected nil prev, got %v", prev)
	}
}

// ------------------------------------------------------------------------
// 4. MaxDistance Tests: Ensure that vertices with distance > MaxDistance are not explored.
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	// Linear graph: 0-1-2-3, each edge weight 1.
	g, err := graphs.NewDirectedMatrix(4)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}} {
		if err := g.AddEdge(e[0], e[1], 1); err != nil {
			t.Fatal(err)
		}
	}

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxDistance(1))
	if err != nil {
		t.Fatal(err)
	}

	if dist[0] != 0 {
		t.Errorf("dist[0] = %d; want %d", dist[0], 0)
	}
	if dist[1] != 1 {
		t.Errorf("dist[1] = %d; want %d", dist[1], 1)
	}
	if dist[2] != graphs.INF {
		t.Errorf("dist[2] = %d; want %d (unreachable)", dist[2], graphs.INF)
	}
	if dist[3] != graphs.INF {
		t.Errorf("dist[3] = %d; want %d (unreachable)", dist[3], graphs.INF)
	}
}

func TestDijkstra_MaxDistanceZero(t *testing.T) {
	g, err := graphs.NewDirectedMatrix(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 1, 1); err != nil {
		t.Fatal(err)
	}

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxDistance(0))
	if err != nil {
		t.Fatal(err)
	}

	if dist[0] != 0 {
		t.Errorf("dist[0] = %d; want %d", dist[0], 0)
	}
	if dist[1] != graphs.INF {
		t.Errorf("dist[1] = %d; want %d (unreachable)", dist[1], graphs.INF)
	}
}

// ------------------------------------------------------------------------
// 5. InfEdgeThreshold Tests: Ensure "impassable" edges are skipped appropriately.
// ------------------------------------------------------------------------

func TestDijkstra_InfThreshold_DefaultBehavior(t *testing.T) {
	// If InfEdgeThreshold is not set, default is graphs.INF, so no edges are impassable.
	g, err := graphs.NewDirectedMatrix(3)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 1, 10); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(1, 2, 20); err != nil {
		t.Fatal(err)
	}

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	if err != nil {
		t.Fatal(err)
	}

	if dist[2] != 30 {
		t.Errorf("dist[2] = %d; want %d", dist[2], 30)
	}
}

func TestDijkstra_InfThresholdStopsHeavyEdge(t *testing.T) {
	g, err := graphs.NewDirectedMatrix(3)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 1, 2); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(1, 2, 4); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 2, 10); err != nil {
		t.Fatal(err)
	}

	// InfEdgeThreshold=5 makes the direct 0->2 edge (weight 10) impassable.
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(5))
	if err != nil {
		t.Fatal(err)
	}

	// Now the shortest path from 0 to 2 is 0->1->2 with total cost 6.
	if dist[2] != 6 {
		t.Errorf("dist[2] = %d; want %d", dist[2], 6)
	}
}

func TestDijkstra_InfObstacle_WallBlocksVertex(t *testing.T) {
	// 3x3 grid, flattened to index = row*3+col. Row y=1 is a wall of weight-5 edges.
	g, err := graphs.NewDirectedMatrix(9)
	if err != nil {
		t.Fatal(err)
	}
	idx := func(row, col int) int { return row*3 + col }
	link := func(a, b int, w int64) {
		if err := g.AddEdge(a, b, w); err != nil {
			t.Fatal(err)
		}
		if err := g.AddEdge(b, a, w); err != nil {
			t.Fatal(err)
		}
	}
	link(idx(0, 0), idx(0, 1), 1)
	link(idx(0, 0), idx(1, 0), 1)
	link(idx(0, 1), idx(0, 2), 1)
	link(idx(1, 0), idx(2, 0), 1)
	link(idx(1, 1), idx(1, 2), 1)
	link(idx(2, 1), idx(2, 2), 1)

	// Wall: the only edges touching (1,1) are weight-5.
	const threshold = 5
	link(idx(1, 0), idx(1, 1), threshold)
	link(idx(1, 1), idx(1, 2), threshold)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(idx(0, 0)), dijkstra.WithInfEdgeThreshold(threshold))
	if err != nil {
		t.Fatal(err)
	}

	if dist[idx(1, 1)] != graphs.INF {
		t.Errorf("expected (1,1) unreachable (INF), got %d", dist[idx(1, 1)])
	}
}

// ------------------------------------------------------------------------
// 6. Edge Cases: Single vertex, self-loop.
// ------------------------------------------------------------------------

func TestDijkstra_SingleVertex_ReturnsZero(t *testing.T) {
	g, err := graphs.NewDirectedMatrix(1)
	if err != nil {
		t.Fatal(err)
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	if d := dist[0]; d != 0 {
		t.Errorf("dist[0] = %d; want %d", d, 0)
	}
	if p := prev[0]; p != -1 {
		t.Errorf("prev[0] = %d; want -1", p)
	}
}

func TestDijkstra_SelfLoopZeroWeight(t *testing.T) {
	g, err := graphs.NewDirectedMatrix(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 0, 0); err != nil {
		t.Fatal(err)
	}

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	if d := dist[0]; d != 0 {
		t.Errorf("dist[0] = %d; want %d", d, 0)
	}
	if p := prev[0]; p != -1 {
		t.Errorf("prev[0] = %d; want -1", p)
	}
}
