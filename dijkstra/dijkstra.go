// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// kernel's weighted graphs.DirectedMatrix, the same representation
// bellmanford and johnson operate over.
//
// Dijkstra computes the minimum-cost path from a single source vertex to
// all other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap
// priority queue, relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation (Push/Pop) costs O(log N), where N ≤ V + E. Simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for distance and predecessor slices.
//   - O(E) worst-case for entries in the heap under "lazy-decrease-key".
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of every adjacency-matrix row (O(V^2)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable "wall".
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Relaxation arithmetic goes through graphs.SaturatingAdd so that a chain of
//     graphs.INF-adjacent distances never overflows int64 before saturation reapplies.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/llp-go/lattice/graphs"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in the weighted graph g. It accepts functional options
// to customize behavior (ReturnPath, MaxDistance, InfEdgeThreshold, etc.).
//
// Returns:
//
//   - dist: distance from the source to each vertex index (graphs.INF if unreachable).
//   - prev: optional predecessor slice if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For unreachable or source v, prev[v] == -1.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be a valid index into g (ErrVertexNotFound).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// Options customization:
//
//   - WithReturnPath(): return predecessor slice.
//   - WithMaxDistance(x): vertices with distance > x are not explored (x ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are skipped (t > 0).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *graphs.DirectedMatrix, opts ...Option) ([]int64, []int, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions(0) // default options
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 3) Validate Source is a valid index into the graph
	V := g.NumVertices()
	if cfg.Source < 0 || cfg.Source >= V {
		return nil, nil, ErrVertexNotFound
	}

	// 4) Pre-scan all edges to detect negative weights. Fail fast with ErrNegativeWeight.
	for u := 0; u < V; u++ {
		for _, arc := range g.Children(u) {
			if arc.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d->%d weight=%d", ErrNegativeWeight, u, arc.To, arc.Weight)
			}
		}
	}

	// 5) dist holds the current best-known distance from Source to each vertex.
	dist := make([]int64, V)

	// If ReturnPath or MemoryModeFull, allocate prev to track predecessors.
	// Otherwise prev remains nil to save memory.
	var prev []int
	if cfg.ReturnPath || cfg.MemoryMode == MemoryModeFull {
		prev = make([]int, V)
	}

	// visited marks whether we have finalized the shortest distance for a vertex.
	visited := make([]bool, V)

	// Initialize a priority queue (min-heap) for (vertex, distance) pairs.
	pq := make(nodePQ, 0, V) // capacity V is a reasonable starting point

	// 6) Initialize runner with all slices and the heap.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    dist,
		prev:    prev,
		visited: visited,
		pq:      pq,
	}

	// 7) Initialize algorithm state and run main loop.
	r.init()
	r.process()

	// 8) Once done, if ReturnPath is false, return prev as nil.
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *graphs.DirectedMatrix // The input graph; read-only within Dijkstra.
	options Options                // Configuration options (Source, thresholds, etc.).
	dist    []int64                // dist[v] = current best distance from Source.
	prev    []int                  // prev[v] = predecessor on the shortest path, -1 if none.
	visited []bool                 // visited[v] tracks whether v's distance is finalized.
	pq      nodePQ                 // Min-heap of *nodeItem for lazy priority queue.
}

// init sets up initial distances, predecessors, visited flags, and pushes Source=0 into the heap.
func (r *runner) init() {
	// 1) Initialize dist[v] = graphs.INF for all v, visited[v] = false, prev[v] = -1.
	for v := range r.dist {
		r.dist[v] = graphs.INF
		r.visited[v] = false
		if r.prev != nil {
			r.prev[v] = -1
		}
	}

	// 2) Distance to the source is zero.
	r.dist[r.options.Source] = 0

	// 3) Initialize the priority queue. heap.Init ensures the internal heap invariants hold.
	heap.Init(&r.pq)

	// 4) Push the source vertex with distance 0 onto the heap.
	heap.Push(&r.pq, &nodeItem{
		id:   r.options.Source,
		dist: 0,
	})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance (no need to explore farther).
func (r *runner) process() {
	cfg := r.options
	var u int
	var d int64
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u = item.id
		d = item.dist

		// 2) If this vertex was already visited (finalized), skip stale heap entry.
		if r.visited[u] {
			continue
		}

		// 3) If this distance exceeds MaxDistance, stop exploring any further vertices.
		if d > cfg.MaxDistance {
			break
		}

		// 4) Mark u as visited. Its shortest distance d is now final.
		r.visited[u] = true

		// 5) Relax all outgoing edges from u.
		r.relax(u)
	}
}

// relax examines each edge outgoing from vertex u and attempts to improve distances to its neighbors.
// It respects the InfEdgeThreshold and ignores any edge weight ≥ that threshold (treating them as impassable).
// If a shorter path to neighbor v is found (newDist < dist[v]), dist[v], prev[v] are updated and a new
// heap entry is pushed.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) {
	for _, arc := range r.g.Children(u) {
		v := arc.To
		w := arc.Weight

		// Skip any edge marked as impassable by InfEdgeThreshold.
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		// Compute candidate distance if we go from Source → ... → u → v, saturating
		// against graphs.INF instead of overflowing.
		newDist := graphs.SaturatingAdd(r.dist[u], w)

		// If newDist exceeds MaxDistance, skip relaxing this neighbor.
		if newDist > r.options.MaxDistance {
			continue
		}

		// If newDist is not strictly better than the current dist[v], skip.
		// Note: we use "<" rather than "≤" to avoid pushing duplicates when distances are equal.
		if newDist >= r.dist[v] {
			continue
		}

		// We have found a strictly shorter path to v. Update dist[v].
		r.dist[v] = newDist

		// If ReturnPath is requested, record u as the predecessor of v.
		if r.prev != nil {
			r.prev[v] = u
		}

		// Push the updated distance for v onto the heap.
		// This is the "lazy-decrease-key" pattern: we do not remove old entries,
		// but instead ignore them later when popped if visited[v] is already true.
		heap.Push(&r.pq, &nodeItem{
			id:   v,
			dist: newDist,
		})
	}
}

// nodeItem represents a vertex and its current distance from the source.
// It is stored in the priority queue to order vertices by increasing distance.
type nodeItem struct {
	id   int   // vertex index
	dist int64 // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
// We use the "lazy-decrease-key" approach: when we find a shorter distance to an existing
// vertex v, we push a new *nodeItem onto the heap. The outdated entry remains but is ignored
// when popped (checked via visited[v]).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
