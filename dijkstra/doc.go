// Package dijkstra provides a precise, high-performance implementation of Dijkstra's
// shortest-path algorithm over graphs.DirectedMatrix, the weighted adjacency-matrix
// representation shared with bellmanford and johnson.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction, distance caps, and "impassable" edge thresholds.
//
// When to use:
//
//   - johnson.AllPairs reweights every edge non-negative via johnson.Solve's price
//     function and reruns Dijkstra once per source — the classical Johnson's-algorithm
//     all-pairs construction.
//   - Any other scenario needing guaranteed shortest paths on a static non-negative
//     weighted graphs.DirectedMatrix.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a predecessor slice, so you can rebuild each path.
//   - MaxDistance: aborts exploration beyond a specified distance, saving work in large graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//   - MemoryMode: plan for future "compact" mode that omits predecessor storage (currently Full by default).
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once from the priority queue (V extracts total).
//   - Each edge relaxation may push one new entry (up to E pushes).
//   - Each heap Push/Pop costs O(log N) where N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) to store distance and (optional) predecessor slices.
//   - O(E) worst-case entries in the heap under "lazy decrease-key" strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if you pass a nil *graphs.DirectedMatrix to Dijkstra.
//   - ErrVertexNotFound:
//     Returned if Source is outside [0, n).
//   - ErrNegativeWeight:
//     Returned if any edge in the graph has a negative weight (detected by a fast O(V^2) pre-scan).
//   - ErrBadMaxDistance:
//     Returned (via panic) if you set MaxDistance to a negative value.
//   - ErrBadInfThreshold:
//     Returned (via panic) if you set InfEdgeThreshold to zero or a negative value.
//
// API reference:
//
//	func Dijkstra(
//	    g *graphs.DirectedMatrix,
//	    opts ...Option,
//	) (dist []int64, prev []int, err error)
//
//	  - g:       pointer to a graphs.DirectedMatrix.
//	  - opts:    zero or more functional options, including:
//	      • Source(int):                required, the starting vertex index.
//	      • WithReturnPath():           if set, returns a predecessor slice; otherwise prev == nil.
//	      • WithMaxDistance(int64):     if set, explores only vertices with distance ≤ given value.
//	      • WithInfEdgeThreshold(int64): if set, skips any edge whose weight ≥ threshold.
//	      • WithMemoryMode(MemoryMode): currently Full by default; Compact planned for future.
//	  - dist:    dist[v] = minimal distance from Source to v, or graphs.INF if unreachable.
//	  - prev:    prev[v] = immediate predecessor of v on one shortest path from Source,
//	              or -1 if v is the Source or v is unreachable. Nil if ReturnPath=false.
//	  - err:     one of the sentinel errors above, or nil on success.
//
// Thread safety:
//
//   - Dijkstra itself is not thread-safe if the same *graphs.DirectedMatrix is mutated
//     concurrently. If you need concurrent queries on the same graph, synchronize externally.
package dijkstra
