// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// kernel's own graphs.DirectedMatrix representation.
//
// Dijkstra computes the minimum-cost path from a single source vertex to
// all other reachable vertices in a graph with non-negative edge weights.
// The algorithm maintains a priority queue of vertices to explore and
// relaxes edges in increasing order of distance from the source vertex.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	   • Each vertex is extracted from the priority queue at most once (V extracts).
//	   • Each edge relaxation may push into the priority queue (up to E pushes).
//	   • Each heap operation (push/pop) costs O(log V) or O(log (V+E)), simplified to O(log V).
//	– Space: O(V + E)
//	   • O(V) to store distance and predecessor slices.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– Source:           index of the starting vertex (must be in [0, n)).
//	– ReturnPath:       if true, return the predecessor slice for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source index is outside [0, n).
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//
// Example usage:
//
//	// Compute distances and predecessors from vertex 0:
//	dist, prev, err := Dijkstra(
//	    g,
//	    Source(0),
//	    WithReturnPath(),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Distance to 1: %d, parent: %d\n", dist[1], prev[1])
package dijkstra

import (
	"errors"

	"github.com/llp-go/lattice/graphs"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *graphs.DirectedMatrix was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source index is outside [0, n).
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// MemoryMode controls how predecessor information is stored during Dijkstra's execution.
//
// Note: Currently only MemoryModeFull is fully supported; MemoryModeCompact is reserved
// for future implementations where predecessor storage is minimized and paths are
// reconstructed via repeated partial computation.
type MemoryMode int

const (
	// MemoryModeFull stores all predecessors to allow direct path recovery.
	MemoryModeFull MemoryMode = iota

	// MemoryModeCompact reduces memory footprint; requires external path derivation.
	// At present, MemoryModeCompact does not alter behavior (equivalent to Full).
	MemoryModeCompact
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex index (must be in [0, n)).
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is graphs.INF (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is graphs.INF (no obstacles).
type Options struct {
	Source           int        // The index of the source vertex
	MemoryMode       MemoryMode // Controls how predecessors are stored (Full or Compact)
	ReturnPath       bool       // Whether to return the predecessor slice
	MaxDistance      int64      // Maximum distance to explore
	InfEdgeThreshold int64      // Weight at or above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMemoryMode sets the memory mode for storing predecessor information.
func WithMemoryMode(mode MemoryMode) Option {
	return func(o *Options) {
		o.MemoryMode = mode
	}
}

// Source sets the Source field of Options to the given vertex index.
// Must be called to specify the starting vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
// If false (default), the predecessor slice is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values cause ErrBadMaxDistance.
// Default (if not set) is graphs.INF (no cap).
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			// In Go, panic in Option constructors is acceptable for invalid arguments.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Edges with weight ≥ threshold are skipped entirely.
// Must pass a positive value; zero or negative cause ErrBadInfThreshold.
// Default (if not set) is graphs.INF (no edges treated as impassable).
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given source vertex. Use this as a starting point for further
// functional-options overrides.
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		MemoryMode:       MemoryModeFull,
		ReturnPath:       false,
		MaxDistance:      graphs.INF,
		InfEdgeThreshold: graphs.INF,
	}
}
