// Package lattice is a library of parallel graph and array algorithms
// built on a single unifying abstraction: the Lattice-Linear Predicate
// (LLP) kernel.
//
// The kernel drives a family of algorithms — reduction, prefix-sum,
// Bellman-Ford shortest paths, Johnson's price function, parallel
// connected components by pointer-jumping, parallel Boruvka MST, and
// parallel Gale-Shapley stable matching — as instances of one monotone
// fixed-point iteration over a product lattice.
//
// Under the hood, everything is organized under subpackages:
//
//	llp/         — the generic orchestrator: collectForbidden / advance
//	internal/executor/ — bounded worker pool, invoke-all-and-join
//	internal/idxset/   — concurrent bitset index sets
//	graphs/      — weighted directed/undirected graph value types
//	reduce/, prefixsum/, bellmanford/, johnson/, fastcomp/ — algorithm instances
//	boruvka/, galeshapley/ — conformance examples of the same interface
//	loader/      — text-format loaders for arrays, graphs, matching problems
//	cmd/llp/     — the algorithm-name + input-file dispatcher
//	dijkstra/    — single-source shortest paths over graphs.DirectedMatrix,
//	  backing johnson/'s all-pairs construction
//
//	go get github.com/llp-go/lattice
package lattice
