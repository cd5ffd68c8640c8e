// Command llp dispatches a fixture file to one of the module's
// lattice-linear-predicate kernel algorithms by name and prints the
// result as a table.
//
// Usage:
//
//	llp run <algorithm> <path> [--workers N] [--source V] [--self-loops]
//
// algorithm is one of: reduce, prefixsum, bellmanford, johnson,
// fastcomp, boruvka, galeshapley. Each expects the input file format
// documented in package loader.
package main
