// Package prefixsum computes inclusive prefix sums over a 1-D integer
// array as an instance of the LLP kernel, built on top of the reduce
// package's summation tree.
//
// The array is padded to the next power of two N. A tree G of size
// 2N-1 is filled top-down: G[0]=0, and every other node's value is
// derived from its parent plus either the reduce summation tree S (for
// internal right children) or the padded array itself (for leaves).
// The standard collectForbidden/advance outer loop is used rather than
// the source's per-index spin loop inside advanceStep, since both are
// equivalent once every neighbor referenced by the ensure condition is
// at its own fixed point, and the outer loop needs no cross-goroutine
// busy-waiting to get there.
package prefixsum
