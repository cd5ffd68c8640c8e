// Package llp implements the Lattice-Linear Predicate kernel: a generic
// monotone fixed-point driver over a product lattice indexed by
// [0, n).
//
// An algorithm instance supplies a Contract — an eligibility predicate,
// one or more forbidden predicates, and a sequence of ordered advance
// sub-steps — and the Kernel repeatedly (a) identifies in parallel every
// index whose local state violates its invariant, and (b) advances those
// indices by one monotone step, until no index is forbidden.
//
// The default outer loop is:
//
//	repeat:
//	  hasForb ← collectForbidden(0, L)
//	  if hasForb: advance(L)
//	until ¬hasForb
//
// Instances needing an inner fixed point or a custom phase sequence (see
// the fastcomp package) hold a *Kernel and drive CollectForbidden/Advance
// themselves instead of calling Run.
package llp
