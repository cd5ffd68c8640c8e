// Package fastcomp computes the connected components of an undirected
// graph, given as a DirectedMatrix that holds both u->v and v->u for
// every edge, as an instance of the LLP kernel, using a
// rooted-tree-then-star union structure rather than a plain union-find.
// Neighbors are read from Parents (incoming arcs) only, so on a matrix
// that lacks the reverse of some arc the result is not in general its
// weakly-connected components.
//
// Every vertex v starts as its own parent. The kernel alternates two
// phases: growing parent pointers toward the largest parent value
// reachable in one hop (vmax, then hooking each root to the best vmax
// in its own component), and collapsing every tree to a one-level star
// by repeated path halving until no parent still points through a
// grandparent.
//
// Unlike the other algorithms in this module, fastcomp drives its own
// outer loop instead of Kernel.Run: its advance phase needs an inner
// fixed point (the star-collapse) that the generic single-barrier
// Advance cannot express, so Solve calls Kernel.CollectForbidden (for
// both forbidden kinds) and Kernel.Advance itself, and runs the
// star-collapse passes on a separate executor pool, instead of calling
// Kernel.Run.
package fastcomp
