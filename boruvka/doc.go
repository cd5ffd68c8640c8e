// Package boruvka computes a minimum spanning forest of a weighted
// undirected graph as an instance of the LLP kernel.
//
// State is a component-leader vector p, where p[v] names v's component
// by its lowest-index member (a union-find root). A component is
// forbidden while it still has an edge leaving it to another component;
// advancing merges it across its cheapest such edge, always adopting
// the smaller leader so p only decreases, the lattice's direction of
// progress.
//
// The advance phase is split into two ordered sub-steps rather than
// having every vertex redundantly rediscover and lock its whole
// component, the way the source does: step one has each vertex cheaply
// propose its own best crossing edge; step two lets only component
// roots reduce their members' proposals and perform the union. This
// keeps the expensive component scan and the union-find mutation off
// the hot path for every non-root vertex.
package boruvka
