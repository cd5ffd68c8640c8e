// Package idxset provides a compact, concurrency-safe set of integers in
// [0, n) supporting clear, set, test, cardinality, emptiness, and
// ascending iteration over set bits.
//
// Set is called from many workers concurrently during collectForbidden;
// concurrent Set calls on distinct bits produce the correct union. The
// underlying storage is github.com/bits-and-blooms/bitset, guarded by a
// small number of striped mutexes rather than one global lock, so that
// workers touching disjoint bit ranges rarely contend.
package idxset
