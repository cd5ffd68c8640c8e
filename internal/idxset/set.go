package idxset

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

const stripeCount = 32

// Set is a bitset over [0, n) safe for concurrent Set calls on distinct
// bits. Test, Count, IsEmpty, and the iterator are not safe to call
// concurrently with Set; callers must only use them after a join barrier.
type Set struct {
	n       int
	bits    *bitset.BitSet
	stripes [stripeCount]sync.Mutex
}

// New returns a Set over [0, n).
func New(n int) *Set {
	return &Set{n: n, bits: bitset.New(uint(n))}
}

// Len returns n, the size of the index domain.
func (s *Set) Len() int { return s.n }

// Clear resets every bit to unset.
func (s *Set) Clear() {
	s.bits.ClearAll()
}

// Set marks index i as present. Safe for concurrent use by many callers
// operating on distinct (or the same) indices.
//
// The stripe key is derived from the 64-bit word index (i>>6), not i
// itself: bitset packs bits into uint64 words and Set does a plain
// non-atomic read-modify-write of the whole word, so two indices sharing
// a word must serialize against each other even though they're distinct
// bits.
func (s *Set) Set(i int) {
	stripe := &s.stripes[uint(i>>6)%stripeCount]
	stripe.Lock()
	s.bits.Set(uint(i))
	stripe.Unlock()
}

// Test reports whether index i is present.
func (s *Set) Test(i int) bool {
	return s.bits.Test(uint(i))
}

// Count returns the number of set bits.
func (s *Set) Count() int {
	return int(s.bits.Count())
}

// IsEmpty reports whether no bit is set.
func (s *Set) IsEmpty() bool {
	return s.bits.None()
}

// Each calls fn once for every set bit, in ascending order.
func (s *Set) Each(fn func(i int)) {
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		fn(int(i))
	}
}

// Slice returns the set bits as a sorted []int.
func (s *Set) Slice() []int {
	out := make([]int, 0, s.Count())
	s.Each(func(i int) { out = append(out, i) })
	return out
}

// NextPowerOfTwo returns the smallest power of two >= n (1 if n <= 1).
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
