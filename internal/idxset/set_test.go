package idxset

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet_ConcurrentSetUnion(t *testing.T) {
	s := New(1000)
	var wg sync.WaitGroup
	for i := 0; i < 1000; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Set(i)
		}()
	}
	wg.Wait()
	require.Equal(t, 1000, s.Count())
	require.False(t, s.IsEmpty())
}

func TestSet_ClearAndTest(t *testing.T) {
	s := New(10)
	s.Set(3)
	s.Set(7)
	require.True(t, s.Test(3))
	require.False(t, s.Test(4))
	s.Clear()
	require.True(t, s.IsEmpty())
}

func TestSet_EachAscending(t *testing.T) {
	s := New(10)
	for _, i := range []int{7, 1, 4} {
		s.Set(i)
	}
	var got []int
	s.Each(func(i int) { got = append(got, i) })
	require.Equal(t, []int{1, 4, 7}, got)
	require.Equal(t, []int{1, 4, 7}, s.Slice())
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 7: 8, 8: 8, 9: 16}
	for in, want := range cases {
		require.Equal(t, want, NextPowerOfTwo(in))
	}
}
