package graphs

import "errors"

// Sentinel errors returned by graph construction and lookup.
var (
	// ErrInvalidVertex indicates a vertex index outside [0, n).
	ErrInvalidVertex = errors.New("graphs: vertex index out of range")

	// ErrNonPositiveSize indicates a graph was constructed with n <= 0.
	ErrNonPositiveSize = errors.New("graphs: number of vertices must be positive")
)

// INF is the saturating sentinel for "no edge" / unreachable. Its value,
// (1<<62)/4 = 2^60, sits far enough below the int64 limit that a
// handful of additions never overflow before saturation is re-applied.
const INF int64 = (1 << 62) / 4

// Arc is a directed, weighted edge endpoint: the neighbor index and the
// weight of the edge reaching or leaving it.
type Arc struct {
	To     int
	Weight int64
}

// SaturatingAdd returns a+b, clamped to [-INF, INF]. Any operand already
// at or beyond INF saturates the result to INF before the addition is even
// attempted, which is what lets Bellman-Ford/Johnson/Dijkstra chain relaxations
// through graphs.INF-valued distances without ever overflowing int64.
func SaturatingAdd(a, b int64) int64 {
	if a >= INF || b >= INF {
		return INF
	}
	sum := a + b
	if sum >= INF {
		return INF
	}
	if sum <= -INF {
		return -INF
	}
	return sum
}
