package galeshapley

import "github.com/cockroachdb/errors"

// exhausted marks a man who has proposed past the end of his list, or a
// woman with no current proposer.
const exhausted = -1

// Sentinel errors returned by NewProblem.
var (
	// ErrNonPositiveSize indicates a problem was constructed with n <= 0.
	ErrNonPositiveSize = errors.New("galeshapley: n must be positive")

	// ErrMalformedPreferences indicates a preference list is not a
	// permutation of [0, n).
	ErrMalformedPreferences = errors.New("galeshapley: preference list is not a permutation of [0, n)")
)

// Problem is a stable-matching instance between n men and n women, each
// ranking every member of the other side.
type Problem struct {
	n             int
	menPrefs      [][]int // menPrefs[man][rank] = woman
	womenPrefs    [][]int // womenPrefs[woman][rank] = man
	menRanking    [][]int // menRanking[man][woman] = rank
	womenRanking  [][]int // womenRanking[woman][man] = rank
}

// NewProblem validates menPrefs and womenPrefs (each must be n
// permutations of [0, n)) and returns a ready-to-solve Problem.
func NewProblem(menPrefs, womenPrefs [][]int) (*Problem, error) {
	n := len(menPrefs)
	if n <= 0 {
		return nil, errors.Wrap(ErrNonPositiveSize, "galeshapley.NewProblem")
	}
	if len(womenPrefs) != n {
		return nil, errors.Wrap(ErrMalformedPreferences, "galeshapley.NewProblem: womenPrefs size mismatch")
	}

	menRanking, err := buildRanking(menPrefs, n)
	if err != nil {
		return nil, errors.Wrap(err, "galeshapley.NewProblem: menPrefs")
	}
	womenRanking, err := buildRanking(womenPrefs, n)
	if err != nil {
		return nil, errors.Wrap(err, "galeshapley.NewProblem: womenPrefs")
	}

	return &Problem{
		n:            n,
		menPrefs:     menPrefs,
		womenPrefs:   womenPrefs,
		menRanking:   menRanking,
		womenRanking: womenRanking,
	}, nil
}

func buildRanking(prefs [][]int, n int) ([][]int, error) {
	ranking := make([][]int, n)
	for i, list := range prefs {
		if len(list) != n {
			return nil, ErrMalformedPreferences
		}
		ranking[i] = make([]int, n)
		seen := make([]bool, n)
		for rank, other := range list {
			if other < 0 || other >= n || seen[other] {
				return nil, ErrMalformedPreferences
			}
			seen[other] = true
			ranking[i][other] = rank
		}
	}
	return ranking, nil
}

// N returns the number of men (equivalently, women) in the problem.
func (p *Problem) N() int { return p.n }
