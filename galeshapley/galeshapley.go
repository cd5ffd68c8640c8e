package galeshapley

import (
	"context"

	"github.com/llp-go/lattice/llp"
)

// Solve computes the men-optimal stable matching for problem. It
// returns menMatching (menMatching[man] = his matched woman) and
// womenMatching (the inverse).
func Solve(ctx context.Context, problem *Problem, opts ...llp.Option) (menMatching, womenMatching []int, err error) {
	n := problem.n
	p := make([]int, n)

	currentPartnerOf := func(woman int) int {
		best := exhausted
		bestRank := n
		for man := 0; man < n; man++ {
			if p[man] < n && problem.menPrefs[man][p[man]] == woman {
				rank := problem.womenRanking[woman][man]
				if best == exhausted || rank < bestRank {
					best = man
					bestRank = rank
				}
			}
		}
		return best
	}

	womanOf := func(man int) int {
		if p[man] >= n {
			return exhausted
		}
		return problem.menPrefs[man][p[man]]
	}

	partnerOfMan := func(man int) int {
		w := womanOf(man)
		if w == exhausted {
			return exhausted
		}
		if currentPartnerOf(w) == man {
			return w
		}
		return exhausted
	}

	forbidden := func(man int) bool {
		if p[man] >= n {
			return false
		}
		currentPartner := partnerOfMan(man)
		currentPartnerRank := n
		if currentPartner != exhausted {
			currentPartnerRank = problem.menRanking[man][currentPartner]
		}
		for rank := 0; rank < currentPartnerRank; rank++ {
			w := problem.menPrefs[man][rank]
			wPartner := currentPartnerOf(w)
			if wPartner == exhausted || problem.womenRanking[w][man] < problem.womenRanking[w][wPartner] {
				return true
			}
		}
		return false
	}

	contract := llp.Contract{
		N: n,
		Forbidden: []func(int) bool{
			forbidden,
		},
		AdvanceSteps: []func(context.Context, int) error{
			func(_ context.Context, man int) error {
				if p[man] < n {
					p[man]++
				}
				return nil
			},
		},
	}

	k, err := llp.New(contract, opts...)
	if err != nil {
		return nil, nil, err
	}
	defer k.Close()

	if err := k.Run(ctx); err != nil {
		return nil, nil, err
	}

	menMatching = make([]int, n)
	for man := 0; man < n; man++ {
		menMatching[man] = partnerOfMan(man)
	}
	womenMatching = make([]int, n)
	for i := range womenMatching {
		womenMatching[i] = exhausted
	}
	for man, w := range menMatching {
		if w != exhausted {
			womenMatching[w] = man
		}
	}
	return menMatching, womenMatching, nil
}

// IsStable reports whether menMatching (paired with problem) has no
// blocking pair, re-deriving the forbidden predicate directly rather
// than trusting Solve's own convergence.
func IsStable(problem *Problem, menMatching []int) bool {
	n := problem.n
	womenPartner := make([]int, n)
	for i := range womenPartner {
		womenPartner[i] = exhausted
	}
	for man, w := range menMatching {
		if w != exhausted {
			womenPartner[w] = man
		}
	}

	for man := 0; man < n; man++ {
		partner := menMatching[man]
		partnerRank := n
		if partner != exhausted {
			partnerRank = problem.menRanking[man][partner]
		}
		for rank := 0; rank < partnerRank; rank++ {
			w := problem.menPrefs[man][rank]
			wPartner := womenPartner[w]
			if wPartner == exhausted || problem.womenRanking[w][man] < problem.womenRanking[w][wPartner] {
				return false
			}
		}
	}
	return true
}
