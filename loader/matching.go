package loader

import (
	"bufio"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/llp-go/lattice/galeshapley"
)

// LoadMatchingProblem reads a stable-matching problem given as a size n
// followed by n lines of n integers (men's preference permutations) and
// then n more lines of n integers (women's preference permutations).
func LoadMatchingProblem(r io.Reader) (*galeshapley.Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n, err := scanNonNegativeInt(sc, "side size")
	if err != nil {
		return nil, errors.Wrap(err, "loader.LoadMatchingProblem")
	}

	menPrefs, err := scanPreferenceBlock(sc, n)
	if err != nil {
		return nil, errors.Wrap(err, "loader.LoadMatchingProblem: men's preferences")
	}
	womenPrefs, err := scanPreferenceBlock(sc, n)
	if err != nil {
		return nil, errors.Wrap(err, "loader.LoadMatchingProblem: women's preferences")
	}
	if sc.Scan() {
		return nil, errors.Wrap(ErrTrailingData, "loader.LoadMatchingProblem")
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "loader.LoadMatchingProblem")
	}

	problem, err := galeshapley.NewProblem(menPrefs, womenPrefs)
	if err != nil {
		return nil, errors.Wrap(err, "loader.LoadMatchingProblem")
	}
	return problem, nil
}

// LoadMatchingProblemFile opens path and delegates to LoadMatchingProblem.
func LoadMatchingProblemFile(path string) (*galeshapley.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "loader.LoadMatchingProblemFile")
	}
	defer f.Close()
	return LoadMatchingProblem(f)
}

func scanPreferenceBlock(sc *bufio.Scanner, n int) ([][]int, error) {
	prefs := make([][]int, n)
	for i := 0; i < n; i++ {
		row := make([]int, n)
		for j := 0; j < n; j++ {
			v, err := scanInt(sc)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d, entry %d", i, j)
			}
			row[j] = v
		}
		prefs[i] = row
	}
	return prefs, nil
}
