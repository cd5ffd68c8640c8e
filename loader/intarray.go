package loader

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
)

// LoadIntArray reads a declared-length flat integer array: a first
// token giving n, followed by exactly n integer tokens. Any token
// beyond the n-th is rejected.
func LoadIntArray(r io.Reader) ([]int64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		return nil, errors.Wrap(ErrEmptyInput, "loader.LoadIntArray")
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil || n < 0 {
		return nil, errors.Wrapf(ErrInvalidCount, "loader.LoadIntArray: declared size %q", sc.Text())
	}

	arr := make([]int64, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, errors.Wrapf(ErrTruncatedInput, "loader.LoadIntArray: expected %d integers, got %d", n, i)
		}
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "loader.LoadIntArray: element %d", i)
		}
		arr[i] = v
	}
	if sc.Scan() {
		return nil, errors.Wrap(ErrTrailingData, "loader.LoadIntArray")
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "loader.LoadIntArray")
	}
	return arr, nil
}

// LoadIntArrayFile opens path and delegates to LoadIntArray.
func LoadIntArrayFile(path string) ([]int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "loader.LoadIntArrayFile")
	}
	defer f.Close()
	return LoadIntArray(f)
}
