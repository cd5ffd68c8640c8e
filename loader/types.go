package loader

import "github.com/cockroachdb/errors"

// Sentinel errors returned while parsing fixture files.
var (
	// ErrEmptyInput indicates the input had no tokens at all.
	ErrEmptyInput = errors.New("loader: input is empty")

	// ErrTruncatedInput indicates fewer tokens were present than the
	// declared size promised.
	ErrTruncatedInput = errors.New("loader: input ended before the declared size was satisfied")

	// ErrTrailingData indicates extra tokens were found after the
	// declared size was satisfied.
	ErrTrailingData = errors.New("loader: unexpected data after the declared size")

	// ErrMismatchedLengths indicates a destination/weight (or similar
	// paired) line pair disagreed in element count.
	ErrMismatchedLengths = errors.New("loader: paired lines have mismatched lengths")

	// ErrVertexOutOfRange indicates a referenced vertex index fell
	// outside [0, n).
	ErrVertexOutOfRange = errors.New("loader: vertex index out of range")

	// ErrInvalidCount indicates a declared size or count was negative.
	// LoadIntArray and the line-oriented graph loaders also return it
	// for a declared size that is not an integer.
	ErrInvalidCount = errors.New("loader: invalid declared size")
)
