package stats

import "errors"

var (
	// ErrEmptySeries indicates a computation was requested on a series with
	// no observations.
	ErrEmptySeries = errors.New("stats: series must be non-empty")

	// ErrDegenerate indicates a numerically degenerate input, such as zero
	// variance or a zero regression denominator.
	ErrDegenerate = errors.New("stats: numerically degenerate input")

	// ErrInvalidInput indicates input values outside the domain of the
	// requested transform.
	ErrInvalidInput = errors.New("stats: input outside transform domain")
)
