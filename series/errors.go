package series

import "errors"

var (
	// ErrDimensions is returned when a transform receives input columns of the
	// wrong count or length.
	ErrDimensions = errors.New("series: input dimension mismatch")

	// ErrDegenerate is returned when fitting data leaves a transform undefined,
	// e.g. a zero standard deviation.
	ErrDegenerate = errors.New("series: degenerate transform data")
)
