package observation

import "errors"

var (
	// ErrInputDims is returned when an operation needs a different number of
	// input dimensions, usually exactly one.
	ErrInputDims = errors.New("observation: unsupported input dimensions")

	// ErrNoData is returned when an operation would leave no observations.
	ErrNoData = errors.New("observation: no data")

	// ErrEmptyRange is returned for intervals with start >= end.
	ErrEmptyRange = errors.New("observation: empty range")

	// ErrLength is returned for inputs of mismatched lengths.
	ErrLength = errors.New("observation: length mismatch")

	// ErrInvalidValue is returned for out-of-domain arguments such as
	// non-finite inputs, negative counts or out-of-range indices.
	ErrInvalidValue = errors.New("observation: invalid value")

	// ErrUnknownPrediction is returned when reading back an unregistered
	// prediction.
	ErrUnknownPrediction = errors.New("observation: unknown prediction")
)
