package transform

import "errors"

// Sentinel errors reported by transformers.
var (
	// ErrNotFitted is returned when a stateful transformer is used before Fit.
	ErrNotFitted = errors.New("transformer is not fitted")

	// ErrUnknownLabel is returned when Transform sees a label that was not
	// present during Fit.
	ErrUnknownLabel = errors.New("label was not seen during fit")

	// ErrNotNumeric is returned when a numeric transform receives a value it
	// cannot widen to float64.
	ErrNotNumeric = errors.New("value is not numeric")

	// ErrEmptyInput is returned when a transform receives no values.
	ErrEmptyInput = errors.New("no values to transform")
)
