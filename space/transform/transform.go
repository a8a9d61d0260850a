// Package transform provides bidirectional value transforms between the
// original representation of a search dimension and the warped numeric
// representation handed to a downstream model.
package transform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Transformer maps values between original and warped space. Warped values
// are dense matrices with one row per input value; numeric transforms produce
// a single column, encoders may produce several.
type Transformer interface {
	// Fit learns any state required before Transform. Stateless transforms
	// treat Fit as a no-op.
	Fit(values []any) error

	// Transform maps original-space values into warped space.
	Transform(values []any) (*mat.Dense, error)

	// InverseTransform maps warped-space rows back to original-space values.
	InverseTransform(warped *mat.Dense) ([]any, error)
}

// Identity is the no-op transform.
type Identity struct{}

// Fit is a no-op.
func (Identity) Fit(values []any) error { return nil }

// Transform returns the values unchanged as an n×1 column.
func (Identity) Transform(values []any) (*mat.Dense, error) {
	return column(values, func(v float64) float64 { return v })
}

// InverseTransform returns the first column unchanged.
func (Identity) InverseTransform(warped *mat.Dense) ([]any, error) {
	return fromColumn(warped, func(v float64) float64 { return v })
}

// Log is the natural logarithm transform. Input values must be strictly
// positive; this is a caller obligation and is not checked here.
type Log struct{}

// Fit is a no-op.
func (Log) Fit(values []any) error { return nil }

// Transform returns ln(values) as an n×1 column.
func (Log) Transform(values []any) (*mat.Dense, error) {
	return column(values, math.Log)
}

// InverseTransform returns exp of the first column.
func (Log) InverseTransform(warped *mat.Dense) ([]any, error) {
	return fromColumn(warped, math.Exp)
}

// Log10 is the base-10 logarithm transform. Input values must be strictly
// positive; this is a caller obligation and is not checked here.
type Log10 struct{}

// Fit is a no-op.
func (Log10) Fit(values []any) error { return nil }

// Transform returns log10(values) as an n×1 column.
func (Log10) Transform(values []any) (*mat.Dense, error) {
	return column(values, math.Log10)
}

// InverseTransform returns 10^v for the first column.
func (Log10) InverseTransform(warped *mat.Dense) ([]any, error) {
	return fromColumn(warped, func(v float64) float64 { return math.Pow(10, v) })
}

// column applies f to each numeric value and packs the results into an n×1
// matrix.
func column(values []any, f func(float64) float64) (*mat.Dense, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("transform: %w", ErrEmptyInput)
	}
	out := mat.NewDense(len(values), 1, nil)
	for i, v := range values {
		x, err := asFloat(v)
		if err != nil {
			return nil, err
		}
		out.Set(i, 0, f(x))
	}
	return out, nil
}

// fromColumn applies f to the first column of warped and returns the results
// as original-space values.
func fromColumn(warped *mat.Dense, f func(float64) float64) ([]any, error) {
	if warped == nil {
		return nil, fmt.Errorf("inverse transform: %w", ErrEmptyInput)
	}
	rows, cols := warped.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("inverse transform: %w", ErrEmptyInput)
	}
	out := make([]any, rows)
	for i := 0; i < rows; i++ {
		out[i] = f(warped.At(i, 0))
	}
	return out, nil
}

// asFloat widens any Go numeric value to float64.
func asFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("value %v (%T): %w", v, v, ErrNotNumeric)
	}
}
