package transform

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// OneHotEncoder maps category labels to one-hot indicator rows. It is a
// two-phase transformer: Fit learns the label ordering, Transform and
// InverseTransform require a fitted encoder.
//
// Labels are kept in first-occurrence order, so the one-hot column layout
// follows the order the categories were declared in.
type OneHotEncoder struct {
	classes []any
	index   map[any]int
	fitted  bool
}

// NewOneHotEncoder returns an unfitted encoder.
func NewOneHotEncoder() *OneHotEncoder {
	return &OneHotEncoder{index: make(map[any]int)}
}

// Fit learns the label ordering from values. Duplicate labels collapse onto
// their first occurrence. Refitting replaces the previous state.
func (e *OneHotEncoder) Fit(values []any) error {
	if len(values) == 0 {
		return fmt.Errorf("one-hot fit: %w", ErrEmptyInput)
	}
	e.classes = e.classes[:0]
	e.index = make(map[any]int, len(values))
	for _, v := range values {
		if _, ok := e.index[v]; ok {
			continue
		}
		e.index[v] = len(e.classes)
		e.classes = append(e.classes, v)
	}
	e.fitted = true
	return nil
}

// Classes returns the fitted labels in column order.
func (e *OneHotEncoder) Classes() []any {
	out := make([]any, len(e.classes))
	copy(out, e.classes)
	return out
}

// Transform maps labels to an n×k matrix of indicator rows, one column per
// fitted class and exactly one 1 per row. Labels not seen during Fit are a
// precondition violation and return ErrUnknownLabel.
func (e *OneHotEncoder) Transform(values []any) (*mat.Dense, error) {
	if !e.fitted {
		return nil, fmt.Errorf("one-hot transform: %w", ErrNotFitted)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("one-hot transform: %w", ErrEmptyInput)
	}
	out := mat.NewDense(len(values), len(e.classes), nil)
	for i, v := range values {
		j, ok := e.index[v]
		if !ok {
			return nil, fmt.Errorf("one-hot transform: label %v: %w", v, ErrUnknownLabel)
		}
		out.Set(i, j, 1)
	}
	return out, nil
}

// InverseTransform maps indicator rows back to labels by taking the argmax of
// each row. Rows that are not exact one-hot vectors (e.g. model output in
// warped space) still resolve to the most strongly indicated class.
func (e *OneHotEncoder) InverseTransform(warped *mat.Dense) ([]any, error) {
	if !e.fitted {
		return nil, fmt.Errorf("one-hot inverse transform: %w", ErrNotFitted)
	}
	if warped == nil {
		return nil, fmt.Errorf("one-hot inverse transform: %w", ErrEmptyInput)
	}
	rows, cols := warped.Dims()
	if rows == 0 || cols != len(e.classes) {
		return nil, fmt.Errorf("one-hot inverse transform: want %d columns, got %d", len(e.classes), cols)
	}
	out := make([]any, rows)
	for i := 0; i < rows; i++ {
		best := 0
		for j := 1; j < cols; j++ {
			if warped.At(i, j) > warped.At(i, best) {
				best = j
			}
		}
		out[i] = e.classes[best]
	}
	return out, nil
}

// LabelEncoder maps category labels to their fitted index as an n×1 column.
// Like OneHotEncoder it must be fitted before use.
type LabelEncoder struct {
	classes []any
	index   map[any]int
	fitted  bool
}

// NewLabelEncoder returns an unfitted encoder.
func NewLabelEncoder() *LabelEncoder {
	return &LabelEncoder{index: make(map[any]int)}
}

// Fit learns the label ordering from values, first occurrence first.
func (e *LabelEncoder) Fit(values []any) error {
	if len(values) == 0 {
		return fmt.Errorf("label fit: %w", ErrEmptyInput)
	}
	e.classes = e.classes[:0]
	e.index = make(map[any]int, len(values))
	for _, v := range values {
		if _, ok := e.index[v]; ok {
			continue
		}
		e.index[v] = len(e.classes)
		e.classes = append(e.classes, v)
	}
	e.fitted = true
	return nil
}

// Transform maps each label to its fitted index.
func (e *LabelEncoder) Transform(values []any) (*mat.Dense, error) {
	if !e.fitted {
		return nil, fmt.Errorf("label transform: %w", ErrNotFitted)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("label transform: %w", ErrEmptyInput)
	}
	out := mat.NewDense(len(values), 1, nil)
	for i, v := range values {
		j, ok := e.index[v]
		if !ok {
			return nil, fmt.Errorf("label transform: label %v: %w", v, ErrUnknownLabel)
		}
		out.Set(i, 0, float64(j))
	}
	return out, nil
}

// InverseTransform maps indices in the first column back to labels. Indices
// are rounded to the nearest class and must be in range.
func (e *LabelEncoder) InverseTransform(warped *mat.Dense) ([]any, error) {
	if !e.fitted {
		return nil, fmt.Errorf("label inverse transform: %w", ErrNotFitted)
	}
	if warped == nil {
		return nil, fmt.Errorf("label inverse transform: %w", ErrEmptyInput)
	}
	rows, cols := warped.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("label inverse transform: %w", ErrEmptyInput)
	}
	out := make([]any, rows)
	for i := 0; i < rows; i++ {
		j := int(warped.At(i, 0) + 0.5)
		if j < 0 || j >= len(e.classes) {
			return nil, fmt.Errorf("label inverse transform: index %v out of range [0, %d)", warped.At(i, 0), len(e.classes))
		}
		out[i] = e.classes[j]
	}
	return out, nil
}
