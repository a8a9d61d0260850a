package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericRoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		transformer Transformer
		values      []any
	}{
		{
			name:        "identity",
			transformer: Identity{},
			values:      []any{-2.5, 0.0, 1.0, 3.75},
		},
		{
			name:        "log",
			transformer: Log{},
			values:      []any{0.001, 1.0, 2.718281828, 1000.0},
		},
		{
			name:        "log10",
			transformer: Log10{},
			values:      []any{0.01, 1.0, 10.0, 12345.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.transformer.Fit(tt.values))

			warped, err := tt.transformer.Transform(tt.values)
			require.NoError(t, err)

			rows, cols := warped.Dims()
			assert.Equal(t, len(tt.values), rows)
			assert.Equal(t, 1, cols)

			back, err := tt.transformer.InverseTransform(warped)
			require.NoError(t, err)
			require.Len(t, back, len(tt.values))
			for i, v := range tt.values {
				assert.InDelta(t, v.(float64), back[i].(float64), 1e-9)
			}
		})
	}
}

func TestLogTransformValues(t *testing.T) {
	warped, err := Log{}.Transform([]any{math.E})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, warped.At(0, 0), 1e-12)

	warped, err = Log10{}.Transform([]any{100.0})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, warped.At(0, 0), 1e-12)
}

func TestNumericTransformWidensIntegers(t *testing.T) {
	warped, err := Identity{}.Transform([]any{1, int64(2), uint8(3)})
	require.NoError(t, err)
	assert.Equal(t, 1.0, warped.At(0, 0))
	assert.Equal(t, 2.0, warped.At(1, 0))
	assert.Equal(t, 3.0, warped.At(2, 0))
}

func TestNumericTransformErrors(t *testing.T) {
	_, err := Identity{}.Transform([]any{"not a number"})
	assert.ErrorIs(t, err, ErrNotNumeric)

	_, err = Log{}.Transform(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Identity{}.InverseTransform(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}
