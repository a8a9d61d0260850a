package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestOneHotEncoder(t *testing.T) {
	enc := NewOneHotEncoder()
	require.NoError(t, enc.Fit([]any{"red", "green", "blue"}))
	assert.Equal(t, []any{"red", "green", "blue"}, enc.Classes())

	warped, err := enc.Transform([]any{"green", "red", "green", "blue"})
	require.NoError(t, err)

	rows, cols := warped.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 3, cols)

	// One column per fitted class, exactly one 1 per row.
	want := []struct{ hot int }{{1}, {0}, {1}, {2}}
	for i, w := range want {
		for j := 0; j < cols; j++ {
			if j == w.hot {
				assert.Equal(t, 1.0, warped.At(i, j), "row %d col %d", i, j)
			} else {
				assert.Equal(t, 0.0, warped.At(i, j), "row %d col %d", i, j)
			}
		}
	}

	back, err := enc.InverseTransform(warped)
	require.NoError(t, err)
	assert.Equal(t, []any{"green", "red", "green", "blue"}, back)
}

func TestOneHotEncoderInverseArgmax(t *testing.T) {
	enc := NewOneHotEncoder()
	require.NoError(t, enc.Fit([]any{"a", "b"}))

	// Soft rows, as a model would produce in warped space.
	soft := mat.NewDense(2, 2, []float64{0.9, 0.1, 0.3, 0.7})
	back, err := enc.InverseTransform(soft)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, back)
}

func TestOneHotEncoderPreconditions(t *testing.T) {
	enc := NewOneHotEncoder()

	_, err := enc.Transform([]any{"a"})
	assert.ErrorIs(t, err, ErrNotFitted)

	_, err = enc.InverseTransform(mat.NewDense(1, 1, []float64{1}))
	assert.ErrorIs(t, err, ErrNotFitted)

	require.NoError(t, enc.Fit([]any{"a", "b"}))

	_, err = enc.Transform([]any{"a", "c"})
	assert.ErrorIs(t, err, ErrUnknownLabel)

	_, err = enc.InverseTransform(mat.NewDense(1, 3, []float64{1, 0, 0}))
	assert.Error(t, err, "column count must match fitted classes")
}

func TestOneHotEncoderDuplicateLabels(t *testing.T) {
	enc := NewOneHotEncoder()
	require.NoError(t, enc.Fit([]any{"a", "b", "a", "b"}))
	assert.Equal(t, []any{"a", "b"}, enc.Classes())
}

func TestLabelEncoder(t *testing.T) {
	enc := NewLabelEncoder()
	require.NoError(t, enc.Fit([]any{"low", "mid", "high"}))

	warped, err := enc.Transform([]any{"high", "low", "mid"})
	require.NoError(t, err)

	rows, cols := warped.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 1, cols)
	assert.Equal(t, 2.0, warped.At(0, 0))
	assert.Equal(t, 0.0, warped.At(1, 0))
	assert.Equal(t, 1.0, warped.At(2, 0))

	back, err := enc.InverseTransform(warped)
	require.NoError(t, err)
	assert.Equal(t, []any{"high", "low", "mid"}, back)
}

func TestLabelEncoderErrors(t *testing.T) {
	enc := NewLabelEncoder()

	_, err := enc.Transform([]any{"a"})
	assert.ErrorIs(t, err, ErrNotFitted)

	require.NoError(t, enc.Fit([]any{"a", "b"}))

	_, err = enc.Transform([]any{"z"})
	assert.ErrorIs(t, err, ErrUnknownLabel)

	_, err = enc.InverseTransform(mat.NewDense(1, 1, []float64{5}))
	assert.Error(t, err, "out of range index must fail")
}
