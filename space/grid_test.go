package space

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFlatGrid(t *testing.T) {
	// A flat list of specs is one implicit sub-grid.
	grid, err := Normalize([]any{[]any{1, 2}, []any{3.0, 5.0}})
	require.NoError(t, err)
	require.Len(t, grid, 1)
	require.Len(t, grid[0], 2)

	integer, ok := grid[0][0].(*Integer)
	require.True(t, ok, "first dimension should be Integer, got %T", grid[0][0])
	assert.Equal(t, 1, integer.Low())
	assert.Equal(t, 2, integer.High())

	r, ok := grid[0][1].(*Real)
	require.True(t, ok, "second dimension should be Real, got %T", grid[0][1])
	assert.Equal(t, 3.0, r.Low())
	assert.Equal(t, 5.0, r.High())
}

func TestNormalizeNestedGrid(t *testing.T) {
	grid, err := Normalize([]any{
		[]any{[]any{1, 2}},
		[]any{[]any{3.0, 5.0}},
	})
	require.NoError(t, err)
	require.Len(t, grid, 2)
	require.Len(t, grid[0], 1)
	require.Len(t, grid[1], 1)

	assert.IsType(t, &Integer{}, grid[0][0])
	assert.IsType(t, &Real{}, grid[1][0])
}

func TestNormalizeCategorical(t *testing.T) {
	grid, err := Normalize([]any{[]any{"a", "b", "c"}})
	require.NoError(t, err)
	require.Len(t, grid, 1)
	require.Len(t, grid[0], 1)

	cat, ok := grid[0][0].(*Categorical)
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b", "c"}, cat.Categories())
}

func TestNormalizeNumericCategorical(t *testing.T) {
	// More than two elements makes a categorical even when all are numbers.
	grid, err := Normalize([]any{[]any{1, 2, 3}})
	require.NoError(t, err)

	cat, ok := grid[0][0].(*Categorical)
	require.True(t, ok)
	assert.Equal(t, []any{1, 2, 3}, cat.Categories())
}

func TestNormalizeIntegralBeforeReal(t *testing.T) {
	// int specs become Integer even though every int also reads as a real.
	grid, err := Normalize([]any{[]any{1, 10}})
	require.NoError(t, err)
	assert.IsType(t, &Integer{}, grid[0][0])

	// A whole-valued float is still a real number, not an integer.
	grid, err = Normalize([]any{[]any{1.0, 10.0}})
	require.NoError(t, err)
	assert.IsType(t, &Real{}, grid[0][0])
}

func TestNormalizeKeepsDistributions(t *testing.T) {
	r, err := NewReal(0, 1)
	require.NoError(t, err)

	grid, err := Normalize([]any{r, []any{1, 5}})
	require.NoError(t, err)
	require.Len(t, grid, 1)
	require.Len(t, grid[0], 2)
	assert.Same(t, r, grid[0][0], "pre-built distributions pass through untouched")
}

func TestNormalizeNestedDistributions(t *testing.T) {
	r, err := NewReal(0, 1)
	require.NoError(t, err)
	c, err := NewCategorical([]any{"a", "b"})
	require.NoError(t, err)

	grid, err := Normalize([]any{
		[]any{r},
		[]any{c, []any{1, 5}},
	})
	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Same(t, r, grid[0][0])
	assert.Same(t, c, grid[1][0])
	assert.IsType(t, &Integer{}, grid[1][1])
}

func TestNormalizeTypedSlices(t *testing.T) {
	grid, err := Normalize([]any{[]int{1, 2}, []float64{3.0, 5.0}, []string{"a", "b", "c"}})
	require.NoError(t, err)
	require.Len(t, grid[0], 3)
	assert.IsType(t, &Integer{}, grid[0][0])
	assert.IsType(t, &Real{}, grid[0][1])
	assert.IsType(t, &Categorical{}, grid[0][2])
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name string
		grid []any
	}{
		{name: "empty grid", grid: nil},
		{name: "scalar first element", grid: []any{42}},
		{name: "empty first sequence", grid: []any{[]any{}}},
		{name: "two element non numeric non string", grid: []any{[]any{true, false}}},
		{name: "single numeric element", grid: []any{[]any{1.5}}},
		{name: "integer low with real high", grid: []any{[]any{1, 2.5}}},
		{name: "empty sub-grid", grid: []any{[]any{[]any{1, 2}}, []any{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.grid)
			require.Error(t, err)
			assert.True(t, IsInvalidArgument(err), "want invalid-argument, got %v", err)
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	spec := []any{1, 2}
	grid := []any{spec, []any{3.0, 5.0}}

	_, err := Normalize(grid)
	require.NoError(t, err)

	// The caller's grid still holds the raw specs.
	assert.Equal(t, []any{1, 2}, grid[0])
	assert.Equal(t, []any{3.0, 5.0}, grid[1])
}
