package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(t *testing.T) {
	// Row major layout, Row and Col extraction
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		nr, nc := M.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 3, nc)
		assert.Equal(t, 6., M.At(1, 2))
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1).DataP())
		assert.Equal(t, []float64{3, 6}, M.Col(-1).DataP())
		assert.Equal(t, 1., M.Min())
		assert.Equal(t, 6., M.Max())
	}
	// Copy is independent of the source
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		C := M.Copy()
		C.Set(0, 0, 10)
		assert.Equal(t, 1., M.At(0, 0))
		assert.Equal(t, 10., C.At(0, 0))
		assert.False(t, M.Equal(C))
		C.Set(0, 0, 1)
		assert.True(t, M.Equal(C))
	}
	// Apply3 combines three matrices elementwise
	{
		A := NewMatrix(1, 3, []float64{1, 2, 3})
		B := NewMatrix(1, 3, []float64{4, 5, 6})
		C := NewMatrix(1, 3, []float64{7, 8, 9})
		R := NewMatrix(1, 3).Apply3(func(a, b, c float64) float64 { return a + b*c }, A, B, C)
		assert.Equal(t, []float64{29, 42, 57}, R.DataP())
	}
	// Read only matrices refuse writes
	{
		M := NewMatrix(2, 2)
		M.SetReadOnly("M")
		require.True(t, M.IsReadOnly())
		assert.Panics(t, func() { M.Set(0, 0, 1) })
		assert.Panics(t, func() {
			M.Apply3(func(a, b, c float64) float64 { return a + b + c }, M, M, M)
		})
		assert.Equal(t, []float64{0, 0, 0, 0}, M.DataP())
	}
	// Allocation size mismatch
	{
		assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
	}
}
