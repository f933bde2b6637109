package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	// Linspace
	{
		req := NewVector(2).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 1., req.AtVec(1))
		req = NewVector(3).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 0., req.AtVec(1))
		assert.Equal(t, 1., req.AtVec(2))
		req = NewVector(5).Linspace(0, 2*math.Pi)
		assert.InDelta(t, math.Pi/2, req.AtVec(1), 1.e-15)
		assert.InDelta(t, 2*math.Pi, req.AtVec(4), 1.e-15)
		req = NewVector(1).Linspace(3, 4)
		assert.Equal(t, 3., req.AtVec(0))
	}
	// Outer forms both halves of a meshgrid
	{
		col := NewVector(2, []float64{10, 20})
		row := NewVector(3, []float64{1, 2, 3})
		Rows, Cols := Outer(col, row)
		nr, nc := Rows.Dims()
		assert.Equal(t, 2, nr)
		assert.Equal(t, 3, nc)
		assert.Equal(t, []float64{10, 10, 10, 20, 20, 20}, Rows.DataP())
		assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, Cols.DataP())
	}
}
