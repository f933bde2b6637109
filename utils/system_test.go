package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNanChecks(t *testing.T) {
	M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
	assert.False(t, IsNan(M))
	assert.False(t, IsNan(M.DataP()))
	N := M.Copy().Set(1, 1, math.NaN())
	assert.True(t, IsNan(N))
	assert.False(t, IsNan(M), "copy is independent")
	assert.True(t, IsNan(NewVector(1, []float64{math.NaN()})))
	assert.True(t, IsNan(math.NaN()))
	assert.False(t, IsNan("not a number type"))
	assert.True(t, IsFinite(1, 2, 3))
	assert.True(t, IsFinite())
	assert.False(t, IsFinite(1, math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
	assert.False(t, IsFinite(math.NaN()))
	assert.Contains(t, GetMemUsage(), "MiB")
}
