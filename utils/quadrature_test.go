package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sample(n int, a, b float64, f func(float64) float64) (fs []float64, h float64) {
	x := NewVector(n).Linspace(a, b).DataP()
	fs = make([]float64, n)
	for i, xx := range x {
		fs[i] = f(xx)
	}
	h = (b - a) / float64(n-1)
	return
}

func TestIntegrate1D(t *testing.T) {
	cubic := func(x float64) float64 { return x*x*x - 2*x*x + 3 }
	cubicInt := func(x float64) float64 { return x*x*x*x/4 - 2*x*x*x/3 + 3*x }
	quad := func(x float64) float64 { return 3*x*x - x + 1 }
	quadInt := func(x float64) float64 { return x*x*x - x*x/2 + x }
	t.Run("odd sample count is exact for cubics", func(t *testing.T) {
		for _, n := range []int{3, 5, 11, 201} {
			f, h := sample(n, -1, 2, cubic)
			assert.InDelta(t, cubicInt(2)-cubicInt(-1), Integrate1D(f, h), 1.e-12, "n = %d", n)
		}
	})
	t.Run("even sample count is exact for quadratics", func(t *testing.T) {
		for _, n := range []int{4, 6, 10, 200} {
			f, h := sample(n, 0, 3, quad)
			assert.InDelta(t, quadInt(3)-quadInt(0), Integrate1D(f, h), 1.e-11, "n = %d", n)
		}
	})
	t.Run("two samples fall back to the trapezoid rule", func(t *testing.T) {
		assert.InDelta(t, 0.5*(1+3)*2, Integrate1D([]float64{1, 3}, 2), 1.e-15)
		// trapezoid is not exact for a parabola
		f, h := sample(2, 0, 1, func(x float64) float64 { return x * x })
		assert.InDelta(t, 0.5, Integrate1D(f, h), 1.e-15)
	})
	t.Run("degenerate input", func(t *testing.T) {
		assert.Equal(t, 0., Integrate1D(nil, 1))
		assert.Equal(t, 0., Integrate1D([]float64{5}, 1))
		assert.Equal(t, 0., Integrate1D([]float64{1, 2, 3}, 0))
	})
	t.Run("negative spacing flips the sign", func(t *testing.T) {
		f, h := sample(5, 0, 1, quad)
		assert.InDelta(t, -Integrate1D(f, h), Integrate1D(f, -h), 1.e-15)
	})
	t.Run("tiny spacing stays finite and proportional", func(t *testing.T) {
		for _, n := range []int{2, 3, 4, 51} {
			ones := make([]float64, n)
			for i := range ones {
				ones[i] = 1
			}
			for _, h := range []float64{1.e-100, 1.e-200, 1.e-300} {
				got := Integrate1D(ones, h)
				assert.True(t, IsFinite(got), "n = %d, h = %g", n, h)
				assert.InEpsilon(t, float64(n-1)*h, got, 1.e-12, "n = %d, h = %g", n, h)
			}
		}
	})
	t.Run("smooth periodic integrand converges", func(t *testing.T) {
		f, h := sample(200, 0, math.Pi, math.Sin)
		assert.InDelta(t, 2., Integrate1D(f, h), 1.e-7)
	})
}

func TestIntegrate2D(t *testing.T) {
	// F(v, u) = v*v + u over [0,1] x [0,2], exact = 2/3 + 2
	var (
		n  = 7
		v  = NewVector(n).Linspace(0, 1)
		u  = NewVector(n).Linspace(0, 2)
		dv = 1. / float64(n-1)
		du = 2. / float64(n-1)
	)
	V, U := Outer(v, u)
	F := NewMatrix(n, n).Apply3(func(vv, uu, _ float64) float64 { return vv*vv + uu }, V, U, U)
	assert.InDelta(t, 2./3.+2., Integrate2D(F, dv, du), 1.e-12)
	// Constant integrand on a 2 x 2 grid uses the trapezoid rule on both axes
	C := NewMatrix(2, 2, []float64{1.5, 1.5, 1.5, 1.5})
	assert.InDelta(t, 1.5*0.3*0.7, Integrate2D(C, 0.3, 0.7), 1.e-15)
}
