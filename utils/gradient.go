package utils

import "fmt"

// Gradient returns dF/d(axis) sampled on the same grid as F, for uniform sample
// spacing h. Interior points use the second order central difference, the two
// end points of the axis use first order one sided differences.
func Gradient(F Matrix, axis Axis, h float64) (G Matrix) {
	var (
		nr, nc = F.Dims()
		fD     = F.DataP()
	)
	G = NewMatrix(nr, nc)
	gD := G.DataP()
	switch axis {
	case AxisRows:
		if nr < 2 {
			panic(fmt.Errorf("gradient along %s needs at least 2 samples, have %d", axis, nr))
		}
		for j := 0; j < nc; j++ {
			Diff1D(gD[j:], fD[j:], nr, nc, h)
		}
	case AxisCols:
		if nc < 2 {
			panic(fmt.Errorf("gradient along %s needs at least 2 samples, have %d", axis, nc))
		}
		for i := 0; i < nr; i++ {
			Diff1D(gD[i*nc:], fD[i*nc:], nc, 1, h)
		}
	default:
		panic(fmt.Errorf("unknown axis %d", axis))
	}
	return
}

// Diff1D differentiates n samples of f spaced stride apart into df using the
// same stencil layout, n >= 2.
func Diff1D(df, f []float64, n, stride int, h float64) {
	var (
		last = (n - 1) * stride
	)
	df[0] = (f[stride] - f[0]) / h
	df[last] = (f[last] - f[last-stride]) / h
	for k := 1; k < n-1; k++ {
		ind := k * stride
		df[ind] = (f[ind+stride] - f[ind-stride]) / (2 * h)
	}
}
