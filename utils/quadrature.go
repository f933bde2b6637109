package utils

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Integrate1D integrates uniformly spaced samples f with spacing h.
//
// Three or more samples use composite Simpson's rule. With an even number of
// intervals this is the classic 1-4-2-4-1 rule; with an odd number the last
// interval is closed by a parabola through the final three samples. Two
// samples fall back to the trapezoidal rule, fewer than two integrate to 0.
// The rule is applied on unit spacing and scaled by h afterwards, so very
// small h neither underflows nor turns into NaN.
func Integrate1D(f []float64, h float64) float64 {
	var (
		n = len(f)
	)
	if n < 2 || h == 0 {
		return 0
	}
	x := make([]float64, n)
	floats.Span(x, 0, float64(n-1))
	return h * simpsonOrTrapezoid(x, f)
}

func simpsonOrTrapezoid(x, f []float64) float64 {
	if len(x) < 3 {
		return integrate.Trapezoidal(x, f)
	}
	return integrate.Simpsons(x, f)
}

// Integrate2D performs the nested quadrature of F over a uniform grid: every
// column is integrated along the rows with spacing dRow, and the resulting
// vector over the columns is integrated with spacing dCol.
func Integrate2D(F Matrix, dRow, dCol float64) float64 {
	var (
		_, nc = F.Dims()
		inner = make([]float64, nc)
	)
	for j := 0; j < nc; j++ {
		inner[j] = Integrate1D(F.Col(j).DataP(), dRow)
	}
	return Integrate1D(inner, dCol)
}
