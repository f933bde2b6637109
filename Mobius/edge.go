package Mobius

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/mobius/utils"
)

// EdgeLength sums the lengths of the v = -W/2 and v = +W/2 rows, measured as
// two separate open polylines. This two curve approximation is kept as is: the
// strip's single closed boundary is never traced as one loop. Because of the
// half twist the end of each row lands on the start of the other, so the sum
// matches the closed loop length with no seam segment missing.
func (ms *MobiusStrip) EdgeLength() float64 {
	return EstimateEdgeLength(ms.X, ms.Y, ms.Z)
}

func (ms *MobiusStrip) Boundary() (lower, upper []r3.Vec) {
	return BoundaryCurves(ms.X, ms.Y, ms.Z)
}

// BoundaryCurves returns the first and last mesh rows as point sequences.
func BoundaryCurves(X, Y, Z utils.Matrix) (lower, upper []r3.Vec) {
	var (
		nr, _ = X.Dims()
	)
	return rowCurve(X, Y, Z, 0), rowCurve(X, Y, Z, nr-1)
}

func rowCurve(X, Y, Z utils.Matrix, i int) (pts []r3.Vec) {
	var (
		x, y, z = X.Row(i).DataP(), Y.Row(i).DataP(), Z.Row(i).DataP()
	)
	pts = make([]r3.Vec, len(x))
	for j := range x {
		pts[j] = r3.Vec{X: x[j], Y: y[j], Z: z[j]}
	}
	return
}

func ArcLength(pts []r3.Vec) (length float64) {
	for k := 1; k < len(pts); k++ {
		length += r3.Norm(r3.Sub(pts[k], pts[k-1]))
	}
	return
}

func EstimateEdgeLength(X, Y, Z utils.Matrix) float64 {
	lower, upper := BoundaryCurves(X, Y, Z)
	return ArcLength(lower) + ArcLength(upper)
}
