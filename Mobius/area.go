package Mobius

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/mobius/utils"
)

func (ms *MobiusStrip) SurfaceArea() float64 {
	return EstimateArea(ms.X, ms.Y, ms.Z, ms.Du(), ms.Dv())
}

func (ms *MobiusStrip) AreaElement() utils.Matrix {
	return AreaElement(ms.X, ms.Y, ms.Z, ms.Du(), ms.Dv())
}

// AreaElement returns |r_u x r_v| at every mesh point, with the tangents
// estimated by finite differences along the columns (u, spacing du) and rows
// (v, spacing dv).
func AreaElement(X, Y, Z utils.Matrix, du, dv float64) (dA utils.Matrix) {
	var (
		nr, nc = X.Dims()
		xu, xv = utils.Gradient(X, utils.AxisCols, du), utils.Gradient(X, utils.AxisRows, dv)
		yu, yv = utils.Gradient(Y, utils.AxisCols, du), utils.Gradient(Y, utils.AxisRows, dv)
		zu, zv = utils.Gradient(Z, utils.AxisCols, du), utils.Gradient(Z, utils.AxisRows, dv)
	)
	dA = utils.NewMatrix(nr, nc)
	var (
		dAD           = dA.DataP()
		xuD, yuD, zuD = xu.DataP(), yu.DataP(), zu.DataP()
		xvD, yvD, zvD = xv.DataP(), yv.DataP(), zv.DataP()
	)
	for ind := range dAD {
		ru := r3.Vec{X: xuD[ind], Y: yuD[ind], Z: zuD[ind]}
		rv := r3.Vec{X: xvD[ind], Y: yvD[ind], Z: zvD[ind]}
		dAD[ind] = r3.Norm(r3.Cross(ru, rv))
	}
	return
}

// EstimateArea integrates the area element over the parameter domain, first
// along v then along u.
func EstimateArea(X, Y, Z utils.Matrix, du, dv float64) float64 {
	return utils.Integrate2D(AreaElement(X, Y, Z, du, dv), dv, du)
}
