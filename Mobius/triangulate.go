package Mobius

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/mobius/utils"
)

type Triangle struct {
	V [3]r3.Vec
}

func (t Triangle) Area() float64 {
	return 0.5 * r3.Norm(r3.Cross(r3.Sub(t.V[1], t.V[0]), r3.Sub(t.V[2], t.V[0])))
}

func (t Triangle) Centroid() r3.Vec {
	return r3.Scale(1./3., r3.Add(t.V[0], r3.Add(t.V[1], t.V[2])))
}

// Triangulate splits every mesh cell (i,j)-(i+1,j+1) into two triangles,
// 2*(nr-1)*(nc-1) in total.
func Triangulate(X, Y, Z utils.Matrix) (tris []Triangle) {
	var (
		nr, nc     = X.Dims()
		xD, yD, zD = X.DataP(), Y.DataP(), Z.DataP()
	)
	pt := func(i, j int) r3.Vec {
		ind := i*nc + j
		return r3.Vec{X: xD[ind], Y: yD[ind], Z: zD[ind]}
	}
	if nr < 2 || nc < 2 {
		return
	}
	tris = make([]Triangle, 0, 2*(nr-1)*(nc-1))
	for i := 0; i < nr-1; i++ {
		for j := 0; j < nc-1; j++ {
			p00, p01, p10, p11 := pt(i, j), pt(i, j+1), pt(i+1, j), pt(i+1, j+1)
			tris = append(tris,
				Triangle{V: [3]r3.Vec{p00, p01, p11}},
				Triangle{V: [3]r3.Vec{p00, p11, p10}})
		}
	}
	return
}

// TriangulatedArea is the area of the piecewise flat surface through the mesh
// points. It converges to SurfaceArea as N grows and is independent
// of the finite difference and quadrature machinery.
func (ms *MobiusStrip) TriangulatedArea() (area float64) {
	for _, tri := range Triangulate(ms.X, ms.Y, ms.Z) {
		area += tri.Area()
	}
	return
}
