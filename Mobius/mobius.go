package Mobius

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/mobius/utils"
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrNonFinite        = errors.New("non-finite result")
)

const (
	DefaultR = 1.0
	DefaultW = 0.3
	DefaultN = 200
)

// ShapeParameters describe one strip: centerline radius R, strip width W and
// N samples along each parameter direction.
type ShapeParameters struct {
	R, W float64
	N    int
}

func (sp ShapeParameters) Validate() error {
	switch {
	case !(sp.R > 0) || math.IsInf(sp.R, 0):
		return fmt.Errorf("%w: R (centerline radius) must be a finite value > 0, got %g", ErrInvalidParameter, sp.R)
	case !(sp.W > 0) || math.IsInf(sp.W, 0):
		return fmt.Errorf("%w: W (strip width) must be a finite value > 0, got %g", ErrInvalidParameter, sp.W)
	case sp.N < 2:
		return fmt.Errorf("%w: N (resolution) must be >= 2, got %d", ErrInvalidParameter, sp.N)
	}
	return nil
}

// Du and Dv are the parameter grid spacings along u (columns) and v (rows).
func (sp ShapeParameters) Du() float64 { return 2 * math.Pi / float64(sp.N-1) }
func (sp ShapeParameters) Dv() float64 { return sp.W / float64(sp.N-1) }

func (sp ShapeParameters) String() string {
	return fmt.Sprintf("R = %8.5f, W = %8.5f, N = %d", sp.R, sp.W, sp.N)
}

/*
MobiusStrip holds the N x N mesh of the half twist parametrization

	x = (R + v cos(u/2)) cos(u)
	y = (R + v cos(u/2)) sin(u)
	z = v sin(u/2),    u in [0, 2Pi], v in [-W/2, W/2]

Row index i walks v, column index j walks u. The coordinate matrices are read
only once built.
*/
type MobiusStrip struct {
	ShapeParameters
	U, V    utils.Vector // 1D parameter samples
	X, Y, Z utils.Matrix
}

func NewMobiusStrip(R, W float64, N int) (ms *MobiusStrip, err error) {
	sp := ShapeParameters{R: R, W: W, N: N}
	if err = sp.Validate(); err != nil {
		return
	}
	ms = &MobiusStrip{
		ShapeParameters: sp,
		U:               utils.NewVector(N).Linspace(0, 2*math.Pi),
		V:               utils.NewVector(N).Linspace(-W/2, W/2),
	}
	ms.X, ms.Y, ms.Z = GenerateMesh(R, ms.U, ms.V)
	ms.X.SetReadOnly("X")
	ms.Y.SetReadOnly("Y")
	ms.Z.SetReadOnly("Z")
	return
}

// GenerateMesh evaluates the parametrization on the grid formed by v (rows)
// and u (columns).
func GenerateMesh(R float64, u, v utils.Vector) (X, Y, Z utils.Matrix) {
	var (
		nr, nc = v.Len(), u.Len()
	)
	Vg, Ug := utils.Outer(v, u)
	X, Y, Z = utils.NewMatrix(nr, nc), utils.NewMatrix(nr, nc), utils.NewMatrix(nr, nc)
	X.Apply3(func(uu, vv, _ float64) float64 {
		return (R + vv*math.Cos(uu/2)) * math.Cos(uu)
	}, Ug, Vg, Vg)
	Y.Apply3(func(uu, vv, _ float64) float64 {
		return (R + vv*math.Cos(uu/2)) * math.Sin(uu)
	}, Ug, Vg, Vg)
	Z.Apply3(func(uu, vv, _ float64) float64 {
		return vv * math.Sin(uu/2)
	}, Ug, Vg, Vg)
	return
}

func (ms *MobiusStrip) Mesh() (X, Y, Z utils.Matrix) { return ms.X, ms.Y, ms.Z }

// Result carries the scalar quantities derived from one mesh.
type Result struct {
	Params           ShapeParameters
	Area, EdgeLength float64
	TriangulatedArea float64 // zero unless requested
}

// Compute evaluates the area and edge length, and the triangulated area when
// asked. A NaN in the area element or a non-finite scalar is returned as
// ErrNonFinite instead of a result.
func (ms *MobiusStrip) Compute(triangulated bool) (r *Result, err error) {
	dA := ms.AreaElement()
	if utils.IsNan(dA) {
		return nil, fmt.Errorf("%w: area element contains NaN for %s", ErrNonFinite, ms.ShapeParameters)
	}
	r = &Result{
		Params:     ms.ShapeParameters,
		Area:       utils.Integrate2D(dA, ms.Dv(), ms.Du()),
		EdgeLength: ms.EdgeLength(),
	}
	if triangulated {
		r.TriangulatedArea = ms.TriangulatedArea()
	}
	if !utils.IsFinite(r.Area, r.EdgeLength, r.TriangulatedArea) {
		return nil, fmt.Errorf("%w: area = %g, edge length = %g for %s",
			ErrNonFinite, r.Area, r.EdgeLength, ms.ShapeParameters)
	}
	return
}

func (r *Result) Print() {
	fmt.Printf("Surface Area ≈ %.3f\n", r.Area)
	fmt.Printf("Edge Length ≈ %.3f\n", r.EdgeLength)
	if r.TriangulatedArea != 0 {
		fmt.Printf("Triangulated Area ≈ %.3f\n", r.TriangulatedArea)
	}
}
