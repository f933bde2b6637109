package utils

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) Vector {
	if len(dataO) != 0 {
		return Vector{mat.NewVecDense(n, dataO[0])}
	}
	return Vector{mat.NewVecDense(n, make([]float64, n))}
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }
func (v Vector) DataP() []float64         { return v.V.RawVector().Data }

// Linspace fills the vector with Len() uniformly spaced values from begin to
// end, both endpoints included.
func (v Vector) Linspace(begin, end float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	if len(data) == 1 {
		data[0] = begin
		return v
	}
	floats.Span(data, begin, end)
	return v
}

// Outer returns the nr x nc matrices formed by broadcasting col down the rows
// and row across the columns, the two halves of a meshgrid: Rows[i,j] = col[i],
// Cols[i,j] = row[j].
func Outer(col, row Vector) (Rows, Cols Matrix) {
	var (
		nr, nc = col.Len(), row.Len()
		cD, rD = col.DataP(), row.DataP()
	)
	Rows, Cols = NewMatrix(nr, nc), NewMatrix(nr, nc)
	rowsD, colsD := Rows.DataP(), Cols.DataP()
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			ind := i*nc + j
			rowsD[ind] = cD[i]
			colsD[ind] = rD[j]
		}
	}
	return
}
