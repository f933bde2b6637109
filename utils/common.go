package utils

// Axis selects the array dimension a 1D operator walks along.
type Axis uint8

const (
	AxisRows Axis = iota // along a column, varying the row index i
	AxisCols             // along a row, varying the column index j
)

func (a Axis) String() string {
	switch a {
	case AxisRows:
		return "rows"
	case AxisCols:
		return "cols"
	}
	return "unknown"
}
