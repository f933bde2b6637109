package plotting

import (
	"math"
	"time"

	utils2 "github.com/notargets/avs/utils"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/mobius/utils"
)

// BoundaryXY projects a boundary curve onto the xy plane.
func BoundaryXY(pts []r3.Vec) (x, y []float64) {
	x, y = make([]float64, len(pts)), make([]float64, len(pts))
	for i, p := range pts {
		x[i], y[i] = p.X, p.Y
	}
	return
}

// BoundaryExtent is the half width of the square chart that holds both
// projected curves with a 10% margin.
func BoundaryExtent(curves ...[]r3.Vec) (extent float64) {
	for _, pts := range curves {
		for _, p := range pts {
			extent = math.Max(extent, math.Max(math.Abs(p.X), math.Abs(p.Y)))
		}
	}
	return 1.1 * extent
}

// PlotBoundary opens an interactive chart with the two boundary rows drawn in
// the xy plane, lower in red and upper in blue.
func PlotBoundary(lower, upper []r3.Vec, graphDelay time.Duration) (lc *utils.LineChart, err error) {
	var (
		xl, yl = BoundaryXY(lower)
		xu, yu = BoundaryXY(upper)
		extent = BoundaryExtent(lower, upper)
	)
	lc = utils.NewLineChart(1000, 1000, -extent, extent, -extent, extent)
	if err = lc.Plot(graphDelay, xl, yl, utils2.RED); err != nil {
		return
	}
	err = lc.Plot(graphDelay, xu, yu, utils2.BLUE)
	return
}
