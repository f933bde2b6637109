package utils

import (
	"fmt"
	"image/color"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

type LineChart struct {
	Chart *chart2d.Chart2D
}

// NewLineChart opens a chart window over [xmin, xmax] x [fmin, fmax]; avs runs
// the window's event loop on its own locked OS thread.
func NewLineChart(width, height int, xmin, xmax, fmin, fmax float64) (lc *LineChart) {
	lc = &LineChart{
		Chart: chart2d.NewChart2D(float32(xmin), float32(xmax), float32(fmin), float32(fmax),
			width, height, utils2.WHITE, utils2.DARK),
	}
	return
}

// Plot draws the polyline through (x[k], f[k]) and waits graphDelay.
func (lc *LineChart) Plot(graphDelay time.Duration, x, f []float64, lineColor color.RGBA) (err error) {
	var (
		xy []float32
	)
	if xy, err = ArraysToXY(x, f); err != nil {
		return
	}
	lc.Chart.AddLine(xy, lineColor, utils2.POLYLINE)
	time.Sleep(graphDelay)
	return
}

// ArraysToXY interleaves x and f into the [x0, f0, x1, f1, ...] vertex layout
// avs lines take.
func ArraysToXY(x, f []float64) (xy []float32, err error) {
	if len(x) != len(f) {
		return nil, fmt.Errorf("mismatched series lengths %d and %d", len(x), len(f))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("a line needs at least 2 points, have %d", len(x))
	}
	xy = make([]float32, 2*len(x))
	for i := range x {
		xy[2*i] = float32(x[i])
		xy[2*i+1] = float32(f[i])
	}
	return
}
