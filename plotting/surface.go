package plotting

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/mobius/Mobius"
	"github.com/notargets/mobius/utils"
)

const DefaultOutputFile = "mobius_strip_plot.png"

type PlotOptions struct {
	Width, Height      int
	Supersample        int // render at this multiple of the size, then downsample
	Azimuth, Elevation float64
	Margin             float64 // pixels at the final size
	Background         color.RGBA
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Width:       1000,
		Height:      700,
		Supersample: 2,
		Azimuth:     -60,
		Elevation:   30,
		Margin:      40,
		Background:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// RenderSurface draws the mesh as a z-buffered triangle surface colored by
// height. The coordinate matrices are only read.
func RenderSurface(X, Y, Z utils.Matrix, opts PlotOptions) (img image.Image, err error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, fmt.Errorf("image size must be positive, got %dx%d", opts.Width, opts.Height)
	}
	var (
		ss       = max(1, opts.Supersample)
		width    = opts.Width * ss
		height   = opts.Height * ss
		cam      = NewCamera(opts.Azimuth, opts.Elevation)
		tris     = Mobius.Triangulate(X, Y, Z)
		cm       = NewViridis(Z.Min(), Z.Max())
		zi       = newZImage(width, height, opts.Background)
		view     = make([][3][3]float64, len(tris))
		xmin     = math.Inf(1)
		ymin     = math.Inf(1)
		xmax     = math.Inf(-1)
		ymax     = math.Inf(-1)
		lightDir = r3.Scale(-1, cam.Forward())
	)
	if len(tris) == 0 {
		return nil, fmt.Errorf("mesh has no cells to render")
	}
	for k, tri := range tris {
		for n := 0; n < 3; n++ {
			x, y, d := cam.View(tri.V[n])
			view[k][n] = [3]float64{x, y, d}
			xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
			ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
		}
	}
	vp := newViewport(xmin, xmax, ymin, ymax, width, height, opts.Margin*float64(ss))
	for k, tri := range tris {
		var screen [3][3]float64
		for n := 0; n < 3; n++ {
			px, py := vp.toPixel(view[k][n][0], view[k][n][1])
			screen[n] = [3]float64{px, py, view[k][n][2]}
		}
		zi.fillTriangle(screen, cm.Shaded(tri.Centroid().Z, lighting(tri, lightDir)))
	}
	if ss == 1 {
		return zi.img, nil
	}
	return imaging.Resize(zi.img, opts.Width, opts.Height, imaging.Lanczos), nil
}

// lighting is a two sided Lambert term; the strip has no consistent outside.
func lighting(tri Mobius.Triangle, lightDir r3.Vec) float64 {
	n := r3.Cross(r3.Sub(tri.V[1], tri.V[0]), r3.Sub(tri.V[2], tri.V[0]))
	norm := r3.Norm(n)
	if norm == 0 {
		return 1
	}
	return 0.45 + 0.55*math.Abs(r3.Dot(n, lightDir))/norm
}

// SaveSurfacePNG renders the mesh and writes it to fileName, the format is
// chosen by the file extension.
func SaveSurfacePNG(X, Y, Z utils.Matrix, fileName string, opts PlotOptions) (err error) {
	var (
		img image.Image
	)
	if img, err = RenderSurface(X, Y, Z, opts); err != nil {
		return
	}
	if err = imaging.Save(img, fileName); err != nil {
		return fmt.Errorf("unable to save surface plot: %w", err)
	}
	return
}
