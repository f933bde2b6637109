package plotting

import (
	"image"
	"image/color"
	"math"
)

type zImage struct {
	img     *image.RGBA
	zbuffer []float64
}

func newZImage(width, height int, bg color.RGBA) (zi *zImage) {
	zi = &zImage{
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		zbuffer: make([]float64, width*height),
	}
	for i := range zi.zbuffer {
		zi.zbuffer[i] = math.Inf(1)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			zi.img.SetRGBA(x, y, bg)
		}
	}
	return
}

// fillTriangle rasterizes the screen space triangle (x, y, depth) with depth
// testing; a pixel is drawn when its interpolated depth is nearer (smaller)
// than what the buffer holds. Pixel centers are sampled at +0.5.
func (zi *zImage) fillTriangle(v [3][3]float64, col color.RGBA) {
	var (
		bounds = zi.img.Bounds()
		width  = bounds.Max.X
		x0, y0 = v[0][0], v[0][1]
		x1, y1 = v[1][0], v[1][1]
		x2, y2 = v[2][0], v[2][1]
		area   = (x1-x0)*(y2-y0) - (x2-x0)*(y1-y0)
	)
	if area == 0 {
		return
	}
	xmin := int(math.Max(0, math.Floor(math.Min(x0, math.Min(x1, x2)))))
	xmax := int(math.Min(float64(bounds.Max.X-1), math.Ceil(math.Max(x0, math.Max(x1, x2)))))
	ymin := int(math.Max(0, math.Floor(math.Min(y0, math.Min(y1, y2)))))
	ymax := int(math.Min(float64(bounds.Max.Y-1), math.Ceil(math.Max(y0, math.Max(y1, y2)))))
	for y := ymin; y <= ymax; y++ {
		py := float64(y) + 0.5
		for x := xmin; x <= xmax; x++ {
			px := float64(x) + 0.5
			// Barycentric weights, all of one sign inside regardless of winding
			w0 := ((x1-px)*(y2-py) - (x2-px)*(y1-py)) / area
			w1 := ((x2-px)*(y0-py) - (x0-px)*(y2-py)) / area
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*v[0][2] + w1*v[1][2] + w2*v[2][2]
			idx := y*width + x
			if z < zi.zbuffer[idx] {
				zi.zbuffer[idx] = z
				zi.img.SetRGBA(x, y, col)
			}
		}
	}
}
