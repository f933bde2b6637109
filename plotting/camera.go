package plotting

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Camera is an orthographic view defined by azimuth and elevation in degrees,
// the same convention as a matplotlib 3D axes (default azim = -60, elev = 30).
type Camera struct {
	Azimuth, Elevation float64
	forward, right, up r3.Vec
}

func NewCamera(azimuth, elevation float64) (c *Camera) {
	var (
		az, el = azimuth * math.Pi / 180, elevation * math.Pi / 180
	)
	c = &Camera{Azimuth: azimuth, Elevation: elevation}
	// Eye direction from the origin, the view looks back along it
	eye := r3.Vec{X: math.Cos(el) * math.Cos(az), Y: math.Cos(el) * math.Sin(az), Z: math.Sin(el)}
	c.forward = r3.Scale(-1, eye)
	c.right = r3.Unit(r3.Cross(c.forward, r3.Vec{Z: 1}))
	c.up = r3.Cross(c.right, c.forward)
	return
}

// View returns the horizontal and vertical view plane coordinates of p and its
// depth along the view direction, larger depth is farther away.
func (c *Camera) View(p r3.Vec) (x, y, depth float64) {
	return r3.Dot(p, c.right), r3.Dot(p, c.up), r3.Dot(p, c.forward)
}

func (c *Camera) Forward() r3.Vec { return c.forward }

// viewport maps view plane coordinates into a width x height pixel image with
// a uniform scale and the given margin, y pointing down.
type viewport struct {
	scale, xc, yc float64
	width, height float64
}

func newViewport(xmin, xmax, ymin, ymax float64, width, height int, margin float64) (vp viewport) {
	var (
		w, h = float64(width), float64(height)
		sx   = (w - 2*margin) / math.Max(xmax-xmin, 1.e-12)
		sy   = (h - 2*margin) / math.Max(ymax-ymin, 1.e-12)
	)
	return viewport{
		scale:  math.Min(sx, sy),
		xc:     0.5 * (xmin + xmax),
		yc:     0.5 * (ymin + ymax),
		width:  w,
		height: h,
	}
}

func (vp viewport) toPixel(x, y float64) (px, py float64) {
	px = vp.width/2 + (x-vp.xc)*vp.scale
	py = vp.height/2 - (y-vp.yc)*vp.scale
	return
}
