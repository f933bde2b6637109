package plotting

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorMap interpolates between evenly spaced color stops in CIE L*a*b*.
type ColorMap struct {
	stops    []colorful.Color
	min, max float64
}

var viridis = []string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"}

func NewViridis(min, max float64) *ColorMap {
	return NewColorMap(min, max, viridis...)
}

func NewColorMap(min, max float64, hexStops ...string) (cm *ColorMap) {
	cm = &ColorMap{min: min, max: max}
	for _, hex := range hexStops {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(err)
		}
		cm.stops = append(cm.stops, c)
	}
	return
}

// At returns the color for val, values outside [min, max] are clamped.
func (cm *ColorMap) At(val float64) colorful.Color {
	var (
		n = len(cm.stops)
		t float64
	)
	if n == 1 {
		return cm.stops[0]
	}
	if cm.max > cm.min {
		t = (val - cm.min) / (cm.max - cm.min)
	}
	t = math.Max(0, math.Min(1, t)) * float64(n-1)
	k := int(t)
	if k >= n-1 {
		return cm.stops[n-1]
	}
	if frac := t - float64(k); frac > 0 {
		return cm.stops[k].BlendLab(cm.stops[k+1], frac).Clamped()
	}
	return cm.stops[k]
}

// Shaded darkens the mapped color by the lighting factor in [0, 1].
func (cm *ColorMap) Shaded(val, light float64) color.RGBA {
	c := cm.At(val)
	c = colorful.Color{R: c.R * light, G: c.G * light, B: c.B * light}.Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
