package engine

import (
	"image/color"
	"math"
)

// Style controls how particles and links are painted.
type Style struct {
	Color        color.NRGBA // alpha is ignored
	FillOpacity  float64
	LinkOpacity  float64 // opacity of a zero-length link
	LinkWidth    float64
	LayerOpacity float64 // multiplies every alpha
}

func DefaultStyle() Style {
	return Style{
		Color:        color.NRGBA{R: 93, G: 214, B: 44, A: 255},
		FillOpacity:  0.4,
		LinkOpacity:  0.1,
		LinkWidth:    0.5,
		LayerOpacity: 1,
	}
}

// Paint returns the style colour at opacity a scaled by the layer opacity.
func (s Style) Paint(a float64) color.NRGBA {
	a *= s.LayerOpacity
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c := s.Color
	c.A = uint8(math.Round(a * 255))
	return c
}
