package imageutil

import (
	"image/color"
)

// Turn color lighter by v percent (0.0, 1.0).
func Tint(c color.Color, v float64) color.Color {
	c2 := color.RGBAModel.Convert(c).(color.RGBA)
	return tint(c2, clampPerc(v))
}

// Turn color darker by v percent (0.0, 1.0).
func Shade(c color.Color, v float64) color.Color {
	c2 := color.RGBAModel.Convert(c).(color.RGBA)
	return shade(c2, clampPerc(v))
}

func tint(c color.RGBA, v float64) color.Color {
	c.R += uint8(v * float64((255 - c.R)))
	c.G += uint8(v * float64((255 - c.G)))
	c.B += uint8(v * float64((255 - c.B)))
	return c
}
func shade(c color.RGBA, v float64) color.Color {
	v = 1.0 - v
	c.R = uint8(v * float64(c.R))
	c.G = uint8(v * float64(c.G))
	c.B = uint8(v * float64(c.B))
	return c
}

func clampPerc(v float64) float64 {
	if v < 0 {
		return 0
	} else if v > 1 {
		return 1
	}
	return v
}
