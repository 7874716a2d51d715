package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

type Edge int

const (
	EdgeSunken Edge = iota // dark top/left, light bottom/right
	EdgeRaised
)

// Draws a two-tone 1px edge around r, with colors derived from base.
func DrawEdge(img draw.Image, r image.Rectangle, base color.Color, e Edge) {
	if r.Empty() {
		return
	}
	light := Tint(base, 0.6)
	dark := Shade(base, 0.4)
	tl, br := dark, light
	if e == EdgeRaised {
		tl, br = light, dark
	}
	sr := borderRects(r, 1)
	// bottom/right first so the top/left corners keep the first color
	DrawUniform(img, sr[1].Intersect(r), br, draw.Src)
	DrawUniform(img, sr[3].Intersect(r), br, draw.Src)
	DrawUniform(img, sr[0].Intersect(r), tl, draw.Src)
	DrawUniform(img, sr[2].Intersect(r), tl, draw.Src)
}
