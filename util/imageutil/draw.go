package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

func DrawUniformMask(
	dst draw.Image,
	r image.Rectangle,
	c color.Color,
	mask image.Image, mp image.Point,
	op draw.Op,
) {
	if c == nil {
		return
	}
	src := image.NewUniform(c)
	draw.DrawMask(dst, r, src, image.Point{}, mask, mp, op)
}

func DrawUniform(dst draw.Image, r image.Rectangle, c color.Color, op draw.Op) {
	DrawUniformMask(dst, r, c, nil, image.Point{}, op)
}

//----------

func FillRectangle(img draw.Image, r image.Rectangle, c color.Color) {
	DrawUniform(img, r, c, draw.Src)
}

func BorderRectangle(img draw.Image, r image.Rectangle, c color.Color, size int) {
	for _, r2 := range borderRects(r, size) {
		r2 = r2.Intersect(r)
		DrawUniform(img, r2, c, draw.Src)
	}
}

// Top, bottom, left, right.
func borderRects(r image.Rectangle, size int) [4]image.Rectangle {
	var sr [4]image.Rectangle
	// top
	sr[0] = r
	sr[0].Max.Y = r.Min.Y + size
	// bottom
	sr[1] = r
	sr[1].Min.Y = r.Max.Y - size
	// left
	sr[2] = r
	sr[2].Max.X = r.Min.X + size
	sr[2].Min.Y = r.Min.Y + size
	sr[2].Max.Y = r.Max.Y - size
	// right
	sr[3] = r
	sr[3].Min.X = r.Max.X - size
	sr[3].Min.Y = r.Min.Y + size
	sr[3].Max.Y = r.Max.Y - size
	return sr
}

// One pixel border, every other pixel set.
func DottedBorderRectangle(img draw.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	set := func(x, y int) {
		if (x+y)%2 == 0 {
			img.Set(x, y, c)
		}
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		set(x, r.Min.Y)
		set(x, r.Max.Y-1)
	}
	for y := r.Min.Y + 1; y < r.Max.Y-1; y++ {
		set(r.Min.X, y)
		set(r.Max.X-1, y)
	}
}
