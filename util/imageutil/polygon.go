package imageutil

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

func PolygonBounds(pts []image.Point) image.Rectangle {
	if len(pts) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{pts[0], pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}

// Fills the closed polygon. Points are pixel corners (like image.Rectangle
// bounds), so a rectangle polygon fills exactly the pixels of the rectangle.
func FillPolygon(img draw.Image, pts []image.Point, c color.Color) {
	if len(pts) < 3 || c == nil {
		return
	}
	r := PolygonBounds(pts)
	if r.Empty() {
		return
	}
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Over
	for i, p := range pts {
		x, y := float32(p.X-r.Min.X), float32(p.Y-r.Min.Y)
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	z.Draw(img, r, image.NewUniform(c), image.Point{})
}

// Strokes the closed polygon outline with a 1px line through the pixel
// centers just inside the polygon corners.
func StrokePolygon(img draw.Image, pts []image.Point, c color.Color) {
	if len(pts) < 2 || c == nil {
		return
	}
	r := PolygonBounds(pts).Inset(-1)
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	z.DrawOp = draw.Over
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		strokeSegment(z, a.Sub(r.Min), b.Sub(r.Min))
	}
	z.Draw(img, r, image.NewUniform(c), image.Point{})
}

func strokeSegment(z *vector.Rasterizer, a, b image.Point) {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	dx, dy := bx-ax, by-ay
	d := math.Hypot(dx, dy)
	if d == 0 {
		return
	}
	// half pixel normal
	nx, ny := -dy/d*0.5, dx/d*0.5
	z.MoveTo(float32(ax+nx), float32(ay+ny))
	z.LineTo(float32(bx+nx), float32(by+ny))
	z.LineTo(float32(bx-nx), float32(by-ny))
	z.LineTo(float32(ax-nx), float32(ay-ny))
	z.ClosePath()
}
