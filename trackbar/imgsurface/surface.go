// Reference drawing surface: renders trackbar frames into a draw.Image.
package imgsurface

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jmigpin/trackbar/trackbar"
	"github.com/jmigpin/trackbar/util/imageutil"
	"golang.org/x/image/colornames"
)

// nil is a valid receiver.
type Palette map[string]color.Color

func (pal Palette) Copy() Palette {
	u := Palette{}
	for k, v := range pal {
		u[k] = v
	}
	return u
}

// Falls back to the default palette, and then to a warning color.
func (pal Palette) Color(name string) color.Color {
	if c, ok := pal[name]; ok {
		return c
	}
	if c, ok := DefaultPalette[name]; ok {
		return c
	}
	return colornames.Yellow
}

var DefaultPalette = Palette{
	"bg":            colornames.Gainsboro,
	"edge":          colornames.Silver,
	"channel":       colornames.White,
	"selection":     colornames.Royalblue,
	"tick":          colornames.Black,
	"thumb":         colornames.Lightgray,
	"thumb_hot":     colornames.Lightsteelblue,
	"thumb_pressed": colornames.Darkgray,
	"thumb_border":  colornames.Dimgray,
	"focus":         colornames.Black,
	"tooltip_bg":    colornames.Lightyellow,
	"tooltip_fg":    colornames.Black,
}

//----------

type Surface struct {
	Img     draw.Image
	Palette Palette
}

func NewSurface(img draw.Image) *Surface {
	return &Surface{Img: img}
}

func (s *Surface) Clear(r image.Rectangle) {
	imageutil.FillRectangle(s.Img, r, s.Palette.Color("bg"))
}

func (s *Surface) DrawEdge(r image.Rectangle, e trackbar.Edge) {
	ie := imageutil.EdgeSunken
	if e == trackbar.EdgeRaised {
		ie = imageutil.EdgeRaised
	}
	imageutil.DrawEdge(s.Img, r, s.Palette.Color("edge"), ie)
}

func (s *Surface) FillRect(r image.Rectangle, f trackbar.Fill) {
	name := "channel"
	if f == trackbar.FillSelection {
		name = "selection"
	}
	imageutil.FillRectangle(s.Img, r, s.Palette.Color(name))
}

// Ticks are 1px lines along the perpendicular axis.
func (s *Surface) DrawTick(t trackbar.TickMark) {
	r := image.Rectangle{t.P0, t.P1}.Canon()
	if r.Dx() == 0 {
		r.Max.X++
	}
	if r.Dy() == 0 {
		r.Max.Y++
	}
	imageutil.FillRectangle(s.Img, r, s.Palette.Color("tick"))
}

func (s *Surface) DrawThumb(t trackbar.Thumb) {
	if len(t.Points) == 0 {
		return
	}
	name := "thumb"
	if t.Pressed {
		name = "thumb_pressed"
	} else if t.Hot {
		name = "thumb_hot"
	}
	imageutil.FillPolygon(s.Img, t.Points, s.Palette.Color(name))
	imageutil.StrokePolygon(s.Img, t.Points, s.Palette.Color("thumb_border"))
}

func (s *Surface) DrawFocusRect(r image.Rectangle) {
	imageutil.DottedBorderRectangle(s.Img, r, s.Palette.Color("focus"))
}
