package imgsurface

import (
	"image"
	"image/draw"

	"github.com/jmigpin/trackbar/util/fontutil"
	"github.com/jmigpin/trackbar/util/imageutil"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const tooltipPad = 2

// Tooltip keeps the text box state; Draw renders it over an image.
type Tooltip struct {
	Face    font.Face
	Palette Palette
	Offset  image.Point // from the pointer to the box top-left

	active bool
	p      image.Point
	text   string
}

func NewTooltip(size float64) (*Tooltip, error) {
	face, err := fontutil.DefaultFontFace(size)
	if err != nil {
		return nil, err
	}
	return &Tooltip{Face: face, Offset: image.Point{0, -20}}, nil
}

func (t *Tooltip) Activate(p image.Point, text string) {
	t.active = true
	t.p = p
	t.text = text
}

func (t *Tooltip) Update(p image.Point, text string) {
	t.p = p
	t.text = text
}

func (t *Tooltip) Deactivate() {
	t.active = false
}

func (t *Tooltip) Active() bool {
	return t.active
}

func (t *Tooltip) Text() string {
	return t.text
}

// Box bounds; empty if not active.
func (t *Tooltip) Bounds() image.Rectangle {
	if !t.active {
		return image.Rectangle{}
	}
	sz := fontutil.MeasureLine(t.Face, t.text)
	sz = sz.Add(image.Point{2 * tooltipPad, 2 * tooltipPad})
	min := t.p.Add(t.Offset)
	return image.Rectangle{min, min.Add(sz)}
}

func (t *Tooltip) Draw(img draw.Image) {
	r := t.Bounds()
	if r.Empty() {
		return
	}
	imageutil.FillRectangle(img, r, t.Palette.Color("tooltip_bg"))
	imageutil.BorderRectangle(img, r, t.Palette.Color("tooltip_fg"), 1)

	m := t.Face.Metrics()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(t.Palette.Color("tooltip_fg")),
		Face: t.Face,
		Dot: fixed.Point26_6{
			X: fixed.I(r.Min.X + tooltipPad),
			Y: fixed.I(r.Min.Y+tooltipPad) + m.Ascent,
		},
	}
	d.DrawString(t.text)
}
