package trackbar

import (
	"image"
)

const (
	tickLength     = 3
	tickEdgeLength = 4
)

type TickKind int

const (
	TickNormal TickKind = iota
	TickEdge            // at the range ends
	TickSelStart
	TickSelEnd
)

// Tick line from P0 (next to the thumb) to P1 (exclusive end).
type TickMark struct {
	Kind   TickKind
	Value  int
	P0, P1 image.Point
}

type Thumb struct {
	Rect    image.Rectangle
	Shape   ThumbShape
	Points  []image.Point // closed polygon outline
	Hot     bool          // pointer over the thumb
	Pressed bool          // dragging
}

// Everything a surface needs to draw the control.
type Frame struct {
	Bounds      image.Rectangle
	Orientation Orientation
	Channel     image.Rectangle
	SelRange    bool            // channel has a selection area
	Selection   image.Rectangle // empty if no selection
	Ticks       []TickMark
	HasThumb    bool
	Thumb       Thumb
	Focus       image.Rectangle // empty if not focused
}

// Drawing capability provided by the host.
type Surface interface {
	Clear(r image.Rectangle)
	DrawEdge(r image.Rectangle, e Edge)
	FillRect(r image.Rectangle, f Fill)
	DrawTick(t TickMark)
	DrawThumb(t Thumb)
	DrawFocusRect(r image.Rectangle)
}

type Edge int

const (
	EdgeSunken Edge = iota
	EdgeRaised
)

type Fill int

const (
	FillChannel Fill = iota
	FillSelection
)

//----------

func (tb *Trackbar) Frame() (*Frame, error) {
	tb.layout()
	if tb.geomErr != nil {
		return nil, tb.geomErr
	}
	f := &Frame{
		Bounds:      tb.bounds,
		Orientation: tb.opt.Orientation,
		Channel:     tb.channel,
		SelRange:    tb.opt.Features.HasAny(EnableSelRange),
	}
	if f.SelRange {
		f.Selection = tb.selection
	}
	if !tb.opt.Features.HasAny(NoTicks) {
		f.Ticks = tb.tickMarks()
	}
	if !tb.opt.Features.HasAny(NoThumb) {
		f.HasThumb = true
		shape, pts := ThumbOutline(tb.thumb, tb.opt.Orientation, tb.opt.TickSide, tb.opt.Features.HasAny(NoTicks))
		f.Thumb = Thumb{
			Rect:    tb.thumb,
			Shape:   shape,
			Points:  pts,
			Hot:     tb.hot,
			Pressed: tb.dragActive,
		}
	}
	if tb.hasFocus {
		f.Focus = tb.bounds
	}
	return f, nil
}

func (tb *Trackbar) tickMarks() []TickMark {
	type tk struct {
		kind TickKind
		v    int
	}
	u := []tk{{TickEdge, tb.rng.Min}}
	if tb.rng.Len() > 0 {
		for _, v := range tb.tics.values(tb.rng) {
			u = append(u, tk{TickNormal, v})
		}
		u = append(u, tk{TickEdge, tb.rng.Max})
		if tb.opt.Features.HasAny(EnableSelRange) && tb.selMin < tb.selMax {
			u = append(u, tk{TickSelStart, tb.selMin}, tk{TickSelEnd, tb.selMax})
		}
	}

	// ticks are placed next to the thumb extent, independent of its position
	th := tb.ax.rect(tb.thumb)
	ch := tb.ax.rect(tb.channel)
	var marks []TickMark
	for _, e := range u {
		x := ch.Min.X
		if tb.rng.Len() > 0 {
			x2, err := TicToPixel(e.v, tb.channel, tb.rng, tb.opt.Orientation)
			if err != nil {
				continue
			}
			x = x2
		}
		n := tickLength
		if e.kind == TickEdge {
			n = tickEdgeLength
		}
		add := func(y0, y1 int) {
			m := TickMark{Kind: e.kind, Value: e.v}
			m.P0 = tb.ax.point(image.Point{x, y0})
			m.P1 = tb.ax.point(image.Point{x, y1})
			marks = append(marks, m)
		}
		side := tb.opt.TickSide
		if side == TickBottom || side == TickBoth {
			add(th.Max.Y+1, th.Max.Y+1+n)
		}
		if side == TickTop || side == TickBoth {
			add(th.Min.Y-2, th.Min.Y-2-n)
		}
	}
	return marks
}

//----------

// Issues the draw calls for the frame.
func Render(s Surface, f *Frame) {
	s.Clear(f.Bounds)
	if f.SelRange {
		s.FillRect(f.Channel, FillChannel)
		if !f.Selection.Empty() {
			s.FillRect(f.Selection, FillSelection)
		}
	}
	s.DrawEdge(f.Channel, EdgeSunken)
	for _, t := range f.Ticks {
		s.DrawTick(t)
	}
	if f.HasThumb {
		s.DrawThumb(f.Thumb)
	}
	if !f.Focus.Empty() {
		s.DrawFocusRect(f.Focus)
	}
}

// Renders the current state. No-op if the geometry is invalid.
func (tb *Trackbar) Paint(s Surface) {
	if s == nil || tb.destroyed {
		return
	}
	f, err := tb.Frame()
	if err != nil {
		return
	}
	Render(s, f)
}
