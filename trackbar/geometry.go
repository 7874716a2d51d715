package trackbar

import (
	"fmt"
	"image"
	"math"

	"github.com/jmigpin/trackbar/util/mathutil"
)

// Layout constants (pixels).
const (
	channelMargin    = 8  // from each end of the control along the track
	channelSideSpace = 10 // from the tick side edge
	channelThickness = 4

	thumbTickOverhang  = 4 // thumb extent past the channel, on the tick side
	thumbOtherOverhang = 2

	selectionInset = 2
)

func DefaultThumbLength(selRange bool) int {
	if selRange {
		return 23
	}
	return 21
}

//----------

type Range struct {
	Min, Max int
}

// Saturates at math.MaxInt for spans that don't fit an int.
func (r Range) Len() int {
	d := r.Max - r.Min
	if d < 0 && r.Max >= r.Min {
		return math.MaxInt
	}
	return d
}

func (r Range) span() float64 {
	return float64(r.Max) - float64(r.Min)
}

func (r Range) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Nearest value in the range, halves rounded up.
func (r Range) Round(v float64) int {
	if v >= float64(r.Max) {
		return r.Max
	}
	if v <= float64(r.Min) {
		return r.Min
	}
	return r.Clamp(mathutil.RoundHalfUp(v))
}

// v+d clamped to the range, without overflowing.
func (r Range) Step(v, d int) int {
	v = r.Clamp(v)
	if d > 0 && v > r.Max-d {
		return r.Max
	}
	if d < 0 && v < r.Min-d {
		return r.Min
	}
	return r.Clamp(v + d)
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Min, r.Max)
}

//----------

func CalcChannel(bounds image.Rectangle, o Orientation, side TickSide, selRange bool, thumbLen int) (image.Rectangle, error) {
	if bounds.Empty() {
		return image.Rectangle{}, fmt.Errorf("channel: bounds %v: %w", bounds, ErrInvalidGeometry)
	}
	ax := axisOf(o)
	b := ax.rect(bounds)

	cy := channelThickness
	if selRange {
		cy = mathutil.Max(thumbLen-8, channelThickness)
	}

	var r image.Rectangle
	r.Min.X = b.Min.X + channelMargin
	r.Max.X = mathutil.Max(b.Max.X-channelMargin, r.Min.X)
	switch side {
	case TickBoth:
		r.Min.Y = b.Min.Y + (b.Dy()-cy)/2
		r.Max.Y = r.Min.Y + cy
	case TickTop:
		r.Min.Y = b.Min.Y + channelSideSpace
		r.Max.Y = r.Min.Y + cy
	default:
		r.Max.Y = b.Max.Y - channelSideSpace
		r.Min.Y = r.Max.Y - cy
	}
	return ax.rect(r), nil
}

//----------

// Thumb size along the track.
func thumbWidth(thumbLen int) int {
	return (thumbLen / 2) | 1
}

func CalcThumb(channel image.Rectangle, pos int, rng Range, thumbLen int, o Orientation, side TickSide) image.Rectangle {
	if channel.Empty() {
		return image.Rectangle{}
	}
	ax := axisOf(o)
	ch := ax.rect(channel)

	// zero length range pins the thumb to the start
	center := ch.Min.X + scaleToWidth(ch.Dx(), rng.Clamp(pos), rng)
	w := thumbWidth(thumbLen)

	var r image.Rectangle
	r.Min.X = center - w/2
	r.Max.X = r.Min.X + w

	depth := mathutil.Max(thumbLen-8, channelThickness)
	switch side {
	case TickBoth:
		mid := (ch.Min.Y + ch.Max.Y) / 2
		r.Min.Y = mathutil.Min(mid-depth/2, ch.Min.Y-thumbOtherOverhang)
		r.Max.Y = mathutil.Max(r.Min.Y+depth, ch.Max.Y+thumbOtherOverhang)
	case TickTop:
		r.Min.Y = ch.Min.Y - thumbTickOverhang
		r.Max.Y = mathutil.Max(r.Min.Y+depth, ch.Max.Y+thumbOtherOverhang)
	default:
		r.Max.Y = ch.Max.Y + thumbTickOverhang
		r.Min.Y = mathutil.Min(r.Max.Y-depth, ch.Min.Y-thumbOtherOverhang)
	}
	return ax.rect(r)
}

//----------

func CalcSelection(channel image.Rectangle, selMin, selMax int, rng Range, o Orientation) image.Rectangle {
	if rng.Len() <= 0 || channel.Empty() {
		return image.Rectangle{}
	}
	ax := axisOf(o)
	ch := ax.rect(channel)
	w := ch.Dx()

	var r image.Rectangle
	r.Min.X = ch.Min.X + scaleToWidth(w, rng.Clamp(selMin), rng)
	r.Max.X = ch.Min.X + scaleToWidth(w, rng.Clamp(selMax), rng)
	r.Min.Y = ch.Min.Y + selectionInset
	r.Max.Y = ch.Max.Y - selectionInset
	if r.Empty() {
		return image.Rectangle{}
	}
	return ax.rect(r)
}

// w*(v-min)/len, computed in floating point so that large ranges don't
// overflow. Zero for a zero length range.
func scaleToWidth(w, v int, rng Range) int {
	n := rng.span()
	if n <= 0 {
		return 0
	}
	return int(float64(w) * (float64(v) - float64(rng.Min)) / n)
}

//----------

type ThumbShape int

const (
	ThumbRect ThumbShape = iota
	ThumbPointed
)

// Outline of the thumb: a rectangle when ticks are on both sides (or there
// are no ticks), otherwise a pentagon pointing at the tick side.
func ThumbOutline(thumb image.Rectangle, o Orientation, side TickSide, noTicks bool) (ThumbShape, []image.Point) {
	if thumb.Empty() {
		return ThumbRect, nil
	}
	ax := axisOf(o)
	r := ax.rect(thumb)
	if side == TickBoth || noTicks {
		pts := []image.Point{
			r.Min,
			{r.Max.X, r.Min.Y},
			r.Max,
			{r.Min.X, r.Max.Y},
		}
		return ThumbRect, ax.points(pts)
	}

	notch := r.Dx() / 2
	mid := r.Min.X + notch
	var pts []image.Point
	if side == TickTop {
		pts = []image.Point{
			{mid, r.Min.Y},
			{r.Max.X, r.Min.Y + notch},
			r.Max,
			{r.Min.X, r.Max.Y},
			{r.Min.X, r.Min.Y + notch},
		}
	} else {
		pts = []image.Point{
			r.Min,
			{r.Max.X, r.Min.Y},
			{r.Max.X, r.Max.Y - notch},
			{mid, r.Max.Y},
			{r.Min.X, r.Max.Y - notch},
		}
	}
	return ThumbPointed, ax.points(pts)
}
