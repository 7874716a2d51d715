package trackbar

import (
	"fmt"
	"image"

	"github.com/jmigpin/trackbar/util/mathutil"
)

const (
	defaultRangeMax   = 100
	defaultLineSize   = 1
	defaultWheelLines = 3
)

type Flags uint8

const (
	FlagThumbPosChanged Flags = 1 << iota
	FlagThumbSizeChanged
	FlagSelChanged
	FlagDragPosValid
)

func (f *Flags) Add(u Flags)        { *f |= u }
func (f *Flags) Remove(u Flags)     { *f &^= u }
func (f Flags) HasAny(u Flags) bool { return f&u != 0 }

//----------

// Trackbar is the state of one control instance. It is driven from a single
// goroutine (the host's event loop); it does no locking.
type Trackbar struct {
	host    Host
	tooltip Tooltip
	opt     Options
	ax      axis

	bounds      image.Rectangle
	rng         Range
	pos         int
	lineSize    int
	pageSize    int
	pageSizeSet bool // explicit, not derived from the range
	selMin      int
	selMax      int
	tics        tics
	thumbLen    int
	wheelLines  int

	// derived geometry
	channel   image.Rectangle
	thumb     image.Rectangle
	selection image.Rectangle
	geomErr   error
	flags     Flags

	// interaction
	hasFocus   bool
	captured   bool
	dragActive bool
	dragPos    int
	tipActive  bool
	hot        bool
	autoPage   int // direction of the auto-repeat paging, zero if off
	lastPoint  image.Point

	buddies   [2]Buddy
	destroyed bool
}

func New(host Host, bounds image.Rectangle, opt Options) *Trackbar {
	tb := &Trackbar{host: host, opt: opt, ax: axisOf(opt.Orientation)}
	tb.bounds = bounds
	tb.rng = Range{0, defaultRangeMax}
	tb.lineSize = defaultLineSize
	tb.wheelLines = defaultWheelLines
	tb.thumbLen = DefaultThumbLength(opt.Features.HasAny(EnableSelRange))
	if opt.Features.HasAny(AutoTicks) {
		tb.tics.freq = 1
	}
	tb.rangeChanged()
	tb.flags.Add(FlagThumbSizeChanged)
	return tb
}

// Tears down the control. Holds no resources afterwards; later events are
// not handled.
func (tb *Trackbar) Destroy() {
	if tb.destroyed {
		return
	}
	tb.stopAutoPage()
	tb.deactivateTooltip()
	tb.dragActive = false
	tb.flags.Remove(FlagDragPosValid)
	tb.releaseCapture()
	tb.tics = tics{}
	tb.buddies = [2]Buddy{}
	tb.destroyed = true
}

//----------

func (tb *Trackbar) Options() Options {
	return tb.opt
}

func (tb *Trackbar) Bounds() image.Rectangle {
	return tb.bounds
}

func (tb *Trackbar) SetBounds(r image.Rectangle) {
	tb.bounds = r
	tb.flags.Add(FlagThumbSizeChanged)
	tb.alignBuddies()
	tb.invalidate()
}

//----------

func (tb *Trackbar) Range() Range {
	return tb.rng
}

// Sets both bounds; swapped if min > max.
func (tb *Trackbar) SetRange(min, max int) {
	if min > max {
		min, max = max, min
	}
	tb.rng = Range{min, max}
	tb.rangeChanged()
}

// A min greater than the current max also moves the max.
func (tb *Trackbar) SetRangeMin(v int) {
	tb.rng.Min = v
	if tb.rng.Max < v {
		tb.rng.Max = v
	}
	tb.rangeChanged()
}

// A max lower than the current min also moves the min.
func (tb *Trackbar) SetRangeMax(v int) {
	tb.rng.Max = v
	if tb.rng.Min > v {
		tb.rng.Min = v
	}
	tb.rangeChanged()
}

func (tb *Trackbar) rangeChanged() {
	tb.pos = tb.rng.Clamp(tb.pos)
	tb.selMin = tb.rng.Clamp(tb.selMin)
	tb.selMax = tb.rng.Clamp(tb.selMax)
	if !tb.pageSizeSet {
		tb.pageSize = autoPageSize(tb.rng)
	}
	tb.tics.invalidate()
	tb.flags.Add(FlagThumbPosChanged | FlagSelChanged)
	tb.invalidate()
}

func autoPageSize(rng Range) int {
	return mathutil.Max(1, rng.Len()/5)
}

//----------

func (tb *Trackbar) Pos() int {
	return tb.pos
}

// Clamped to the range.
func (tb *Trackbar) SetPos(v int) {
	tb.setPos(v)
}

// Returns true if the position changed. A pending drag position is dropped
// either way.
func (tb *Trackbar) setPos(v int) bool {
	tb.dropDragPos()
	v = tb.rng.Clamp(v)
	if v == tb.pos {
		return false
	}
	tb.pos = v
	tb.flags.Add(FlagThumbPosChanged)
	tb.invalidate()
	return true
}

//----------

func (tb *Trackbar) LineSize() int {
	return tb.lineSize
}

// Returns the previous line size. Negative values are stored as zero.
func (tb *Trackbar) SetLineSize(v int) int {
	old := tb.lineSize
	tb.lineSize = mathutil.Max(0, v)
	return old
}

func (tb *Trackbar) PageSize() int {
	return tb.pageSize
}

// Returns the previous page size. A negative value restores the page size
// derived from the range.
func (tb *Trackbar) SetPageSize(v int) int {
	old := tb.pageSize
	if v < 0 {
		tb.pageSizeSet = false
		tb.pageSize = autoPageSize(tb.rng)
	} else {
		tb.pageSizeSet = true
		tb.pageSize = v
	}
	return old
}

// Number of lines a wheel notch moves. Negative values are stored as zero.
func (tb *Trackbar) SetWheelLines(n int) {
	tb.wheelLines = mathutil.Max(0, n)
}

//----------

func (tb *Trackbar) Selection() (int, int) {
	return tb.selMin, tb.selMax
}

func (tb *Trackbar) SetSelection(min, max int) {
	tb.selMin = tb.rng.Clamp(min)
	tb.selMax = tb.rng.Clamp(max)
	tb.selChanged()
}

func (tb *Trackbar) SetSelStart(v int) {
	tb.selMin = tb.rng.Clamp(v)
	tb.selChanged()
}

func (tb *Trackbar) SetSelEnd(v int) {
	tb.selMax = tb.rng.Clamp(v)
	tb.selChanged()
}

func (tb *Trackbar) ClearSelection() {
	tb.selMin = tb.rng.Min
	tb.selMax = tb.rng.Min
	tb.selChanged()
}

func (tb *Trackbar) selChanged() {
	tb.flags.Add(FlagSelChanged)
	if tb.opt.Features.HasAny(EnableSelRange) {
		tb.invalidate()
	}
}

//----------

func (tb *Trackbar) ThumbLength() int {
	return tb.thumbLen
}

// Only applies with the FixedLength feature; returns false otherwise.
func (tb *Trackbar) SetThumbLength(v int) bool {
	if !tb.opt.Features.HasAny(FixedLength) || v <= 0 {
		return false
	}
	tb.thumbLen = v
	tb.flags.Add(FlagThumbSizeChanged)
	tb.invalidate()
	return true
}

//----------

func (tb *Trackbar) TickFrequency() int {
	return tb.tics.freq
}

// Zero (or negative) disables the frequency derived ticks.
func (tb *Trackbar) SetTickFrequency(freq int) {
	if freq < 0 {
		freq = 0
	}
	tb.tics.freq = freq
	tb.tics.invalidate()
	tb.invalidate()
}

// Adds an explicit tick. Fails if v is outside the range.
func (tb *Trackbar) SetTick(v int) error {
	if !tb.rng.Contains(v) {
		return fmt.Errorf("set tick %d: range %v: %w", v, tb.rng, ErrOutOfRange)
	}
	tb.tics.add(tb.rng, v)
	tb.invalidate()
	return nil
}

// Removes all ticks. The frequency is kept for the next recalculation.
func (tb *Trackbar) ClearTicks() {
	tb.tics.clear()
	tb.invalidate()
}

// Tick values, not including the end ticks.
func (tb *Trackbar) Ticks() []int {
	v := tb.tics.values(tb.rng)
	u := make([]int, len(v))
	copy(u, v)
	return u
}

// Number of ticks, including the two end ticks; zero with NoTicks.
func (tb *Trackbar) NumTicks() int {
	if tb.opt.Features.HasAny(NoTicks) {
		return 0
	}
	return len(tb.tics.values(tb.rng)) + 2
}

// Value of the i-th tick (end ticks not included).
func (tb *Trackbar) Tick(i int) (int, error) {
	v := tb.tics.values(tb.rng)
	if i < 0 || i >= len(v) {
		return 0, fmt.Errorf("tick index %d: %w", i, ErrOutOfRange)
	}
	return v[i], nil
}

// Pixel coordinate along the track of the i-th tick.
func (tb *Trackbar) TickPixel(i int) (int, error) {
	v, err := tb.Tick(i)
	if err != nil {
		return 0, err
	}
	tb.layout()
	if tb.geomErr != nil {
		return 0, tb.geomErr
	}
	return TicToPixel(v, tb.channel, tb.rng, tb.opt.Orientation)
}

//----------

func (tb *Trackbar) Tooltip() Tooltip {
	return tb.tooltip
}

// Returns the previous tooltip.
func (tb *Trackbar) SetTooltip(t Tooltip) Tooltip {
	old := tb.tooltip
	if tb.tipActive && old != nil {
		old.Deactivate()
	}
	tb.tipActive = false
	tb.tooltip = t
	return old
}

//----------

func (tb *Trackbar) ChannelRect() image.Rectangle {
	tb.layout()
	return tb.channel
}

func (tb *Trackbar) ThumbRect() image.Rectangle {
	tb.layout()
	return tb.thumb
}

func (tb *Trackbar) SelectionRect() image.Rectangle {
	tb.layout()
	return tb.selection
}

func (tb *Trackbar) HasFocus() bool {
	return tb.hasFocus
}

func (tb *Trackbar) Dragging() bool {
	return tb.dragActive
}

// Pending drag position; valid only if the second return is true, which is
// never the case once the drag has ended.
func (tb *Trackbar) DragPos() (int, bool) {
	return tb.dragPos, tb.flags.HasAny(FlagDragPosValid)
}

//----------

// Recalculates the derived geometry marked as changed.
func (tb *Trackbar) layout() {
	if tb.flags.HasAny(FlagThumbSizeChanged) {
		f := tb.opt.Features
		ch, err := CalcChannel(tb.bounds, tb.opt.Orientation, tb.opt.TickSide, f.HasAny(EnableSelRange), tb.thumbLen)
		tb.channel = ch
		tb.geomErr = err
		tb.flags.Add(FlagThumbPosChanged | FlagSelChanged)
	}
	if tb.flags.HasAny(FlagThumbPosChanged) {
		tb.thumb = CalcThumb(tb.channel, tb.thumbPos(), tb.rng, tb.thumbLen, tb.opt.Orientation, tb.opt.TickSide)
	}
	if tb.flags.HasAny(FlagSelChanged) {
		tb.selection = CalcSelection(tb.channel, tb.selMin, tb.selMax, tb.rng, tb.opt.Orientation)
	}
	tb.flags.Remove(FlagThumbSizeChanged | FlagThumbPosChanged | FlagSelChanged)
}

// Position shown by the thumb: the pending drag position while valid.
func (tb *Trackbar) thumbPos() int {
	if tb.flags.HasAny(FlagDragPosValid) {
		return tb.dragPos
	}
	return tb.pos
}

func (tb *Trackbar) invalidate() {
	if tb.host != nil && !tb.destroyed {
		tb.host.Invalidate(tb.bounds)
	}
}

//----------

type State struct {
	Bounds        image.Rectangle
	Range         Range
	Pos           int
	LineSize      int
	PageSize      int
	SelMin        int
	SelMax        int
	TickFrequency int
	Ticks         []int
	ThumbLength   int
	Channel       image.Rectangle
	Thumb         image.Rectangle
	Selection     image.Rectangle
	HasFocus      bool
	Captured      bool
	Dragging      bool
	DragPos       int
	DragPosValid  bool
}

// Snapshot of the control state, with the geometry up to date.
func (tb *Trackbar) State() State {
	tb.layout()
	return State{
		Bounds:        tb.bounds,
		Range:         tb.rng,
		Pos:           tb.pos,
		LineSize:      tb.lineSize,
		PageSize:      tb.pageSize,
		SelMin:        tb.selMin,
		SelMax:        tb.selMax,
		TickFrequency: tb.tics.freq,
		Ticks:         tb.Ticks(),
		ThumbLength:   tb.thumbLen,
		Channel:       tb.channel,
		Thumb:         tb.thumb,
		Selection:     tb.selection,
		HasFocus:      tb.hasFocus,
		Captured:      tb.captured,
		Dragging:      tb.dragActive,
		DragPos:       tb.dragPos,
		DragPosValid:  tb.flags.HasAny(FlagDragPosValid),
	}
}
