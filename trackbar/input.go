package trackbar

import (
	"image"
	"math"
	"strconv"
	"time"

	"github.com/jmigpin/trackbar/util/uiutil/event"
)

const (
	AutoPageTimerID = 1
	AutoPageDelay   = 500 * time.Millisecond
)

// Paint request. A nil Surface paints to the host surface (SurfaceHost).
type PaintRequest struct {
	Surface Surface
}

func (tb *Trackbar) HandleEvent(ev interface{}) event.Handle {
	if tb.destroyed {
		return event.NotHandled
	}
	switch evt := ev.(type) {
	case *event.FocusIn:
		tb.onFocusGained()
	case *event.FocusOut:
		tb.onFocusLost()
	case *event.MouseDown:
		switch evt.Button {
		case event.ButtonLeft:
			tb.onPointerDown(evt.Point)
		case event.ButtonWheelUp:
			tb.onWheel(-1)
		case event.ButtonWheelDown:
			tb.onWheel(1)
		default:
			return event.NotHandled
		}
	case *event.MouseMove:
		tb.onPointerMove(evt.Point)
	case *event.MouseUp:
		if evt.Button != event.ButtonLeft {
			return event.NotHandled
		}
		return tb.onPointerUp()
	case *event.CaptureLost:
		return tb.onCaptureLost()
	case *event.KeyDown:
		return tb.onKeyDown(evt.KeySym)
	case *event.KeyUp:
		return tb.onKeyUp(evt.KeySym)
	case *event.Resize:
		tb.SetBounds(evt.Rect)
	case *event.Timer:
		if evt.ID != AutoPageTimerID {
			return event.NotHandled
		}
		tb.onAutoPageTimer()
	case *PaintRequest:
		s := evt.Surface
		if s == nil {
			sh, ok := tb.host.(SurfaceHost)
			if !ok {
				return event.NotHandled
			}
			s = sh.Surface()
		}
		tb.Paint(s)
	default:
		return event.NotHandled
	}
	return event.Handled
}

//----------

func (tb *Trackbar) onFocusGained() {
	tb.hasFocus = true
	tb.invalidate()
}

func (tb *Trackbar) onFocusLost() {
	tb.hasFocus = false
	if tb.dragActive {
		tb.dragActive = false
		tb.flags.Remove(FlagDragPosValid)
		tb.flags.Add(FlagThumbPosChanged)
		tb.deactivateTooltip()
		tb.notify(EndTrack, tb.pos)
		tb.releaseCapture()
	}
	tb.invalidate()
}

//----------

func (tb *Trackbar) onPointerDown(p image.Point) {
	if !tb.hasFocus {
		tb.hasFocus = true
		if tb.host != nil {
			tb.host.SetFocus()
		}
		tb.invalidate()
	}
	tb.layout()
	tb.lastPoint = p
	tb.dropDragPos()

	if tb.hitThumb(p) {
		tb.dragActive = true
		tb.dragPos = tb.pos
		tb.setCapture()
		tb.activateTooltip(p, tb.pos)
		tb.invalidate()
		return
	}

	// page click
	tb.setCapture()
	clickPos, err := PlaceToPosition(tb.ax.along(p), tb.channel, tb.rng, tb.opt.Orientation)
	if err != nil {
		return
	}
	dir := -1
	if clickPos > float64(tb.pos) {
		dir = 1
	}
	tb.pageStep(dir)
	tb.startAutoPage(dir)
}

// Only the coordinate along the track is tested.
func (tb *Trackbar) hitThumb(p image.Point) bool {
	if tb.opt.Features.HasAny(NoThumb) || tb.thumb.Empty() {
		return false
	}
	u := tb.ax.along(p)
	r := tb.ax.rect(tb.thumb)
	return u >= r.Min.X && u < r.Max.X
}

// Notifies even if the position is already at the bound.
func (tb *Trackbar) pageStep(dir int) {
	if dir > 0 {
		tb.setPos(tb.rng.Step(tb.pos, tb.pageSize))
		tb.notify(PageIncrement, tb.pos)
	} else {
		tb.setPos(tb.rng.Step(tb.pos, -tb.pageSize))
		tb.notify(PageDecrement, tb.pos)
	}
}

//----------

func (tb *Trackbar) onPointerMove(p image.Point) {
	tb.lastPoint = p
	if !tb.dragActive {
		tb.updateHot(p)
		return
	}
	tb.layout()
	v, err := PlaceToPosition(tb.ax.along(p), tb.channel, tb.rng, tb.opt.Orientation)
	if err != nil {
		return
	}
	tb.dragPos = tb.rng.Round(v)
	tb.flags.Add(FlagDragPosValid | FlagThumbPosChanged)
	tb.notify(ThumbTrack, tb.dragPos)
	tb.updateTooltip(p, tb.dragPos)
	tb.invalidate()
}

func (tb *Trackbar) updateHot(p image.Point) {
	if tb.captured {
		return
	}
	tb.layout()
	hot := p.In(tb.thumb) && !tb.opt.Features.HasAny(NoThumb)
	if hot != tb.hot {
		tb.hot = hot
		tb.invalidate()
	}
}

//----------

// Ends the drag or page tracking started by the pointer down. The pending
// drag position is not committed here; that happens when the host reports
// the capture release with CaptureLost, from inside ReleaseCapture. A pending
// position still left once ReleaseCapture returns is dropped.
func (tb *Trackbar) onPointerUp() event.Handle {
	if !tb.captured && !tb.dragActive {
		return event.NotHandled
	}
	tb.stopAutoPage()
	tb.notify(EndTrack, tb.pos)
	if tb.dragActive {
		tb.dragActive = false
		tb.deactivateTooltip()
	}
	tb.invalidate()
	tb.releaseCapture()
	tb.dropDragPos()
	return event.Handled
}

// Commits a valid pending drag position. Also the cancel path when the
// capture is taken away during a drag. Not handled if there is nothing to
// end, as when the release was already ended by focus loss.
func (tb *Trackbar) onCaptureLost() event.Handle {
	if !tb.captured && !tb.dragActive && !tb.flags.HasAny(FlagDragPosValid) {
		return event.NotHandled
	}
	tb.captured = false
	tb.stopAutoPage()
	if tb.dragActive {
		tb.dragActive = false
		tb.deactivateTooltip()
	}
	if tb.flags.HasAny(FlagDragPosValid) {
		tb.flags.Remove(FlagDragPosValid)
		tb.flags.Add(FlagThumbPosChanged)
		tb.pos = tb.rng.Clamp(tb.dragPos)
		tb.notify(ThumbPosition, tb.pos)
		tb.invalidate()
	}
	tb.notify(EndTrack, tb.pos)
	return event.Handled
}

func (tb *Trackbar) dropDragPos() {
	if !tb.flags.HasAny(FlagDragPosValid) {
		return
	}
	tb.flags.Remove(FlagDragPosValid)
	tb.flags.Add(FlagThumbPosChanged)
	tb.invalidate()
}

//----------

func (tb *Trackbar) onKeyDown(ks event.KeySym) event.Handle {
	switch ks {
	case event.KSymLeft, event.KSymUp:
		if tb.pos == tb.rng.Min {
			break
		}
		tb.setPos(tb.rng.Step(tb.pos, -tb.lineSize))
		tb.notify(LineDecrement, tb.pos)
	case event.KSymRight, event.KSymDown:
		if tb.pos == tb.rng.Max {
			break
		}
		tb.setPos(tb.rng.Step(tb.pos, tb.lineSize))
		tb.notify(LineIncrement, tb.pos)
	case event.KSymPageUp:
		if tb.pos == tb.rng.Min {
			break
		}
		tb.pageStep(-1)
	case event.KSymPageDown:
		if tb.pos == tb.rng.Max {
			break
		}
		tb.pageStep(1)
	case event.KSymHome:
		if tb.pos == tb.rng.Min {
			break
		}
		tb.setPos(tb.rng.Min)
		tb.notify(Top, tb.pos)
	case event.KSymEnd:
		if tb.pos == tb.rng.Max {
			break
		}
		tb.setPos(tb.rng.Max)
		tb.notify(Bottom, tb.pos)
	default:
		return event.NotHandled
	}
	return event.Handled
}

func (tb *Trackbar) onKeyUp(ks event.KeySym) event.Handle {
	if !isNavKey(ks) {
		return event.NotHandled
	}
	tb.notify(EndTrack, tb.pos)
	return event.Handled
}

func isNavKey(ks event.KeySym) bool {
	switch ks {
	case event.KSymLeft, event.KSymUp, event.KSymRight, event.KSymDown,
		event.KSymPageUp, event.KSymPageDown, event.KSymHome, event.KSymEnd:
		return true
	}
	return false
}

//----------

// Wheel up (dir<0) moves towards the minimum.
func (tb *Trackbar) onWheel(dir int) {
	step := mulClamped(tb.lineSize, tb.wheelLines)
	if dir < 0 {
		if tb.pos == tb.rng.Min {
			return
		}
		tb.setPos(tb.rng.Step(tb.pos, -step))
		tb.notify(LineDecrement, tb.pos)
	} else {
		if tb.pos == tb.rng.Max {
			return
		}
		tb.setPos(tb.rng.Step(tb.pos, step))
		tb.notify(LineIncrement, tb.pos)
	}
}

// Saturates at math.MaxInt. Sizes are never negative.
func mulClamped(a, b int) int {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

//----------

func (tb *Trackbar) startAutoPage(dir int) {
	th, ok := tb.host.(TimerHost)
	if !ok {
		return
	}
	tb.autoPage = dir
	th.SetTimer(AutoPageTimerID, AutoPageDelay)
}

func (tb *Trackbar) stopAutoPage() {
	if tb.autoPage == 0 {
		return
	}
	tb.autoPage = 0
	if th, ok := tb.host.(TimerHost); ok {
		th.KillTimer(AutoPageTimerID)
	}
}

// Repeats the page step while the pointer is still past the thumb in the
// direction of the first step.
func (tb *Trackbar) onAutoPageTimer() {
	if tb.autoPage == 0 || !tb.captured || tb.dragActive {
		return
	}
	tb.layout()
	u := tb.ax.along(tb.lastPoint)
	r := tb.ax.rect(tb.thumb)
	dir := 0
	if u >= r.Max.X {
		dir = 1
	} else if u < r.Min.X {
		dir = -1
	}
	if dir != tb.autoPage {
		return
	}
	tb.pageStep(dir)
}

//----------

func (tb *Trackbar) setCapture() {
	if tb.captured {
		return
	}
	tb.captured = true
	if tb.host != nil {
		tb.host.SetCapture()
	}
}

// State is updated before calling the host, which may report CaptureLost
// synchronously.
func (tb *Trackbar) releaseCapture() {
	if !tb.captured {
		return
	}
	tb.captured = false
	if tb.host != nil {
		tb.host.ReleaseCapture()
	}
}

//----------

func (tb *Trackbar) activateTooltip(p image.Point, v int) {
	if !tb.opt.Features.HasAny(ToolTips) || tb.tooltip == nil {
		return
	}
	tb.tipActive = true
	tb.tooltip.Activate(p, strconv.Itoa(v))
}

func (tb *Trackbar) updateTooltip(p image.Point, v int) {
	if !tb.tipActive {
		return
	}
	tb.tooltip.Update(p, strconv.Itoa(v))
}

func (tb *Trackbar) deactivateTooltip() {
	if !tb.tipActive {
		return
	}
	tb.tipActive = false
	tb.tooltip.Deactivate()
}

//----------

func (tb *Trackbar) notify(c Code, pos int) {
	if tb.host == nil {
		return
	}
	tb.host.Notify(Notification{Code: c, Pos: pos, Vertical: tb.opt.Orientation == Vertical})
}
