package trackbar

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/jmigpin/trackbar/util/uiutil/event"
)

type testHost struct {
	tb          *Trackbar
	notes       []Notification
	captures    int
	releases    int
	focuses     int
	invalidates int
	echoCapture bool // report capture releases back as CaptureLost
}

func (h *testHost) Notify(n Notification)      { h.notes = append(h.notes, n) }
func (h *testHost) Invalidate(image.Rectangle) { h.invalidates++ }
func (h *testHost) SetCapture()                { h.captures++ }
func (h *testHost) SetFocus()                  { h.focuses++ }
func (h *testHost) ReleaseCapture() {
	h.releases++
	if h.echoCapture && h.tb != nil {
		h.tb.HandleEvent(&event.CaptureLost{})
	}
}

func (h *testHost) notesString() string {
	u := []string{}
	for _, n := range h.notes {
		u = append(u, n.String())
	}
	return strings.Join(u, " ")
}

func (h *testHost) clearNotes() {
	h.notes = nil
}

//----------

type timerHost struct {
	testHost
	timers map[int]time.Duration
}

func (h *timerHost) SetTimer(id int, d time.Duration) {
	if h.timers == nil {
		h.timers = map[int]time.Duration{}
	}
	h.timers[id] = d
}
func (h *timerHost) KillTimer(id int) {
	delete(h.timers, id)
}

//----------

type testTooltip struct {
	calls []string
}

func (t *testTooltip) Activate(p image.Point, text string) {
	t.calls = append(t.calls, fmt.Sprintf("activate%v:%s", p, text))
}
func (t *testTooltip) Update(p image.Point, text string) {
	t.calls = append(t.calls, fmt.Sprintf("update%v:%s", p, text))
}
func (t *testTooltip) Deactivate() {
	t.calls = append(t.calls, "deactivate")
}

//----------

type testSurface struct {
	calls []string
	ticks []TickMark
	thumb *Thumb
}

func (s *testSurface) Clear(r image.Rectangle) { s.calls = append(s.calls, "clear") }
func (s *testSurface) DrawEdge(r image.Rectangle, e Edge) {
	s.calls = append(s.calls, fmt.Sprintf("edge%v", r))
}
func (s *testSurface) FillRect(r image.Rectangle, f Fill) {
	name := "channel"
	if f == FillSelection {
		name = "selection"
	}
	s.calls = append(s.calls, fmt.Sprintf("fill:%s%v", name, r))
}
func (s *testSurface) DrawTick(t TickMark) {
	s.calls = append(s.calls, "tick")
	s.ticks = append(s.ticks, t)
}
func (s *testSurface) DrawThumb(t Thumb) {
	s.calls = append(s.calls, "thumb")
	s.thumb = &t
}
func (s *testSurface) DrawFocusRect(r image.Rectangle) {
	s.calls = append(s.calls, "focus")
}

//----------

var testBounds = image.Rect(0, 0, 200, 40)

func newTestTrackbar(opt Options) (*Trackbar, *testHost) {
	h := &testHost{}
	tb := New(h, testBounds, opt)
	h.tb = tb
	return tb, h
}

func down(tb *Trackbar, x, y int) event.Handle {
	return tb.HandleEvent(&event.MouseDown{Point: image.Point{x, y}, Button: event.ButtonLeft})
}
func move(tb *Trackbar, x, y int) event.Handle {
	return tb.HandleEvent(&event.MouseMove{Point: image.Point{x, y}, Buttons: event.MouseButtons(event.ButtonLeft)})
}
func up(tb *Trackbar, x, y int) event.Handle {
	return tb.HandleEvent(&event.MouseUp{Point: image.Point{x, y}, Button: event.ButtonLeft})
}
func key(tb *Trackbar, ks event.KeySym) event.Handle {
	return tb.HandleEvent(&event.KeyDown{KeySym: ks})
}
