package trackbar

import (
	"image"
	"math"
	"testing"

	"github.com/jmigpin/trackbar/util/uiutil/event"
)

func TestDefaults1(t *testing.T) {
	tb, _ := newTestTrackbar(Options{})
	if r := tb.Range(); r != (Range{0, 100}) {
		t.Fatal(r)
	}
	if tb.Pos() != 0 || tb.LineSize() != 1 || tb.PageSize() != 20 {
		t.Fatal(tb.Pos(), tb.LineSize(), tb.PageSize())
	}
	if tb.ThumbLength() != 21 {
		t.Fatal(tb.ThumbLength())
	}
	if r := tb.ChannelRect(); r != image.Rect(8, 26, 192, 30) {
		t.Fatal(r)
	}
	if r := tb.ThumbRect(); r != image.Rect(3, 21, 14, 34) {
		t.Fatal(r)
	}

	tb2, _ := newTestTrackbar(Options{Features: EnableSelRange})
	if tb2.ThumbLength() != 23 {
		t.Fatal(tb2.ThumbLength())
	}
}

func TestSetPos1(t *testing.T) {
	tb, h := newTestTrackbar(Options{})
	w := []int{math.MinInt, -1, 0, 50, 100, 101, math.MaxInt}
	for _, v := range w {
		tb.SetPos(v)
		r := tb.Range()
		if p := tb.Pos(); p < r.Min || p > r.Max {
			t.Fatalf("%v: pos %v outside %v", v, p, r)
		}
	}
	if tb.Pos() != 100 {
		t.Fatal(tb.Pos())
	}
	// setters do not notify
	if len(h.notes) != 0 {
		t.Fatal(h.notesString())
	}
}

func TestSetPos2(t *testing.T) {
	tb, _ := newTestTrackbar(Options{})
	tb.SetPos(20)
	if r := tb.ThumbRect(); r != image.Rect(39, 21, 50, 34) {
		t.Fatal(r)
	}
	tb.SetRange(0, 10)
	if tb.Pos() != 10 {
		t.Fatal(tb.Pos())
	}
}

func TestPageSize1(t *testing.T) {
	tb, _ := newTestTrackbar(Options{})
	tb.SetRange(0, 1000)
	if tb.PageSize() != 200 {
		t.Fatal(tb.PageSize())
	}
	tb.SetRange(0, 3)
	if tb.PageSize() != 1 {
		t.Fatal(tb.PageSize())
	}
	if old := tb.SetPageSize(7); old != 1 {
		t.Fatal(old)
	}
	tb.SetRange(0, 100)
	if tb.PageSize() != 7 {
		t.Fatal(tb.PageSize())
	}
	tb.SetPageSize(-1)
	if tb.PageSize() != 20 {
		t.Fatal(tb.PageSize())
	}
	if old := tb.SetLineSize(4); old != 1 || tb.LineSize() != 4 {
		t.Fatal(old, tb.LineSize())
	}
}

func TestLineSize1(t *testing.T) {
	tb, h := newTestTrackbar(Options{})
	tb.SetPos(50)
	if old := tb.SetLineSize(-5); old != 1 || tb.LineSize() != 0 {
		t.Fatal(old, tb.LineSize())
	}
	key(tb, event.KSymRight)
	key(tb, event.KSymLeft)
	if tb.Pos() != 50 {
		t.Fatal(tb.Pos())
	}
	if s := h.notesString(); s != "lineincrement(50) linedecrement(50)" {
		t.Fatal(s)
	}
	tb.SetWheelLines(-2)
	h.clearNotes()
	tb.HandleEvent(&event.MouseDown{Button: event.ButtonWheelDown})
	if tb.Pos() != 50 {
		t.Fatal(tb.Pos())
	}
}

func TestLargeRange1(t *testing.T) {
	tb, h := newTestTrackbar(Options{})
	h.echoCapture = true
	tb.SetRange(math.MinInt, math.MaxInt)
	tb.SetPos(0)
	if r := tb.ThumbRect(); r != image.Rect(95, 21, 106, 34) {
		t.Fatal(r)
	}
	if tb.PageSize() != math.MaxInt/5 {
		t.Fatal(tb.PageSize())
	}
	down(tb, 100, 30)
	if !tb.Dragging() {
		t.Fatal("not dragging")
	}
	move(tb, 192, 30)
	if v, ok := tb.DragPos(); !ok || v != math.MaxInt {
		t.Fatal(v, ok)
	}
	up(tb, 192, 30)
	if tb.Pos() != math.MaxInt {
		t.Fatal(tb.Pos())
	}
	key(tb, event.KSymRight)
	key(tb, event.KSymPageUp)
	if tb.Pos() != math.MaxInt-math.MaxInt/5 {
		t.Fatal(tb.Pos())
	}
	key(tb, event.KSymHome)
	key(tb, event.KSymPageUp)
	if tb.Pos() != math.MinInt {
		t.Fatal(tb.Pos())
	}
}

func TestSetRange1(t *testing.T) {
	tb, _ := newTestTrackbar(Options{})
	tb.SetRange(10, 0)
	if r := tb.Range(); r != (Range{0, 10}) {
		t.Fatal(r)
	}
	tb.SetRangeMin(50)
	if r := tb.Range(); r != (Range{50, 50}) {
		t.Fatal(r)
	}
	if tb.Pos() != 50 {
		t.Fatal(tb.Pos())
	}
	tb.SetRangeMax(-5)
	if r := tb.Range(); r != (Range{-5, -5}) {
		t.Fatal(r)
	}
	if tb.Pos() != -5 {
		t.Fatal(tb.Pos())
	}
	tb.SetRangeMax(5)
	if r := tb.Range(); r != (Range{-5, 5}) {
		t.Fatal(r)
	}
}

func TestSelection1(t *testing.T) {
	tb, _ := newTestTrackbar(Options{Features: EnableSelRange})
	tb.SetSelection(-10, 200)
	if a, b := tb.Selection(); a != 0 || b != 100 {
		t.Fatal(a, b)
	}
	tb.SetSelStart(20)
	tb.SetSelEnd(60)
	if r := tb.SelectionRect(); r != image.Rect(44, 17, 118, 28) {
		t.Fatal(r)
	}
	tb.ClearSelection()
	if a, b := tb.Selection(); a != 0 || b != 0 {
		t.Fatal(a, b)
	}
	if r := tb.SelectionRect(); !r.Empty() {
		t.Fatal(r)
	}

	// range change clamps the selection
	tb.SetSelection(20, 60)
	tb.SetRange(0, 40)
	if a, b := tb.Selection(); a != 20 || b != 40 {
		t.Fatal(a, b)
	}
}

func TestThumbLength1(t *testing.T) {
	tb, _ := newTestTrackbar(Options{})
	if tb.SetThumbLength(30) {
		t.Fatal("expected not fixed")
	}
	if tb.ThumbLength() != 21 {
		t.Fatal(tb.ThumbLength())
	}

	tb2, _ := newTestTrackbar(Options{Features: FixedLength})
	if !tb2.SetThumbLength(31) {
		t.Fatal("expected fixed")
	}
	// width along the track
	if r := tb2.ThumbRect(); r.Dx() != 15 {
		t.Fatal(r)
	}
	if tb2.SetThumbLength(0) {
		t.Fatal("expected invalid length")
	}
}

func TestBounds1(t *testing.T) {
	tb, h := newTestTrackbar(Options{})
	n := h.invalidates
	tb.SetBounds(image.Rect(0, 0, 216, 40))
	if h.invalidates == n {
		t.Fatal("expected invalidate")
	}
	if r := tb.ChannelRect(); r != image.Rect(8, 26, 208, 30) {
		t.Fatal(r)
	}

	tb.SetBounds(image.Rectangle{})
	if _, err := tb.Frame(); err == nil {
		t.Fatal("expected error")
	}
}

func TestState1(t *testing.T) {
	tb, _ := newTestTrackbar(Options{})
	tb.SetTickFrequency(50)
	tb.SetPos(20)
	s := tb.State()
	if s.Pos != 20 || s.Thumb != image.Rect(39, 21, 50, 34) {
		t.Fatal(s)
	}
	if len(s.Ticks) != 1 || s.Ticks[0] != 50 {
		t.Fatal(s.Ticks)
	}
	if s.Captured || s.Dragging || s.DragPosValid {
		t.Fatal(s)
	}
}

func TestDestroy1(t *testing.T) {
	tb, h := newTestTrackbar(Options{})
	tb.SetPos(20)
	down(tb, 44, 30)
	if h.captures != 1 {
		t.Fatal(h.captures)
	}
	tb.Destroy()
	if h.releases != 1 {
		t.Fatal(h.releases)
	}
	if tb.Dragging() {
		t.Fatal("still dragging")
	}
	if hd := key(tb, 0); hd {
		t.Fatal("handled after destroy")
	}
	tb.Destroy()
	if h.releases != 1 {
		t.Fatal(h.releases)
	}
}
