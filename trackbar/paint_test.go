package trackbar

import (
	"image"
	"strings"
	"testing"

	"github.com/jmigpin/trackbar/util/uiutil/event"
)

func TestRender1(t *testing.T) {
	tb, _ := newTestTrackbar(Options{})
	tb.SetTickFrequency(20)
	s := &testSurface{}
	tb.Paint(s)
	exp := "clear edge(8,26)-(192,30) tick tick tick tick tick tick thumb"
	if u := strings.Join(s.calls, " "); u != exp {
		t.Fatalf("got %v\nexpected %v", u, exp)
	}

	first := s.ticks[0]
	if first.Kind != TickEdge || first.P0 != (image.Point{8, 35}) || first.P1 != (image.Point{8, 39}) {
		t.Fatal(first)
	}
	second := s.ticks[1]
	if second.Kind != TickNormal || second.Value != 20 || second.P0 != (image.Point{44, 35}) || second.P1 != (image.Point{44, 38}) {
		t.Fatal(second)
	}
	last := s.ticks[5]
	if last.Kind != TickEdge || last.Value != 100 || last.P0.X != 192 {
		t.Fatal(last)
	}
	if s.thumb.Shape != ThumbPointed || len(s.thumb.Points) != 5 {
		t.Fatal(s.thumb)
	}

	tb.HandleEvent(&event.FocusIn{})
	s = &testSurface{}
	tb.Paint(s)
	if s.calls[len(s.calls)-1] != "focus" {
		t.Fatal(s.calls)
	}
}

func TestRender2(t *testing.T) {
	tb, _ := newTestTrackbar(Options{Features: EnableSelRange})
	tb.SetSelection(20, 60)
	s := &testSurface{}
	tb.Paint(s)
	exp := "clear fill:channel(8,15)-(192,30) fill:selection(44,17)-(118,28) edge(8,15)-(192,30) tick tick tick tick thumb"
	if u := strings.Join(s.calls, " "); u != exp {
		t.Fatalf("got %v\nexpected %v", u, exp)
	}
	kinds := []TickKind{TickEdge, TickEdge, TickSelStart, TickSelEnd}
	for i, k := range kinds {
		if s.ticks[i].Kind != k {
			t.Fatalf("%v: %v", i, s.ticks[i])
		}
	}
	if s.ticks[2].P0 != (image.Point{44, 35}) {
		t.Fatal(s.ticks[2])
	}

	// empty selection: channel fill only, no selection ticks
	tb.ClearSelection()
	s = &testSurface{}
	tb.Paint(s)
	exp = "clear fill:channel(8,15)-(192,30) edge(8,15)-(192,30) tick tick thumb"
	if u := strings.Join(s.calls, " "); u != exp {
		t.Fatalf("got %v\nexpected %v", u, exp)
	}
}

func TestFrame1(t *testing.T) {
	tb, _ := newTestTrackbar(Options{TickSide: TickBoth})
	f, err := tb.Frame()
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Ticks) != 4 {
		t.Fatal(f.Ticks)
	}
	// bottom then top, per value
	if f.Ticks[0].P0 != (image.Point{8, 28}) || f.Ticks[1].P0 != (image.Point{8, 12}) || f.Ticks[1].P1 != (image.Point{8, 8}) {
		t.Fatal(f.Ticks)
	}
	if f.Thumb.Shape != ThumbRect {
		t.Fatal(f.Thumb.Shape)
	}
}

func TestFrame2(t *testing.T) {
	h := &testHost{}
	tb := New(h, image.Rect(0, 0, 40, 200), Options{Orientation: Vertical})
	f, err := tb.Frame()
	if err != nil {
		t.Fatal(err)
	}
	if f.Ticks[0].P0 != (image.Point{35, 8}) {
		t.Fatal(f.Ticks[0])
	}
	if f.Channel != image.Rect(26, 8, 30, 192) {
		t.Fatal(f.Channel)
	}
}

func TestFrame3(t *testing.T) {
	tb, _ := newTestTrackbar(Options{Features: NoThumb | NoTicks})
	f, err := tb.Frame()
	if err != nil {
		t.Fatal(err)
	}
	if f.HasThumb || len(f.Ticks) != 0 {
		t.Fatal(f)
	}
	s := &testSurface{}
	Render(s, f)
	if u := strings.Join(s.calls, " "); u != "clear edge(8,26)-(192,30)" {
		t.Fatal(u)
	}

	tb2, _ := newTestTrackbar(Options{Features: NoTicks})
	f, _ = tb2.Frame()
	if f.Thumb.Shape != ThumbRect {
		t.Fatal(f.Thumb.Shape)
	}
}

func TestFrame4(t *testing.T) {
	// zero length range: single edge tick at the channel start
	tb, _ := newTestTrackbar(Options{})
	tb.SetRange(5, 5)
	f, err := tb.Frame()
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Ticks) != 1 || f.Ticks[0].P0.X != 8 {
		t.Fatal(f.Ticks)
	}
}

func TestFrame5(t *testing.T) {
	tb, _ := newTestTrackbar(Options{})
	tb.SetPos(20)
	down(tb, 44, 30)
	f, _ := tb.Frame()
	if !f.Thumb.Pressed {
		t.Fatal("not pressed")
	}
}

//----------

type surfaceHost struct {
	testHost
	s *testSurface
}

func (h *surfaceHost) Surface() Surface { return h.s }

func TestPaintRequest1(t *testing.T) {
	tb, _ := newTestTrackbar(Options{})
	if hd := tb.HandleEvent(&PaintRequest{}); hd {
		t.Fatal("handled without surface")
	}
	s := &testSurface{}
	if hd := tb.HandleEvent(&PaintRequest{Surface: s}); !hd {
		t.Fatal("not handled")
	}
	if len(s.calls) == 0 {
		t.Fatal("no calls")
	}

	h := &surfaceHost{s: &testSurface{}}
	tb2 := New(h, testBounds, Options{})
	tb2.HandleEvent(&PaintRequest{})
	if len(h.s.calls) == 0 {
		t.Fatal("no calls")
	}
}
