package trackbar

import (
	"errors"
	"fmt"
	"testing"
)

func TestRecalculateTics1(t *testing.T) {
	type in struct {
		rng  Range
		freq int
		res  string
	}
	w := []in{
		{Range{0, 100}, 20, "[20 40 60 80]"},
		{Range{0, 100}, 0, "[]"},
		{Range{0, 100}, -3, "[]"},
		{Range{0, 10}, 3, "[3 6 9]"},
		{Range{0, 2}, 1, "[1]"},
		{Range{0, 1}, 1, "[]"},
		{Range{5, 5}, 1, "[]"},
		{Range{-10, 10}, 5, "[-5 0 5]"},
	}
	for i, e := range w {
		v := RecalculateTics(e.rng, e.freq)
		s := fmt.Sprint(v)
		if v == nil {
			s = "[]"
		}
		if s != e.res {
			t.Fatalf("%v: got %v, expected %v", i, s, e.res)
		}
	}
}

func TestRecalculateTics2(t *testing.T) {
	v := RecalculateTics(Range{0, 1 << 40}, 1)
	if len(v) != maxAutoTics {
		t.Fatal(len(v))
	}
	if v[0] != 1 || v[len(v)-1] != maxAutoTics {
		t.Fatal(v[0], v[len(v)-1])
	}
}

func TestTicks1(t *testing.T) {
	tb, _ := newTestTrackbar(Options{})
	if n := len(tb.Ticks()); n != 0 {
		t.Fatal(n)
	}
	if n := tb.NumTicks(); n != 2 {
		t.Fatal(n)
	}

	tb.SetTickFrequency(20)
	if s := fmt.Sprint(tb.Ticks()); s != "[20 40 60 80]" {
		t.Fatal(s)
	}
	if n := tb.NumTicks(); n != 6 {
		t.Fatal(n)
	}

	// out of range is rejected, ticks unchanged
	if err := tb.SetTick(150); !errors.Is(err, ErrOutOfRange) {
		t.Fatal(err)
	}
	if err := tb.SetTick(50); err != nil {
		t.Fatal(err)
	}
	if s := fmt.Sprint(tb.Ticks()); s != "[20 40 60 80 50]" {
		t.Fatal(s)
	}

	tb.ClearTicks()
	if n := len(tb.Ticks()); n != 0 {
		t.Fatal(n)
	}
	if f := tb.TickFrequency(); f != 20 {
		t.Fatal(f)
	}
	// frequency is kept for the next recalculation
	tb.SetRange(0, 50)
	if s := fmt.Sprint(tb.Ticks()); s != "[20 40]" {
		t.Fatal(s)
	}
}

func TestTicks2(t *testing.T) {
	tb, _ := newTestTrackbar(Options{})
	tb.SetTickFrequency(20)
	v, err := tb.Tick(0)
	if err != nil || v != 20 {
		t.Fatal(v, err)
	}
	if _, err := tb.Tick(10); !errors.Is(err, ErrOutOfRange) {
		t.Fatal(err)
	}
	px, err := tb.TickPixel(0)
	if err != nil || px != 44 {
		t.Fatal(px, err)
	}

	// returned slice is a copy
	u := tb.Ticks()
	u[0] = 1000
	if v, _ := tb.Tick(0); v != 20 {
		t.Fatal(v)
	}
}

func TestTicks3(t *testing.T) {
	tb, _ := newTestTrackbar(Options{Features: AutoTicks})
	if f := tb.TickFrequency(); f != 1 {
		t.Fatal(f)
	}
	tb.SetRange(0, 4)
	if s := fmt.Sprint(tb.Ticks()); s != "[1 2 3]" {
		t.Fatal(s)
	}

	tb2, _ := newTestTrackbar(Options{Features: NoTicks})
	tb2.SetTickFrequency(10)
	if n := tb2.NumTicks(); n != 0 {
		t.Fatal(n)
	}
}
