package tbscript

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jmigpin/trackbar/trackbar"
	"github.com/jmigpin/trackbar/util/testutil"
)

func TestScenarios(t *testing.T) {
	ar, err := testutil.ReadTxtar("testdata/scenarios.txt")
	if err != nil {
		t.Fatal(err)
	}
	testutil.RunArchive2(t, ar, func(t2 *testing.T, name string, in, out []byte) error {
		buf := &bytes.Buffer{}
		r := NewRunner(buf)
		if err := r.Run(context.Background(), bytes.NewReader(in)); err != nil {
			return err
		}
		return testutil.CompareLines(buf.String(), string(out))
	})
}

func TestRunErrors1(t *testing.T) {
	type in struct {
		src string
		err error
	}
	w := []in{
		{"bogus 1 2", ErrUnknownCommand},
		{"pos 3", ErrNoTrackbar},
		{"new\nexpect pos 5", ErrExpect},
	}
	for _, e := range w {
		r := NewRunner(&bytes.Buffer{})
		err := r.Run(context.Background(), strings.NewReader(e.src))
		if !errors.Is(err, e.err) {
			t.Fatalf("%q: %v", e.src, err)
		}
	}
}

func TestRunErrors2(t *testing.T) {
	r := NewRunner(&bytes.Buffer{})
	err := r.Run(context.Background(), strings.NewReader("# comment\n\nnew\npos x"))
	if err == nil || !strings.HasPrefix(err.Error(), "line 4: pos:") {
		t.Fatal(err)
	}
	err = r.RunLine("new sideways")
	if err == nil {
		t.Fatal("expecting error")
	}
	err = r.RunLine("down 1")
	if err == nil {
		t.Fatal("expecting error")
	}
}

func TestRunCancel1(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRunner(&bytes.Buffer{})
	err := r.Run(ctx, strings.NewReader("new"))
	if !errors.Is(err, context.Canceled) {
		t.Fatal(err)
	}
}

func TestParseOptions1(t *testing.T) {
	opt, err := ParseOptions([]string{"Vertical", "left", "selrange", "tooltips"})
	if err != nil {
		t.Fatal(err)
	}
	if opt.Orientation != trackbar.Vertical || opt.TickSide != trackbar.TickLeft {
		t.Fatal(opt)
	}
	if !opt.Features.HasAny(trackbar.EnableSelRange) || !opt.Features.HasAny(trackbar.ToolTips) {
		t.Fatal(opt)
	}
}

func TestPaint1(t *testing.T) {
	r := NewRunner(&bytes.Buffer{})
	names := []string{}
	r.OnPaint = func(name string, tb *trackbar.Trackbar) error {
		names = append(names, name)
		return nil
	}
	src := "new\npaint\npaint second"
	if err := r.Run(context.Background(), strings.NewReader(src)); err != nil {
		t.Fatal(err)
	}
	if strings.Join(names, ",") != "frame,second" {
		t.Fatal(names)
	}
}
