package tbscript

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/jmigpin/trackbar/trackbar"
	"github.com/jmigpin/trackbar/util/uiutil/event"
)

// Records the trackbar host calls as output lines.
type Host struct {
	out         io.Writer
	tb          *trackbar.Trackbar
	EchoCapture bool // deliver CaptureLost when the capture is released
	Invalidated int
	timers      map[int]time.Duration
}

func NewHost(out io.Writer) *Host {
	return &Host{out: out, timers: map[int]time.Duration{}}
}

func (h *Host) Notify(n trackbar.Notification) {
	prefix := "h"
	if n.Vertical {
		prefix = "v"
	}
	h.printf("%s %v", prefix, n)
}

func (h *Host) Invalidate(image.Rectangle) {
	h.Invalidated++
}

func (h *Host) SetCapture() {
	h.printf("capture")
}

func (h *Host) ReleaseCapture() {
	h.printf("release")
	if h.EchoCapture && h.tb != nil {
		h.tb.HandleEvent(&event.CaptureLost{})
	}
}

func (h *Host) SetFocus() {
	h.printf("setfocus")
}

func (h *Host) SetTimer(id int, d time.Duration) {
	h.timers[id] = d
	h.printf("settimer %d %v", id, d)
}

func (h *Host) KillTimer(id int) {
	delete(h.timers, id)
	h.printf("killtimer %d", id)
}

// Active timer ids.
func (h *Host) Timers() []int {
	u := []int{}
	for id := range h.timers {
		u = append(u, id)
	}
	return u
}

func (h *Host) printf(f string, args ...interface{}) {
	fmt.Fprintf(h.out, f+"\n", args...)
}

//----------

// Records tooltip calls, and forwards them to an optional tooltip.
type tooltipRecorder struct {
	h    *Host
	next trackbar.Tooltip
}

func (t *tooltipRecorder) Activate(p image.Point, text string) {
	t.h.printf("tooltip activate %s", text)
	if t.next != nil {
		t.next.Activate(p, text)
	}
}
func (t *tooltipRecorder) Update(p image.Point, text string) {
	t.h.printf("tooltip update %s", text)
	if t.next != nil {
		t.next.Update(p, text)
	}
}
func (t *tooltipRecorder) Deactivate() {
	t.h.printf("tooltip deactivate")
	if t.next != nil {
		t.next.Deactivate()
	}
}
