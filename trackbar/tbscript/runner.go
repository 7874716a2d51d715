// Line based scripts driving a trackbar with synthetic events.
//
// Each line is a command with space separated arguments. Empty lines and
// lines starting with "#" are ignored. Output lines are the host calls
// (notifications, capture, timers) and the results of "print".
package tbscript

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/jmigpin/trackbar/trackbar"
)

var ErrUnknownCommand = errors.New("unknown command")
var ErrExpect = errors.New("expect failed")
var ErrNoTrackbar = errors.New("no trackbar, missing \"new\"")

type Runner struct {
	Out    io.Writer
	Bounds image.Rectangle // used by "new"

	Tooltip trackbar.Tooltip // optional, receives the tooltip calls
	// Called by "paint"; nil ignores the command.
	OnPaint func(name string, tb *trackbar.Trackbar) error

	Host *Host
	Tb   *trackbar.Trackbar

	EchoCapture bool // applied to the host of each new trackbar; on by default
}

func NewRunner(out io.Writer) *Runner {
	return &Runner{Out: out, Bounds: image.Rect(0, 0, 200, 40), EchoCapture: true}
}

func (r *Runner) Run(ctx context.Context, rd io.Reader) error {
	sc := bufio.NewScanner(rd)
	for line := 1; sc.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if err := r.RunLine(s); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return sc.Err()
}

func (r *Runner) RunLine(s string) error {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	cmd, ok := cmds[fields[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
	if cmd.NeedsTb && r.Tb == nil {
		return ErrNoTrackbar
	}
	args := &CmdArgs{R: r, Name: fields[0], Args: fields[1:]}
	if err := cmd.Fn(args); err != nil {
		return fmt.Errorf("%v: %w", cmd.Name, err)
	}
	return nil
}

//----------

func (r *Runner) newTrackbar(opt trackbar.Options) {
	if r.Tb != nil {
		r.Tb.Destroy()
	}
	r.Host = NewHost(r.Out)
	r.Host.EchoCapture = r.EchoCapture
	r.Tb = trackbar.New(r.Host, r.Bounds, opt)
	r.Host.tb = r.Tb
	r.Tb.SetTooltip(&tooltipRecorder{h: r.Host, next: r.Tooltip})
}

func (r *Runner) printf(f string, args ...interface{}) {
	fmt.Fprintf(r.Out, f+"\n", args...)
}
