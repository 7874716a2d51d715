package tbscript

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/jmigpin/trackbar/trackbar"
	"github.com/jmigpin/trackbar/util/uiutil/event"
)

type Cmd struct {
	Name    string
	NeedsTb bool
	Fn      func(args *CmdArgs) error
}

type CmdArgs struct {
	R    *Runner
	Name string
	Args []string
}

func (a *CmdArgs) nArgs(n int) error {
	if len(a.Args) != n {
		return fmt.Errorf("expecting %d args, got %d", n, len(a.Args))
	}
	return nil
}

func (a *CmdArgs) ints(n int) ([]int, error) {
	if err := a.nArgs(n); err != nil {
		return nil, err
	}
	u := make([]int, n)
	for i, s := range a.Args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		u[i] = v
	}
	return u, nil
}

func (a *CmdArgs) point() (image.Point, error) {
	v, err := a.ints(2)
	if err != nil {
		return image.Point{}, err
	}
	return image.Point{v[0], v[1]}, nil
}

//----------

type cmdMap map[string]*Cmd

func (m cmdMap) set(cmd *Cmd) {
	m[cmd.Name] = cmd
}

var cmds = cmdMap{}

func init() {
	cmds.set(&Cmd{Name: "new", Fn: cmdNew})
	cmds.set(&Cmd{Name: "bounds", Fn: cmdBounds})
	cmds.set(&Cmd{Name: "echo", Fn: cmdEcho})
	cmds.set(&Cmd{Name: "destroy", NeedsTb: true, Fn: cmdDestroy})

	// setters
	intSetter := func(name string, fn func(tb *trackbar.Trackbar, v int)) {
		cmds.set(&Cmd{Name: name, NeedsTb: true, Fn: func(a *CmdArgs) error {
			v, err := a.ints(1)
			if err != nil {
				return err
			}
			fn(a.R.Tb, v[0])
			return nil
		}})
	}
	intSetter("pos", (*trackbar.Trackbar).SetPos)
	intSetter("rangemin", (*trackbar.Trackbar).SetRangeMin)
	intSetter("rangemax", (*trackbar.Trackbar).SetRangeMax)
	intSetter("selstart", (*trackbar.Trackbar).SetSelStart)
	intSetter("selend", (*trackbar.Trackbar).SetSelEnd)
	intSetter("freq", (*trackbar.Trackbar).SetTickFrequency)
	intSetter("wheellines", (*trackbar.Trackbar).SetWheelLines)
	intSetter("linesize", func(tb *trackbar.Trackbar, v int) { tb.SetLineSize(v) })
	intSetter("pagesize", func(tb *trackbar.Trackbar, v int) { tb.SetPageSize(v) })
	intSetter("thumblen", func(tb *trackbar.Trackbar, v int) { tb.SetThumbLength(v) })
	cmds.set(&Cmd{Name: "range", NeedsTb: true, Fn: cmdRange})
	cmds.set(&Cmd{Name: "sel", NeedsTb: true, Fn: cmdSel})
	cmds.set(&Cmd{Name: "clearsel", NeedsTb: true, Fn: func(a *CmdArgs) error {
		a.R.Tb.ClearSelection()
		return nil
	}})
	cmds.set(&Cmd{Name: "tick", NeedsTb: true, Fn: cmdTick})
	cmds.set(&Cmd{Name: "clearticks", NeedsTb: true, Fn: func(a *CmdArgs) error {
		a.R.Tb.ClearTicks()
		return nil
	}})

	// events
	cmds.set(&Cmd{Name: "down", NeedsTb: true, Fn: cmdPointer})
	cmds.set(&Cmd{Name: "move", NeedsTb: true, Fn: cmdPointer})
	cmds.set(&Cmd{Name: "up", NeedsTb: true, Fn: cmdPointer})
	cmds.set(&Cmd{Name: "wheelup", NeedsTb: true, Fn: cmdWheel})
	cmds.set(&Cmd{Name: "wheeldown", NeedsTb: true, Fn: cmdWheel})
	cmds.set(&Cmd{Name: "key", NeedsTb: true, Fn: cmdKey})
	cmds.set(&Cmd{Name: "keyup", NeedsTb: true, Fn: cmdKey})
	cmds.set(&Cmd{Name: "focus", NeedsTb: true, Fn: cmdSimpleEvent})
	cmds.set(&Cmd{Name: "blur", NeedsTb: true, Fn: cmdSimpleEvent})
	cmds.set(&Cmd{Name: "capturelost", NeedsTb: true, Fn: cmdSimpleEvent})
	cmds.set(&Cmd{Name: "timer", NeedsTb: true, Fn: cmdTimer})
	cmds.set(&Cmd{Name: "resize", NeedsTb: true, Fn: cmdBounds})

	// queries
	cmds.set(&Cmd{Name: "print", NeedsTb: true, Fn: cmdPrint})
	cmds.set(&Cmd{Name: "expect", NeedsTb: true, Fn: cmdExpect})
	cmds.set(&Cmd{Name: "paint", NeedsTb: true, Fn: cmdPaint})
}

//----------

var optionWords = map[string]func(o *trackbar.Options){
	"horizontal":  func(o *trackbar.Options) { o.Orientation = trackbar.Horizontal },
	"vertical":    func(o *trackbar.Options) { o.Orientation = trackbar.Vertical },
	"bottom":      func(o *trackbar.Options) { o.TickSide = trackbar.TickBottom },
	"top":         func(o *trackbar.Options) { o.TickSide = trackbar.TickTop },
	"right":       func(o *trackbar.Options) { o.TickSide = trackbar.TickRight },
	"left":        func(o *trackbar.Options) { o.TickSide = trackbar.TickLeft },
	"both":        func(o *trackbar.Options) { o.TickSide = trackbar.TickBoth },
	"nothumb":     func(o *trackbar.Options) { o.Features.Add(trackbar.NoThumb) },
	"noticks":     func(o *trackbar.Options) { o.Features.Add(trackbar.NoTicks) },
	"selrange":    func(o *trackbar.Options) { o.Features.Add(trackbar.EnableSelRange) },
	"fixedlength": func(o *trackbar.Options) { o.Features.Add(trackbar.FixedLength) },
	"autoticks":   func(o *trackbar.Options) { o.Features.Add(trackbar.AutoTicks) },
	"tooltips":    func(o *trackbar.Options) { o.Features.Add(trackbar.ToolTips) },
}

func ParseOptions(words []string) (trackbar.Options, error) {
	opt := trackbar.Options{}
	for _, w := range words {
		fn, ok := optionWords[strings.ToLower(w)]
		if !ok {
			return opt, fmt.Errorf("unknown option: %q", w)
		}
		fn(&opt)
	}
	return opt, nil
}

func cmdNew(a *CmdArgs) error {
	opt, err := ParseOptions(a.Args)
	if err != nil {
		return err
	}
	a.R.newTrackbar(opt)
	return nil
}

func cmdBounds(a *CmdArgs) error {
	v, err := a.ints(4)
	if err != nil {
		return err
	}
	r := image.Rect(v[0], v[1], v[2], v[3])
	a.R.Bounds = r
	if a.R.Tb != nil {
		a.R.handle(&event.Resize{Rect: r})
	}
	return nil
}

func cmdEcho(a *CmdArgs) error {
	if err := a.nArgs(1); err != nil {
		return err
	}
	switch a.Args[0] {
	case "on":
		a.R.EchoCapture = true
	case "off":
		a.R.EchoCapture = false
	default:
		return fmt.Errorf("expecting on/off: %q", a.Args[0])
	}
	if a.R.Host != nil {
		a.R.Host.EchoCapture = a.R.EchoCapture
	}
	return nil
}

func cmdDestroy(a *CmdArgs) error {
	a.R.Tb.Destroy()
	return nil
}

func cmdRange(a *CmdArgs) error {
	v, err := a.ints(2)
	if err != nil {
		return err
	}
	a.R.Tb.SetRange(v[0], v[1])
	return nil
}

func cmdSel(a *CmdArgs) error {
	v, err := a.ints(2)
	if err != nil {
		return err
	}
	a.R.Tb.SetSelection(v[0], v[1])
	return nil
}

// Rejected ticks are reported in the output, not as script errors.
func cmdTick(a *CmdArgs) error {
	v, err := a.ints(1)
	if err != nil {
		return err
	}
	if err := a.R.Tb.SetTick(v[0]); err != nil {
		a.R.printf("error: %v", err)
	}
	return nil
}

//----------

func (r *Runner) handle(ev interface{}) {
	if h := r.Tb.HandleEvent(ev); !h {
		r.printf("nothandled")
	}
}

func cmdPointer(a *CmdArgs) error {
	p, err := a.point()
	if err != nil {
		return err
	}
	switch a.Name {
	case "down":
		a.R.handle(&event.MouseDown{Point: p, Button: event.ButtonLeft})
	case "move":
		a.R.handle(&event.MouseMove{Point: p, Buttons: event.MouseButtons(event.ButtonLeft)})
	case "up":
		a.R.handle(&event.MouseUp{Point: p, Button: event.ButtonLeft})
	}
	return nil
}

func cmdWheel(a *CmdArgs) error {
	b := event.ButtonWheelUp
	if a.Name == "wheeldown" {
		b = event.ButtonWheelDown
	}
	a.R.handle(&event.MouseDown{Button: b})
	return nil
}

func cmdKey(a *CmdArgs) error {
	if err := a.nArgs(1); err != nil {
		return err
	}
	ks, err := event.ParseKeySym(a.Args[0])
	if err != nil {
		return err
	}
	if a.Name == "keyup" {
		a.R.handle(&event.KeyUp{KeySym: ks})
	} else {
		a.R.handle(&event.KeyDown{KeySym: ks})
	}
	return nil
}

func cmdSimpleEvent(a *CmdArgs) error {
	switch a.Name {
	case "focus":
		a.R.handle(&event.FocusIn{})
	case "blur":
		a.R.handle(&event.FocusOut{})
	case "capturelost":
		a.R.handle(&event.CaptureLost{})
	}
	return nil
}

func cmdTimer(a *CmdArgs) error {
	id := trackbar.AutoPageTimerID
	if len(a.Args) > 0 {
		v, err := a.ints(1)
		if err != nil {
			return err
		}
		id = v[0]
	}
	a.R.handle(&event.Timer{ID: id})
	return nil
}

//----------

func query(tb *trackbar.Trackbar, name string) (string, error) {
	switch name {
	case "pos":
		return strconv.Itoa(tb.Pos()), nil
	case "range":
		r := tb.Range()
		return fmt.Sprintf("%d %d", r.Min, r.Max), nil
	case "linesize":
		return strconv.Itoa(tb.LineSize()), nil
	case "pagesize":
		return strconv.Itoa(tb.PageSize()), nil
	case "thumblen":
		return strconv.Itoa(tb.ThumbLength()), nil
	case "freq":
		return strconv.Itoa(tb.TickFrequency()), nil
	case "sel":
		a, b := tb.Selection()
		return fmt.Sprintf("%d %d", a, b), nil
	case "ticks":
		u := []string{}
		for _, v := range tb.Ticks() {
			u = append(u, strconv.Itoa(v))
		}
		return strings.Join(u, " "), nil
	case "numticks":
		return strconv.Itoa(tb.NumTicks()), nil
	case "channel":
		return fmt.Sprint(tb.ChannelRect()), nil
	case "thumb":
		return fmt.Sprint(tb.ThumbRect()), nil
	case "selection":
		return fmt.Sprint(tb.SelectionRect()), nil
	case "dragpos":
		v, ok := tb.DragPos()
		return fmt.Sprintf("%d %v", v, ok), nil
	case "dragging":
		return strconv.FormatBool(tb.Dragging()), nil
	case "focus":
		return strconv.FormatBool(tb.HasFocus()), nil
	}
	return "", fmt.Errorf("unknown query: %q", name)
}

func cmdPrint(a *CmdArgs) error {
	if err := a.nArgs(1); err != nil {
		return err
	}
	s, err := query(a.R.Tb, a.Args[0])
	if err != nil {
		return err
	}
	a.R.printf("%s %s", a.Args[0], s)
	return nil
}

func cmdExpect(a *CmdArgs) error {
	if len(a.Args) < 1 {
		return fmt.Errorf("missing query name")
	}
	s, err := query(a.R.Tb, a.Args[0])
	if err != nil {
		return err
	}
	exp := strings.Join(a.Args[1:], " ")
	if s != exp {
		return fmt.Errorf("%w: %s: got %q, expected %q", ErrExpect, a.Args[0], s, exp)
	}
	return nil
}

func cmdPaint(a *CmdArgs) error {
	if a.R.OnPaint == nil {
		return nil
	}
	name := "frame"
	if len(a.Args) > 0 {
		name = a.Args[0]
	}
	return a.R.OnPaint(name, a.R.Tb)
}
