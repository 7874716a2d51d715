package trackbar

import (
	"image"
	"time"
)

// Host is the window/message-loop side of the control. Calls are made
// synchronously from HandleEvent and the setters; the host may deliver
// events back before returning.
//
// ReleaseCapture must deliver *event.CaptureLost to the control before it
// returns. A drag is committed by that event; a host that doesn't deliver it
// leaves the position where it was before the drag.
type Host interface {
	Notify(Notification)
	Invalidate(image.Rectangle)
	SetCapture()
	ReleaseCapture()
	SetFocus()
}

// Optional host capability used for auto-repeat paging. Fired timers are
// delivered back as *event.Timer.
type TimerHost interface {
	SetTimer(id int, d time.Duration)
	KillTimer(id int)
}

// Optional host capability providing the default paint target.
type SurfaceHost interface {
	Surface() Surface
}

//----------

// Tooltip shown while dragging the thumb (ToolTips feature).
type Tooltip interface {
	Activate(p image.Point, text string)
	Update(p image.Point, text string)
	Deactivate()
}

//----------

// Adjacent control (ex: a label) aligned to one end of the track.
type Buddy interface {
	Size() image.Point
	SetBounds(image.Rectangle)
}

type BuddySide int

const (
	BuddyLeft  BuddySide = iota // top, on vertical controls
	BuddyRight                  // bottom, on vertical controls

	BuddyTop    = BuddyLeft
	BuddyBottom = BuddyRight
)
