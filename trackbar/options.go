package trackbar

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

//----------

// Side of the channel where ticks are drawn. For vertical controls Top is
// the left side and Bottom is the right side.
type TickSide int

const (
	TickBottom TickSide = iota
	TickTop
	TickBoth

	TickRight = TickBottom
	TickLeft  = TickTop
)

func (s TickSide) String() string {
	switch s {
	case TickTop:
		return "top"
	case TickBoth:
		return "both"
	default:
		return "bottom"
	}
}

//----------

type Features uint16

const (
	NoThumb Features = 1 << iota
	NoTicks
	EnableSelRange
	FixedLength // thumb length can be set
	AutoTicks   // default tick frequency of 1
	ToolTips    // show position in a tooltip while dragging
)

func (f Features) HasAny(u Features) bool { return f&u != 0 }
func (f *Features) Add(u Features)        { *f |= u }
func (f *Features) Remove(u Features)     { *f &^= u }

//----------

type Options struct {
	Orientation Orientation
	TickSide    TickSide
	Features    Features
}
