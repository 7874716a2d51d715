package trackbar

import "fmt"

// Scroll notification codes, in the order of the native TB_* codes.
type Code int

const (
	LineDecrement Code = iota
	LineIncrement
	PageDecrement
	PageIncrement
	ThumbPosition // pending drag position committed; Pos is the new position
	ThumbTrack    // thumb dragged; Pos is the pending position
	Top
	Bottom
	EndTrack
)

var codeNames = [...]string{
	LineDecrement: "linedecrement",
	LineIncrement: "lineincrement",
	PageDecrement: "pagedecrement",
	PageIncrement: "pageincrement",
	ThumbPosition: "thumbposition",
	ThumbTrack:    "thumbtrack",
	Top:           "top",
	Bottom:        "bottom",
	EndTrack:      "endtrack",
}

func (c Code) String() string {
	if c >= 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code(%d)", int(c))
}

//----------

type Notification struct {
	Code Code
	Pos  int
	// Selects the vertical scroll family; hosts route on it.
	Vertical bool
}

func (n Notification) String() string {
	return fmt.Sprintf("%v(%d)", n.Code, n.Pos)
}
