package event

import (
	"image"
)

//----------

type Handle bool

const (
	NotHandled Handle = false
	Handled           = true
)

//----------

type MouseDown struct {
	Point  image.Point
	Button MouseButton
	Mods   KeyModifiers
}
type MouseUp struct {
	Point  image.Point
	Button MouseButton
	Mods   KeyModifiers
}
type MouseMove struct {
	Point   image.Point
	Buttons MouseButtons
	Mods    KeyModifiers
}

//----------

type KeyDown struct {
	KeySym KeySym
	Mods   KeyModifiers
	Rune   rune
}
type KeyUp struct {
	KeySym KeySym
	Mods   KeyModifiers
	Rune   rune
}

//----------

// Keyboard focus changes, delivered by the host.
type FocusIn struct{}
type FocusOut struct{}

// Pointer capture was taken away (or released) by the host.
type CaptureLost struct{}

// New bounds for the receiver.
type Resize struct {
	Rect image.Rectangle
}

// Timer previously set by the receiver has fired.
type Timer struct {
	ID int
}

//----------

type MouseButton int32

const (
	ButtonNone MouseButton = iota
	ButtonLeft MouseButton = 1 << (iota - 1)
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
	ButtonWheelLeft
	ButtonWheelRight
)

type MouseButtons int32

func (mb MouseButtons) Has(b MouseButton) bool {
	return int32(mb)&int32(b) > 0
}
func (mb MouseButtons) HasAny(bs MouseButtons) bool {
	return int32(mb)&int32(bs) > 0
}
func (mb MouseButtons) Is(b MouseButton) bool {
	return int32(mb) == int32(b)
}

//----------

type KeyModifiers uint16

func (km KeyModifiers) HasAny(m KeyModifiers) bool {
	return km&m > 0
}
func (km KeyModifiers) Is(m KeyModifiers) bool {
	return km == m
}

const (
	ModNone  KeyModifiers = 0
	ModShift KeyModifiers = 1 << (iota - 1)
	ModLock               // caps
	ModCtrl
	Mod1 // ~ alt
	Mod2 // ~ num lock
)

const (
	ModAlt = Mod1
	ModNum = Mod2
)
