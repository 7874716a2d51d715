package event

import (
	"fmt"
	"strings"
)

type KeySym int

const (
	KSymNone KeySym = 0

	// let ascii codes keep their values
	KSym_dummy_ KeySym = 256 + iota

	KSymSpace
	KSymBackspace
	KSymReturn
	KSymEscape
	KSymHome
	KSymLeft
	KSymUp
	KSymRight
	KSymDown
	KSymPageUp
	KSymPageDown
	KSymEnd
	KSymInsert
	KSymDelete
	KSymTab

	KSymKeypadAdd
	KSymKeypadSubtract
)

var keySymNames = map[KeySym]string{
	KSymSpace:          "space",
	KSymBackspace:      "backspace",
	KSymReturn:         "return",
	KSymEscape:         "escape",
	KSymHome:           "home",
	KSymLeft:           "left",
	KSymUp:             "up",
	KSymRight:          "right",
	KSymDown:           "down",
	KSymPageUp:         "pageup",
	KSymPageDown:       "pagedown",
	KSymEnd:            "end",
	KSymInsert:         "insert",
	KSymDelete:         "delete",
	KSymTab:            "tab",
	KSymKeypadAdd:      "kpadd",
	KSymKeypadSubtract: "kpsubtract",
}

func (ks KeySym) String() string {
	if s, ok := keySymNames[ks]; ok {
		return s
	}
	if ks > 0 && ks < 256 {
		return string(rune(ks))
	}
	return fmt.Sprintf("keysym(%d)", int(ks))
}

// Case insensitive lookup by name (ex: "PageUp", "left").
func ParseKeySym(name string) (KeySym, error) {
	u := strings.ToLower(name)
	for k, v := range keySymNames {
		if v == u {
			return k, nil
		}
	}
	if len(u) == 1 && u[0] < 128 {
		return KeySym(u[0]), nil
	}
	return KSymNone, fmt.Errorf("unknown keysym: %q", name)
}
