package trackbar

import "errors"

var (
	// Value outside [min,max], or a mapping requested over a zero length range.
	ErrOutOfRange = errors.New("out of range")

	// Bounds (or derived channel) without area.
	ErrInvalidGeometry = errors.New("invalid geometry")
)
