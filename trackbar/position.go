package trackbar

import (
	"fmt"
	"image"
)

// Converts a pixel coordinate along the track into a position in the range.
// The result is clamped to the range. Returns the range minimum and an error
// if the channel has no length.
func PlaceToPosition(place int, channel image.Rectangle, rng Range, o Orientation) (float64, error) {
	ax := axisOf(o)
	ch := ax.rect(channel)
	w := ch.Dx()
	if w <= 0 {
		return float64(rng.Min), fmt.Errorf("place to position: channel %v: %w", channel, ErrInvalidGeometry)
	}
	pos := float64(rng.Min) + rng.span()*float64(place-ch.Min.X)/float64(w)
	if pos > float64(rng.Max) {
		pos = float64(rng.Max)
	} else if pos < float64(rng.Min) {
		pos = float64(rng.Min)
	}
	return pos, nil
}

// Pixel coordinate along the track of a tick value.
func TicToPixel(v int, channel image.Rectangle, rng Range, o Orientation) (int, error) {
	if rng.Len() <= 0 {
		return 0, fmt.Errorf("tic to pixel: range %v: %w", rng, ErrOutOfRange)
	}
	ax := axisOf(o)
	ch := ax.rect(channel)
	return ch.Min.X + scaleToWidth(ch.Dx(), v, rng), nil
}
