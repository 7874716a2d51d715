package trackbar

import "image"

// Allows the layout to be calculated horizontally and have it translated to
// the vertical orientation by swapping the x and y coordinates.
type axis struct {
	vertical bool
}

func axisOf(o Orientation) axis {
	return axis{vertical: o == Vertical}
}

func (ax axis) point(p image.Point) image.Point {
	if ax.vertical {
		return image.Point{p.Y, p.X}
	}
	return p
}
func (ax axis) rect(r image.Rectangle) image.Rectangle {
	if ax.vertical {
		return image.Rectangle{ax.point(r.Min), ax.point(r.Max)}
	}
	return r
}
func (ax axis) points(pts []image.Point) []image.Point {
	if !ax.vertical {
		return pts
	}
	u := make([]image.Point, len(pts))
	for i, p := range pts {
		u[i] = ax.point(p)
	}
	return u
}

// Coordinate along the track.
func (ax axis) along(p image.Point) int {
	if ax.vertical {
		return p.Y
	}
	return p.X
}
