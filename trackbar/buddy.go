package trackbar

import "image"

func (tb *Trackbar) Buddy(side BuddySide) Buddy {
	if side != BuddyLeft && side != BuddyRight {
		return nil
	}
	return tb.buddies[side]
}

// Returns the previous buddy at that side. The new buddy is aligned
// immediately.
func (tb *Trackbar) SetBuddy(side BuddySide, b Buddy) Buddy {
	if side != BuddyLeft && side != BuddyRight {
		return nil
	}
	old := tb.buddies[side]
	tb.buddies[side] = b
	tb.alignBuddy(side)
	return old
}

// Point on the control edge where the buddy at that side is attached: the
// middle of the left/right edge (top/bottom on vertical controls).
func (tb *Trackbar) BuddyAnchor(side BuddySide) image.Point {
	r := tb.ax.rect(tb.bounds)
	y := (r.Min.Y + r.Max.Y) / 2
	p := image.Point{r.Min.X, y}
	if side == BuddyRight {
		p.X = r.Max.X
	}
	return tb.ax.point(p)
}

func (tb *Trackbar) alignBuddies() {
	tb.alignBuddy(BuddyLeft)
	tb.alignBuddy(BuddyRight)
}

func (tb *Trackbar) alignBuddy(side BuddySide) {
	b := tb.buddies[side]
	if b == nil {
		return
	}
	a := tb.ax.point(tb.BuddyAnchor(side))
	sz := tb.ax.point(b.Size())

	var r image.Rectangle
	r.Min.Y = a.Y - sz.Y/2
	r.Max.Y = r.Min.Y + sz.Y
	if side == BuddyLeft {
		r.Max.X = a.X
		r.Min.X = a.X - sz.X
	} else {
		r.Min.X = a.X
		r.Max.X = a.X + sz.X
	}
	b.SetBounds(tb.ax.rect(r))
}
