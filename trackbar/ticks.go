package trackbar

// Upper bound on automatic ticks; a control can't draw more than a few
// thousand anyway.
const maxAutoTics = 1 << 16

// Tick values strictly inside the range, every freq units from the minimum.
// The end ticks are not included.
func RecalculateTics(rng Range, freq int) []int {
	if freq <= 0 || rng.Max < rng.Min {
		return nil
	}
	n := (rng.Len() - 1) / freq
	if n <= 0 {
		return nil
	}
	if n > maxAutoTics {
		n = maxAutoTics
	}
	tics := make([]int, 0, n)
	for k := 1; k <= n; k++ {
		tics = append(tics, rng.Min+k*freq)
	}
	return tics
}

//----------

// Ticks owned by a control. Recalculated lazily after range or frequency
// changes; explicit ticks are appended to the current sequence.
type tics struct {
	freq  int
	v     []int
	dirty bool
}

func (t *tics) invalidate() {
	t.dirty = true
}

func (t *tics) values(rng Range) []int {
	if t.dirty {
		// new slice is built before replacing the old one
		v := RecalculateTics(rng, t.freq)
		t.v = v
		t.dirty = false
	}
	return t.v
}

func (t *tics) add(rng Range, v int) {
	u := t.values(rng)
	t.v = append(u, v)
}

func (t *tics) clear() {
	t.v = nil
	t.dirty = false
}
