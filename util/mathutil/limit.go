package mathutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

func Limit[T constraints.Ordered](v, min, max T) T {
	if v < min {
		return min
	} else if v > max {
		return max
	}
	return v
}

func LimitInt(v int, min, max int) int {
	return Limit(v, min, max)
}

//----------

func Min[T constraints.Ordered](s ...T) T {
	m := s[0]
	for _, v := range s[1:] {
		if m > v {
			m = v
		}
	}
	return m
}
func Max[T constraints.Ordered](s ...T) T {
	m := s[0]
	for _, v := range s[1:] {
		if m < v {
			m = v
		}
	}
	return m
}

//----------

// Rounds to the nearest integer, halfway values round up (towards +inf).
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
