package fontutil

import "testing"

func TestDefaultFontFace1(t *testing.T) {
	face, err := DefaultFontFace(12)
	if err != nil {
		t.Fatal(err)
	}
	m1 := MeasureLine(face, "1")
	m2 := MeasureLine(face, "100")
	if m1.X <= 0 || m1.Y <= 0 {
		t.Fatal(m1)
	}
	if m2.X <= m1.X {
		t.Fatalf("%v %v", m1, m2)
	}
	if m2.Y != m1.Y {
		t.Fatalf("%v %v", m1, m2)
	}
}
