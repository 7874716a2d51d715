package fontutil

import (
	"image"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

var defaultFont struct {
	once sync.Once
	font *truetype.Font
	err  error
}

func DefaultFont() (*truetype.Font, error) {
	defaultFont.once.Do(func() {
		defaultFont.font, defaultFont.err = truetype.Parse(goregular.TTF)
	})
	return defaultFont.font, defaultFont.err
}

// Size in points at 72 dpi.
func DefaultFontFace(size float64) (font.Face, error) {
	f, err := DefaultFont()
	if err != nil {
		return nil, err
	}
	opt := &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}
	return truetype.NewFace(f, opt), nil
}

//----------

// Size of a single line of text.
func MeasureLine(face font.Face, s string) image.Point {
	m := face.Metrics()
	w := font.MeasureString(face, s)
	return image.Point{w.Ceil(), (m.Ascent + m.Descent).Ceil()}
}

func Rect266MinFloorMaxCeil(r fixed.Rectangle26_6) image.Rectangle {
	min := image.Point{r.Min.X.Floor(), r.Min.Y.Floor()}
	max := image.Point{r.Max.X.Ceil(), r.Max.Y.Ceil()}
	return image.Rectangle{min, max}
}
