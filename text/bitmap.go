package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// BitmapFace adapts a golang.org/x/image/font.Face.
//
// The wrapped face is not safe for concurrent use, and neither is the
// BitmapFace.
type BitmapFace struct {
	face font.Face
}

// NewBitmapFace wraps face.
func NewBitmapFace(face font.Face) *BitmapFace {
	return &BitmapFace{face: face}
}

// DefaultFace returns a face backed by the fixed 7x13 basic font.
func DefaultFace() *BitmapFace {
	return NewBitmapFace(basicfont.Face7x13)
}

// DrawString implements Face.
func (f *BitmapFace) DrawString(dst Target, s string, x, y int, rgb uint32) {
	dot := fixed.P(x, y)
	prev := rune(-1)

	for _, r := range s {
		if prev >= 0 {
			dot.X += f.face.Kern(prev, r)
		}
		dr, mask, mp, advance, ok := f.face.Glyph(dot, r)
		if !ok {
			// Fall back to the replacement glyph, as font.Drawer does.
			dr, mask, mp, advance, _ = f.face.Glyph(dot, '\ufffd')
		}
		if !dr.Empty() && mask != nil {
			pix := coverageToARGB(mask, mp, dr, rgb)
			dst.DrawGlyph(pix, dr.Min.X, dr.Min.Y, dr.Dx(), dr.Dy())
		}
		dot.X += advance
		prev = r
	}
}

// Measure implements Face.
func (f *BitmapFace) Measure(s string) int {
	return font.MeasureString(f.face, s).Round()
}

// Metrics implements Face.
func (f *BitmapFace) Metrics() Metrics {
	m := f.face.Metrics()
	return Metrics{
		Ascent:  m.Ascent.Round(),
		Descent: m.Descent.Round(),
		Height:  m.Height.Round(),
	}
}
