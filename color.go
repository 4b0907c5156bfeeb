package overlay

import (
	"fmt"
	"image/color"
)

// ARGB is a non-premultiplied 32-bit color with alpha in the most
// significant byte, the pixel format of every Surface.
type ARGB uint32

// Common colors.
const (
	Transparent ARGB = 0x00000000
	Black       ARGB = 0xFF000000
	White       ARGB = 0xFFFFFFFF
)

// NewARGB packs four 8-bit channels.
func NewARGB(a, r, g, b uint8) ARGB {
	return ARGB(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) ARGB {
	return NewARGB(0xFF, r, g, b)
}

// FromColor converts any color.Color. Premultiplied inputs are
// un-premultiplied first.
func FromColor(c color.Color) ARGB {
	if v, ok := c.(ARGB); ok {
		return v
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewARGB(n.A, n.R, n.G, n.B)
}

// A returns the alpha channel.
func (c ARGB) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c ARGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c ARGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c ARGB) B() uint8 { return uint8(c) }

// NRGBA returns c as a color.NRGBA.
func (c ARGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements color.Color.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String returns the color as #AARRGGBB.
func (c ARGB) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}
