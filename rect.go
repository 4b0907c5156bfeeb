package overlay

import (
	"image"

	"github.com/gogpu/overlay/internal/clip"
)

// Rect is an integer rectangle {X, Y, W, H}. A rectangle with W <= 0 or
// H <= 0 is empty and draws nothing.
type Rect = clip.Rect

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h int) Rect {
	return clip.NewRect(x, y, w, h)
}

// Shape is anything that can be offered as a clip. Only Rect and *Rect are
// accepted by Context.SetClip.
type Shape interface {
	Bounds() Rect
}

// Polygon is a closed polygon through its vertices.
type Polygon []image.Point

// Bounds returns the smallest rectangle containing every vertex, counting
// the right and bottom vertex coordinates as inclusive.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := image.Rectangle{Min: p[0], Max: p[0]}
	for _, pt := range p[1:] {
		r.Min.X = min(r.Min.X, pt.X)
		r.Min.Y = min(r.Min.Y, pt.Y)
		r.Max.X = max(r.Max.X, pt.X)
		r.Max.Y = max(r.Max.Y, pt.Y)
	}
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Dx() + 1, H: r.Dy() + 1}
}
