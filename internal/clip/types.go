// Package clip provides integer rectangles and the layered clip model used by
// the rasterizer.
package clip

import "image"

// Rect represents an axis-aligned rectangle with integer coordinates.
//
// Unlike image.Rectangle, an intersection keeps its position and may carry a
// zero or negative width or height. Such a rectangle is empty.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// FromImageRect converts an image.Rectangle to a Rect.
func FromImageRect(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// ImageRect converts r to an image.Rectangle. Empty rectangles map to
// image.Rectangle{}.
func (r Rect) ImageRect() image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Right returns the exclusive right edge x-coordinate.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge y-coordinate.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the pixel (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && y >= r.Y && x < r.Right() && y < r.Bottom()
}

// ContainsRect reports whether other lies entirely inside r.
// An empty other is contained in any non-empty r.
func (r Rect) ContainsRect(other Rect) bool {
	if r.Empty() {
		return false
	}
	if other.Empty() {
		return true
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Intersect returns the intersection of two rectangles.
// The result is positioned at the larger of the two origins; when the
// rectangles do not overlap its width or height is zero or negative.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle containing both rectangles.
// Empty operands are ignored.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := max(r.Right(), other.Right())
	y1 := max(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Bounds returns r itself. It lets Rect act as a rectangular clip shape.
func (r Rect) Bounds() Rect {
	return r
}
