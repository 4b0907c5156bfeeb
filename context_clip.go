package overlay

import (
	"fmt"

	"github.com/gogpu/overlay/internal/clip"
)

// SetClip replaces the user clip with a rectangle given in origin-relative
// coordinates, or removes it when s is nil.
//
// Only Rect and *Rect are accepted. Any other shape returns an error
// wrapping ErrInvalidArgument and leaves the clip unchanged.
func (c *Context) SetClip(s Shape) error {
	switch r := s.(type) {
	case nil:
		c.clip = nil
	case Rect:
		c.setUserClip(r)
	case *Rect:
		if r == nil {
			c.clip = nil
		} else {
			c.setUserClip(*r)
		}
	default:
		return fmt.Errorf("%w: clip shape %T is not a rectangle", ErrInvalidArgument, s)
	}
	c.updateClip()
	return nil
}

// SetClipRect sets the user clip to (x, y, w, h).
func (c *Context) SetClipRect(x, y, w, h int) {
	c.setUserClip(Rect{X: x, Y: y, W: w, H: h})
	c.updateClip()
}

// ResetClip removes the user clip.
func (c *Context) ResetClip() {
	c.clip = nil
	c.updateClip()
}

// ClipRect intersects the user clip with (x, y, w, h). Without a user clip
// the rectangle becomes the clip.
func (c *Context) ClipRect(x, y, w, h int) {
	r := Rect{X: x + c.originX, Y: y + c.originY, W: w, H: h}
	if c.clip != nil {
		r = c.clip.Intersect(r)
	}
	c.clip = &r
	c.updateClip()
}

// ClipBounds returns the user clip in origin-relative coordinates, or false
// when none is set.
func (c *Context) ClipBounds() (Rect, bool) {
	if c.clip == nil {
		return Rect{}, false
	}
	return c.clip.Translate(-c.originX, -c.originY), true
}

// EffectiveClip returns the rectangle every write is clipped to, in
// absolute surface coordinates.
func (c *Context) EffectiveClip() Rect {
	return c.actualClip
}

// Constrain restricts the context to the sub-region (x, y, w, h) of its
// current constraint, or of the surface when unconstrained, and moves the
// origin to the top-left of the result. The constraint clips independently
// of the user clip; it can only shrink.
func (c *Context) Constrain(x, y, w, h int) {
	r := clip.Constrain(c.constraint, c.surface.Rect(), x, y, w, h)
	c.constraint = &r
	c.originX, c.originY = r.X, r.Y
	c.updateClip()
}

// setUserClip stores r, given relative to the origin, as the user clip.
func (c *Context) setUserClip(r Rect) {
	abs := r.Translate(c.originX, c.originY)
	c.clip = &abs
}
