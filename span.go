package overlay

import "github.com/gogpu/overlay/internal/blend"

// Every pixel write of a Context goes through drawSpan or blitSpan. Both
// take absolute surface coordinates.

// clipSpan clips the one-row span (x, y, length) to the effective clip and
// marks the result dirty. It reports false when nothing remains.
func (c *Context) clipSpan(x, y, length int) (Rect, bool) {
	r := c.actualClip.Intersect(Rect{X: x, Y: y, W: length, H: 1})
	if r.Empty() || r.X < 0 || r.Y < 0 {
		return r, false
	}
	c.surface.dirty.Add(r)
	return r, true
}

// drawSpan composites length pixels of the single color rgb.
func (c *Context) drawSpan(x, y, length int, rgb uint32) {
	r, ok := c.clipSpan(x, y, length)
	if !ok {
		return
	}
	row := c.surface.row(r.Y)
	blend.FillSpan(row[r.X:r.X+r.W], rgb, c.mode())
}

// blitSpan composites length pixels taken from src starting at offset.
func (c *Context) blitSpan(x, y, length int, src []uint32, offset int) {
	r, ok := c.clipSpan(x, y, length)
	if !ok {
		return
	}
	offset += r.X - x
	row := c.surface.row(r.Y)
	blend.CopySpan(row[r.X:r.X+r.W], src[offset:offset+r.W], c.mode())
}

// drawPoint composites one pixel at origin-relative (x, y).
func (c *Context) drawPoint(x, y int, rgb uint32) {
	x += c.originX
	y += c.originY
	if c.actualClip.Contains(x, y) {
		c.drawSpan(x, y, 1, rgb)
	}
}

// span adapts drawSpan to origin-relative raster callbacks.
func (c *Context) span(rgb uint32) func(x, y, length int) {
	return func(x, y, length int) {
		c.drawSpan(x+c.originX, y+c.originY, length, rgb)
	}
}
