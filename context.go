package overlay

import (
	"fmt"

	"github.com/gogpu/overlay/internal/blend"
	"github.com/gogpu/overlay/internal/clip"
	"github.com/gogpu/overlay/text"
)

// Context draws into a Surface.
//
// A Context holds the drawing state: origin, clip, colors, font and
// composite. The pixels and dirty region live in the Surface, which may be
// shared with other contexts created by Fork.
//
// A Context is not safe for concurrent use.
type Context struct {
	surface *Surface

	originX, originY int

	// clip and constraint are in absolute surface coordinates, nil when unset.
	clip       *Rect
	constraint *Rect
	// actualClip is clip ∩ constraint ∩ surface bounds.
	actualClip Rect

	fg, bg    ARGB
	face      text.Face
	composite Composite
	xorColor  ARGB
	xorMode   bool
	filter    ScaleFilter
}

// NewContext creates a context drawing into a new transparent surface of the
// given size.
func NewContext(width, height int, opts ...ContextOption) *Context {
	return NewContextForSurface(NewSurface(width, height), opts...)
}

// NewContextForSurface creates a context drawing into s.
func NewContextForSurface(s *Surface, opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		surface:   s,
		fg:        o.foreground,
		bg:        o.background,
		face:      o.face,
		composite: o.composite,
		filter:    o.filter,
	}
	c.updateClip()
	return c
}

// Fork returns a context drawing into the same surface with a copy of the
// current state. Later changes to either context's state do not affect the
// other; pixels and the dirty region remain shared.
func (c *Context) Fork() *Context {
	f := *c
	if c.clip != nil {
		r := *c.clip
		f.clip = &r
	}
	if c.constraint != nil {
		r := *c.constraint
		f.constraint = &r
	}
	return &f
}

// Surface returns the surface the context draws into.
func (c *Context) Surface() *Surface {
	return c.surface
}

// Width returns the surface width.
func (c *Context) Width() int {
	return c.surface.width
}

// Height returns the surface height.
func (c *Context) Height() int {
	return c.surface.height
}

// Translate moves the origin by (dx, dy).
func (c *Context) Translate(dx, dy int) {
	c.originX += dx
	c.originY += dy
}

// Origin returns the origin in absolute surface coordinates.
func (c *Context) Origin() (x, y int) {
	return c.originX, c.originY
}

// SetColor sets the foreground color used by every drawing operation.
func (c *Context) SetColor(col ARGB) {
	c.fg = col
}

// Color returns the foreground color.
func (c *Context) Color() ARGB {
	return c.fg
}

// SetBackground sets the color written by ClearRect.
func (c *Context) SetBackground(col ARGB) {
	c.bg = col
}

// Background returns the background color.
func (c *Context) Background() ARGB {
	return c.bg
}

// SetFont sets the face used by DrawString. A nil face is ignored.
func (c *Context) SetFont(f text.Face) {
	if f != nil {
		c.face = f
	}
}

// Font returns the current face.
func (c *Context) Font() text.Face {
	return c.face
}

// SetComposite sets the composite used for subsequent drawing. Unknown
// rules and alpha factors outside [0, 1] return an error wrapping
// ErrInvalidArgument and leave the context unchanged.
func (c *Context) SetComposite(comp Composite) error {
	if err := comp.Validate(); err != nil {
		return err
	}
	c.composite = comp
	return nil
}

// Composite returns the current composite.
func (c *Context) Composite() Composite {
	return c.composite
}

// SetXORMode switches to XOR painting: every written pixel becomes
// dst ^ xorColor ^ src. The composite is ignored until SetPaintMode.
func (c *Context) SetXORMode(xorColor ARGB) {
	c.xorColor = xorColor
	c.xorMode = true
}

// SetPaintMode leaves XOR mode and resets the composite to SrcOver.
func (c *Context) SetPaintMode() {
	c.xorColor = 0
	c.xorMode = false
	c.composite = CompositeSrcOver
}

// XORMode returns the XOR color and whether XOR mode is active.
func (c *Context) XORMode() (ARGB, bool) {
	return c.xorColor, c.xorMode
}

// SetScaleFilter sets the filter used when images are drawn scaled.
func (c *Context) SetScaleFilter(f ScaleFilter) {
	c.filter = f
}

// ScaleFilter returns the current scale filter.
func (c *Context) ScaleFilter() ScaleFilter {
	return c.filter
}

// String returns overlay.Context[originX,originY].
func (c *Context) String() string {
	return fmt.Sprintf("overlay.Context[%d,%d]", c.originX, c.originY)
}

// mode returns the span compositing state.
func (c *Context) mode() blend.Mode {
	return blend.Mode{
		Rule:     c.composite.Rule,
		Alpha:    c.composite.Alpha,
		XOR:      c.xorMode,
		XORColor: uint32(c.xorColor),
	}
}

// updateClip recomputes the effective clip.
func (c *Context) updateClip() {
	c.actualClip = clip.Resolve(c.clip, c.constraint, c.surface.Rect())
	Logger().Debug("overlay: clip updated",
		"origin_x", c.originX,
		"origin_y", c.originY,
		"clip", c.actualClip)
}
