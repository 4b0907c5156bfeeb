package overlay

import (
	"image"

	imgbuf "github.com/gogpu/overlay/internal/image"
	"github.com/gogpu/overlay/internal/raster"
)

// DrawPoint sets the pixel at (x, y) to the foreground color.
func (c *Context) DrawPoint(x, y int) {
	c.drawPoint(x, y, uint32(c.fg))
}

// DrawLine draws a one-pixel line from (x1, y1) to (x2, y2), both ends
// included.
func (c *Context) DrawLine(x1, y1, x2, y2 int) {
	c.drawLine(x1+c.originX, y1+c.originY, x2+c.originX, y2+c.originY)
}

// drawLine draws a line between absolute coordinates. Each pixel is clipped
// on its own.
func (c *Context) drawLine(x1, y1, x2, y2 int) {
	rgb := uint32(c.fg)
	raster.Line(x1, y1, x2, y2, func(x, y int) {
		c.drawSpan(x, y, 1, rgb)
	})
}

// FillRect fills (x, y, w, h) with the foreground color.
func (c *Context) FillRect(x, y, w, h int) {
	r := c.actualClip.Intersect(Rect{X: x + c.originX, Y: y + c.originY, W: w, H: h})
	rgb := uint32(c.fg)
	for row := r.Y; row < r.Bottom(); row++ {
		c.drawSpan(r.X, row, r.W, rgb)
	}
}

// ClearRect writes the background color into (x, y, w, h) as is. Unlike
// FillRect it bypasses the composite and XOR mode.
func (c *Context) ClearRect(x, y, w, h int) {
	r := c.actualClip.Intersect(Rect{X: x + c.originX, Y: y + c.originY, W: w, H: h})
	if r.Empty() {
		return
	}
	bg := uint32(c.bg)
	for row := r.Y; row < r.Bottom(); row++ {
		dst := c.surface.row(row)[r.X:r.Right()]
		for i := range dst {
			dst[i] = bg
		}
	}
	c.surface.dirty.Add(r)
}

// DrawRect draws the outline of (x, y, w, h). The right and bottom edges lie
// on x+w and y+h.
func (c *Context) DrawRect(x, y, w, h int) {
	x += c.originX
	y += c.originY
	c.drawLine(x, y, x+w, y)
	c.drawLine(x, y+h, x+w, y+h)
	c.drawLine(x, y, x, y+h)
	c.drawLine(x+w, y, x+w, y+h)
}

// CopyArea copies the clipped area (x, y, w, h) by (dx, dy). The source is
// read in full before any pixel is written, so overlapping areas copy
// correctly.
func (c *Context) CopyArea(x, y, w, h, dx, dy int) {
	r := c.actualClip.Intersect(Rect{X: x + c.originX, Y: y + c.originY, W: w, H: h})
	if r.Empty() {
		return
	}

	scratch := imgbuf.GetScratch(r.W * r.H)
	defer imgbuf.PutScratch(scratch)
	c.surface.Pixels(r.X, r.Y, r.W, r.H, scratch, 0, r.W)

	for i := 0; i < r.H; i++ {
		c.blitSpan(r.X+dx, r.Y+i+dy, r.W, scratch, r.W*i)
	}
}

// DrawPolyline connects consecutive points with lines. A single point is
// drawn as a point.
func (c *Context) DrawPolyline(pts []image.Point) {
	switch len(pts) {
	case 0:
		return
	case 1:
		c.DrawPoint(pts[0].X, pts[0].Y)
		return
	}
	for i := 0; i < len(pts)-1; i++ {
		c.DrawLine(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y)
	}
}

// DrawPolygon draws the outline of a polygon, closing it back to the first
// point when there are at least three points.
func (c *Context) DrawPolygon(pts []image.Point) {
	c.DrawPolyline(pts)
	if n := len(pts); n > 2 {
		c.DrawLine(pts[0].X, pts[0].Y, pts[n-1].X, pts[n-1].Y)
	}
}

// FillPolygon fills a polygon with the even-odd rule. Fewer than three
// points draw nothing. Each filled run spans [x1, x2) between two edge
// crossings, so a rectangle polygon covers the same pixels as FillRect.
func (c *Context) FillPolygon(pts []image.Point) {
	raster.FillPolygon(pts, c.span(uint32(c.fg)))
}

// DrawOval draws an approximation of the ellipse inscribed in
// (x, y, w, h) as a closed polyline.
func (c *Context) DrawOval(x, y, w, h int) {
	c.DrawPolyline(raster.OvalOutline(x, y, w, h))
}

// FillOval fills the ellipse inscribed in (x, y, w, h).
func (c *Context) FillOval(x, y, w, h int) {
	raster.FillOval(x, y, w, h, c.span(uint32(c.fg)))
}

// DrawRoundRect draws the outline of (x, y, w, h) with corners rounded by
// quarter ellipses of arcWidth by arcHeight. A zero arc size draws a plain
// rectangle; negative sizes count as positive.
func (c *Context) DrawRoundRect(x, y, w, h, arcWidth, arcHeight int) {
	if w <= 0 || h <= 0 {
		return
	}
	if arcWidth == 0 || arcHeight == 0 {
		c.DrawRect(x, y, w, h)
		return
	}
	c.DrawPolyline(raster.RoundRectOutline(x, y, w, h, abs(arcWidth), abs(arcHeight)))
}

// FillRoundRect fills (x, y, w, h) with rounded corners as DrawRoundRect.
func (c *Context) FillRoundRect(x, y, w, h, arcWidth, arcHeight int) {
	if w <= 0 || h <= 0 {
		return
	}
	if arcWidth == 0 || arcHeight == 0 {
		c.FillRect(x, y, w, h)
		return
	}
	raster.FillRoundRect(x, y, w, h, abs(arcWidth), abs(arcHeight), c.span(uint32(c.fg)))
}

// DrawArc is not supported.
func (c *Context) DrawArc(x, y, w, h, startAngle, arcAngle int) error {
	return notImplemented("DrawArc")
}

// FillArc is not supported.
func (c *Context) FillArc(x, y, w, h, startAngle, arcAngle int) error {
	return notImplemented("FillArc")
}

// Stroke is the stroke style of a context. Only the implicit one-pixel
// solid stroke exists, so no values of it are ever produced.
type Stroke interface {
	stroke()
}

// Stroke is not supported; it always returns a NotImplementedError.
func (c *Context) Stroke() (Stroke, error) {
	return nil, notImplemented("Stroke")
}

// SetStroke is not supported; it always returns a NotImplementedError.
func (c *Context) SetStroke(s Stroke) error {
	return notImplemented("SetStroke")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
