package overlay

import "github.com/gogpu/overlay/text"

// DrawString draws s in the foreground color with its baseline starting at
// (x, y).
func (c *Context) DrawString(s string, x, y int) {
	if c.face == nil || s == "" {
		return
	}
	c.face.DrawString(glyphTarget{c}, s, x, y, uint32(c.fg))
}

// MeasureString returns the advance width of s in the current font.
func (c *Context) MeasureString(s string) int {
	if c.face == nil {
		return 0
	}
	return c.face.Measure(s)
}

// FontMetrics returns the metrics of the current font.
func (c *Context) FontMetrics() text.Metrics {
	if c.face == nil {
		return text.Metrics{}
	}
	return c.face.Metrics()
}

// glyphTarget draws glyph blocks point by point through the clip and
// compositor of a context. Pixels without coverage are skipped.
type glyphTarget struct {
	c *Context
}

func (t glyphTarget) DrawGlyph(pix []uint32, x0, y0, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if p := pix[y*w+x]; p != 0 {
				t.c.drawPoint(x+x0, y+y0, p)
			}
		}
	}
}
