package overlay

import (
	imgbuf "github.com/gogpu/overlay/internal/image"
)

// DrawImage draws src at its natural size with its top-left at (x, y).
//
// All image drawing is non-blocking. It returns true once the image has been
// composited, false when nothing was drawn: an incomplete source (obs is
// then notified on completion), a nil source, or a degenerate rectangle.
func (c *Context) DrawImage(src ImageSource, x, y int, obs ImageObserver) bool {
	return c.drawImage(src, x, y, -1, -1, 0, 0, -1, -1, nil, obs)
}

// DrawImageBackground is DrawImage with every image row drawn over a span of
// bg.
func (c *Context) DrawImageBackground(src ImageSource, x, y int, bg ARGB, obs ImageObserver) bool {
	return c.drawImage(src, x, y, -1, -1, 0, 0, -1, -1, &bg, obs)
}

// DrawImageScaled draws src scaled to w by h at (x, y). A negative w or h
// draws at the natural size. A non-nil bg is drawn under the image.
func (c *Context) DrawImageScaled(src ImageSource, x, y, w, h int, bg *ARGB, obs ImageObserver) bool {
	return c.drawImage(src, x, y, w, h, 0, 0, -1, -1, bg, obs)
}

// DrawImageRegion draws the source rectangle with corners (sx1, sy1) and
// (sx2, sy2) scaled into the destination rectangle with corners (dx1, dy1)
// and (dx2, dy2). Corners may be given in any order.
func (c *Context) DrawImageRegion(src ImageSource, dx1, dy1, dx2, dy2, sx1, sy1, sx2, sy2 int, bg *ARGB, obs ImageObserver) bool {
	dx1, dx2 = min(dx1, dx2), max(dx1, dx2)
	dy1, dy2 = min(dy1, dy2), max(dy1, dy2)
	sx1, sx2 = min(sx1, sx2), max(sx1, sx2)
	sy1, sy2 = min(sy1, sy2), max(sy1, sy2)
	return c.drawImage(src, dx1, dy1, dx2-dx1, dy2-dy1, sx1, sy1, sx2-sx1, sy2-sy1, bg, obs)
}

// drawImage is the blitter behind every DrawImage variant. A negative source
// size stands for the rest of the image, a negative destination size for the
// source size.
func (c *Context) drawImage(src ImageSource, dx, dy, dw, dh, sx, sy, sw, sh int, bg *ARGB, obs ImageObserver) bool {
	if sx < 0 || sy < 0 || sw == 0 || sh == 0 || dw == 0 || dh == 0 {
		return false
	}
	if src == nil {
		Logger().Warn("overlay: unsupported image source")
		return false
	}
	if cs, ok := src.(CompletionSource); ok && !cs.IsComplete(obs) {
		return false
	}

	iw, ih := src.Size()
	if sw < 0 {
		sw = iw - sx
	}
	if sh < 0 {
		sh = ih - sy
	}
	if sw <= 0 || sh <= 0 {
		return false
	}

	// Only the part of the source rectangle inside the image is read. The
	// rest is transparent padding.
	cw, ch := min(sw, iw-sx), min(sh, ih-sy)
	if cw < sw || ch < sh {
		Logger().Info("overlay: clamping image source rectangle",
			"src", Rect{X: sx, Y: sy, W: sw, H: sh},
			"width", iw, "height", ih)
	}

	var buf *imgbuf.Buffer
	if cw > 0 && ch > 0 {
		var err error
		if buf, err = imgbuf.NewBuffer(cw, ch); err != nil {
			return false
		}
		src.Pixels(sx, sy, cw, ch, buf.Pix, 0, cw)
	}

	w, h := sw, sh
	if dw > 0 && dh > 0 && (dw != sw || dh != sh) {
		Logger().Debug("overlay: scaling image",
			"from_w", sw, "from_h", sh,
			"to_w", dw, "to_h", dh,
			"filter", c.filter)
		w, h = dw, dh
		if buf != nil {
			var ok bool
			if buf, ok = c.scaleSource(buf, sw, sh, dw, dh); !ok {
				return false
			}
		}
	}

	c.blit(buf, dx+c.originX, dy+c.originY, w, h, bg)
	return true
}

// maxPaddedPixels bounds the padded copy built when a clamped source
// rectangle is scaled.
const maxPaddedPixels = 1 << 22

// scaleSource scales the image-covered block buf of an sw by sh source
// rectangle to dw by dh. The padding takes part in the filter unless the
// padded copy would exceed maxPaddedPixels; the covered block is then
// scaled on its own to its share of the destination.
func (c *Context) scaleSource(buf *imgbuf.Buffer, sw, sh, dw, dh int) (*imgbuf.Buffer, bool) {
	tw, th := dw, dh
	switch {
	case buf.Width == sw && buf.Height == sh:
	case int64(sw)*int64(sh) <= maxPaddedPixels:
		full, err := imgbuf.NewBuffer(sw, sh)
		if err != nil {
			return nil, false
		}
		buf.CopyTo(0, 0, buf.Width, buf.Height, full.Pix, 0, sw)
		buf = full
	default:
		tw = max(1, int(int64(dw)*int64(buf.Width)/int64(sw)))
		th = max(1, int(int64(dh)*int64(buf.Height)/int64(sh)))
		Logger().Info("overlay: scaling clamped image without padding",
			"covered_w", buf.Width, "covered_h", buf.Height,
			"to_w", tw, "to_h", th)
	}

	out, err := imgbuf.Scale(buf, tw, th, c.filter)
	if err != nil {
		return nil, false
	}
	return out, true
}

// blit draws the w by h block at absolute (x, y). Its top-left pixels come
// from buf, which may be nil or smaller than the block; the remainder is
// drawn as transparent. A non-nil bg is drawn under every row first. Rows
// outside the clip are skipped.
func (c *Context) blit(buf *imgbuf.Buffer, x, y, w, h int, bg *ARGB) {
	first := max(0, c.actualClip.Y-y)
	last := min(h, c.actualClip.Bottom()-y)
	for row := first; row < last; row++ {
		yy := y + row
		if bg != nil {
			c.drawSpan(x, yy, w, uint32(*bg))
		}
		n := 0
		if buf != nil && row < buf.Height {
			n = min(buf.Width, w)
			c.blitSpan(x, yy, n, buf.Pix, row*buf.Width)
		}
		if n < w {
			c.drawSpan(x+n, yy, w-n, 0)
		}
	}
}
