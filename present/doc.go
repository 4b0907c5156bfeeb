// Package present copies the changed part of an overlay surface into an
// application frame buffer.
//
// Drawing through an overlay.Context only records which pixels changed.
// A Presenter consumes that record on Flush and copies the bounding box of
// the changes into a FrameBuffer owned by the display side, under the
// buffer's own lock.
//
// Example usage:
//
//	fb := &present.FrameBuffer{Width: 720, Height: 576, Pix: osd, Lock: mu.Lock, Unlock: mu.Unlock}
//	p := present.New(fb, present.WithOnFlush(func(r overlay.Rect) {
//	    display.Update(r)
//	}))
//
//	dc.DrawString("REC", 20, 30)
//	if _, err := p.Flush(dc.Surface()); err != nil {
//	    return err
//	}
package present
