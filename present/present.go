package present

import (
	"errors"
	"fmt"

	"github.com/gogpu/overlay"
)

var (
	// ErrNoBuffer is returned when the frame buffer has no pixels.
	ErrNoBuffer = errors.New("present: frame buffer has no pixels")

	// ErrBufferTooSmall is returned when the frame buffer cannot hold the
	// dirty area.
	ErrBufferTooSmall = errors.New("present: frame buffer too small")
)

// FrameBuffer is a destination for presented pixels, in the same ARGB
// layout as overlay.Surface with stride equal to Width.
//
// Lock and Unlock, when set, bracket every write to Pix.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint32

	Lock   func()
	Unlock func()
}

func (fb *FrameBuffer) lock() {
	if fb.Lock != nil {
		fb.Lock()
	}
}

func (fb *FrameBuffer) unlock() {
	if fb.Unlock != nil {
		fb.Unlock()
	}
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithOnFlush sets a callback invoked with the rectangle written by every
// Flush that copied pixels. It is called after the buffer is unlocked.
func WithOnFlush(fn func(overlay.Rect)) Option {
	return func(p *Presenter) {
		p.onFlush = fn
	}
}

// Presenter moves dirty pixels from surfaces into one FrameBuffer.
//
// A buffer at least as large as the surface is treated as a full-screen
// buffer and receives pixels at their surface position. A smaller buffer
// holds only the dirty area, which is written at its top-left corner.
type Presenter struct {
	fb      *FrameBuffer
	onFlush func(overlay.Rect)
}

// New creates a Presenter writing into fb.
func New(fb *FrameBuffer, opts ...Option) *Presenter {
	p := &Presenter{fb: fb}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FrameBuffer returns the destination buffer.
func (p *Presenter) FrameBuffer() *FrameBuffer {
	return p.fb
}

// Flush consumes the dirty region of s and copies its bounds into the frame
// buffer. It returns the surface rectangle that was presented, which is
// empty when nothing changed since the last flush.
//
// On error the dirty region is left intact so the caller may retry.
func (p *Presenter) Flush(s *overlay.Surface) (overlay.Rect, error) {
	dirty := s.Dirty()
	if dirty.IsEmpty() {
		return overlay.Rect{}, nil
	}
	if p.fb == nil || p.fb.Pix == nil {
		return overlay.Rect{}, ErrNoBuffer
	}

	r := dirty.Bounds().Intersect(s.Rect())
	if r.Empty() {
		dirty.Clear()
		return overlay.Rect{}, nil
	}

	full := p.fb.Width >= s.Width() && p.fb.Height >= s.Height()
	dx, dy := r.X, r.Y
	if !full {
		if p.fb.Width < r.W || p.fb.Height < r.H {
			return overlay.Rect{}, fmt.Errorf("%w: %dx%d buffer, %dx%d dirty area",
				ErrBufferTooSmall, p.fb.Width, p.fb.Height, r.W, r.H)
		}
		dx, dy = 0, 0
	}
	if len(p.fb.Pix) < (dy+r.H-1)*p.fb.Width+dx+r.W {
		return overlay.Rect{}, fmt.Errorf("%w: %d pixels for a %dx%d buffer",
			ErrBufferTooSmall, len(p.fb.Pix), p.fb.Width, p.fb.Height)
	}

	dirty.Clear()

	p.fb.lock()
	s.Pixels(r.X, r.Y, r.W, r.H, p.fb.Pix, dy*p.fb.Width+dx, p.fb.Width)
	p.fb.unlock()

	overlay.Logger().Debug("present: flushed",
		"x", r.X, "y", r.Y, "w", r.W, "h", r.H, "full", full)

	if p.onFlush != nil {
		p.onFlush(r)
	}
	return r, nil
}
