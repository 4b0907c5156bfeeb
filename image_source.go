package overlay

import (
	"image"
	"reflect"
	"slices"
	"sync"

	imgbuf "github.com/gogpu/overlay/internal/image"
)

// ImageSource is anything the blitter can read pixels from.
type ImageSource interface {
	// Size returns the image dimensions.
	Size() (w, h int)

	// Pixels copies the w by h block at (sx, sy) into dst, writing row i at
	// dst[offset+i*stride:]. The block lies inside the image.
	Pixels(sx, sy, w, h int, dst []uint32, offset, stride int)
}

// ImageObserver is told when an image that was not ready to draw has
// finished loading.
type ImageObserver interface {
	ImageUpdated(src ImageSource)
}

// ImageObserverFunc adapts a function to ImageObserver.
type ImageObserverFunc func(src ImageSource)

// ImageUpdated calls f(src).
func (f ImageObserverFunc) ImageUpdated(src ImageSource) {
	f(src)
}

// CompletionSource is an ImageSource whose pixels arrive over time.
type CompletionSource interface {
	ImageSource

	// IsComplete reports whether every pixel is available. While it is
	// not, obs (if non-nil) is registered for notification on completion.
	IsComplete(obs ImageObserver) bool
}

// bufferSource is an ImageSource over a decoded pixel buffer.
type bufferSource struct {
	buf *imgbuf.Buffer
}

func (b bufferSource) Size() (w, h int) {
	if b.buf == nil {
		return 0, 0
	}
	return b.buf.Width, b.buf.Height
}

func (b bufferSource) Pixels(sx, sy, w, h int, dst []uint32, offset, stride int) {
	b.buf.CopyTo(sx, sy, w, h, dst, offset, stride)
}

// FromImage returns an ImageSource for img. A *Surface is used directly;
// any other image is converted to ARGB once, up front.
func FromImage(img image.Image) ImageSource {
	if s, ok := img.(*Surface); ok {
		return s
	}
	buf, err := imgbuf.FromImage(img)
	if err != nil {
		// Empty image, nothing to draw.
		return bufferSource{}
	}
	return bufferSource{buf: buf}
}

// ProgressiveImage is an image whose pixels are delivered incrementally,
// for example by a decoder running in another goroutine.
//
// Drawing a ProgressiveImage before Done is called draws nothing and
// registers the observer, which is notified once from Done no matter how
// many draws were attempted.
// ProgressiveImage is safe for concurrent use.
type ProgressiveImage struct {
	mu        sync.Mutex
	width     int
	height    int
	pix       []uint32
	complete  bool
	observers []ImageObserver
}

// NewProgressiveImage creates an incomplete, transparent image.
func NewProgressiveImage(width, height int) *ProgressiveImage {
	width, height = max(width, 0), max(height, 0)
	return &ProgressiveImage{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Size implements ImageSource.
func (p *ProgressiveImage) Size() (w, h int) {
	return p.width, p.height
}

// Pixels implements ImageSource.
func (p *ProgressiveImage) Pixels(sx, sy, w, h int, dst []uint32, offset, stride int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for y := 0; y < h; y++ {
		src := p.pix[(sy+y)*p.width+sx:]
		copy(dst[offset+y*stride:offset+y*stride+w], src[:w])
	}
}

// SetPixels stores the w by h block at (x, y) taken from pix, row i starting
// at pix[offset+i*stride]. Parts outside the image are dropped.
func (p *ProgressiveImage) SetPixels(x, y, w, h int, pix []uint32, offset, stride int) {
	r := Rect{W: p.width, H: p.height}.Intersect(Rect{X: x, Y: y, W: w, H: h})
	if r.Empty() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for row := 0; row < r.H; row++ {
		src := pix[offset+(r.Y-y+row)*stride+(r.X-x):]
		copy(p.pix[(r.Y+row)*p.width+r.X:(r.Y+row)*p.width+r.Right()], src[:r.W])
	}
}

// Done marks the image complete and notifies every registered observer.
// Calls after the first are no-ops.
func (p *ProgressiveImage) Done() {
	p.mu.Lock()
	if p.complete {
		p.mu.Unlock()
		return
	}
	p.complete = true
	observers := p.observers
	p.observers = nil
	p.mu.Unlock()

	for _, obs := range observers {
		obs.ImageUpdated(p)
	}
}

// IsComplete implements CompletionSource. An observer is registered at
// most once however often an incomplete image is polled.
func (p *ProgressiveImage) IsComplete(obs ImageObserver) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.complete {
		return true
	}
	if obs != nil && !slices.ContainsFunc(p.observers, func(o ImageObserver) bool {
		return sameObserver(o, obs)
	}) {
		p.observers = append(p.observers, obs)
	}
	return false
}

// sameObserver reports whether a and b are the same observer. Comparable
// observers are compared with ==, functions by code pointer. Other
// observers are never considered equal.
func sameObserver(a, b ImageObserver) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	if ta.Kind() == reflect.Func {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	return false
}
