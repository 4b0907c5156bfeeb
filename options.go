package overlay

import (
	imgbuf "github.com/gogpu/overlay/internal/image"
	"github.com/gogpu/overlay/text"
)

// ScaleFilter selects how images are resampled when drawn at a size other
// than their own.
type ScaleFilter = imgbuf.Filter

// Supported scale filters.
const (
	// ScaleAreaAveraging averages the source pixels covered by each
	// destination pixel. It is the default.
	ScaleAreaAveraging = imgbuf.FilterAreaAverage

	// ScaleNearest picks the nearest source pixel.
	ScaleNearest = imgbuf.FilterNearest
)

// ContextOption configures a Context during creation.
//
// Example:
//
//	dc := overlay.NewContext(720, 576,
//	    overlay.WithColor(overlay.White),
//	    overlay.WithComposite(overlay.CompositeSrc),
//	)
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	foreground ARGB
	background ARGB
	face       text.Face
	composite  Composite
	filter     ScaleFilter
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		foreground: Black,
		background: Transparent,
		face:       text.DefaultFace(),
		composite:  CompositeSrcOver,
		filter:     ScaleAreaAveraging,
	}
}

// WithColor sets the initial foreground color.
func WithColor(c ARGB) ContextOption {
	return func(o *contextOptions) {
		o.foreground = c
	}
}

// WithBackground sets the color used by ClearRect.
func WithBackground(c ARGB) ContextOption {
	return func(o *contextOptions) {
		o.background = c
	}
}

// WithFont sets the initial font. A nil face keeps the default.
func WithFont(f text.Face) ContextOption {
	return func(o *contextOptions) {
		if f != nil {
			o.face = f
		}
	}
}

// WithComposite sets the initial composite. Invalid composites are ignored.
func WithComposite(c Composite) ContextOption {
	return func(o *contextOptions) {
		if c.Validate() == nil {
			o.composite = c
		}
	}
}

// WithScaleFilter sets the filter used when images are drawn scaled.
func WithScaleFilter(f ScaleFilter) ContextOption {
	return func(o *contextOptions) {
		o.filter = f
	}
}
