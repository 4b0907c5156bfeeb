// Package image provides ARGB pixel buffers and the resampling used by the
// image blitter.
package image

import (
	"errors"
	"image"
	"image/color"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataTooSmall is returned when provided pixels are fewer than width*height.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// Buffer is a row-major ARGB pixel block with stride equal to its width.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewBuffer allocates a zeroed (transparent) buffer.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buffer{Width: width, Height: height, Pix: make([]uint32, width*height)}, nil
}

// FromPixels wraps existing pixels without copying.
func FromPixels(pix []uint32, width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(pix) < width*height {
		return nil, ErrDataTooSmall
	}
	return &Buffer{Width: width, Height: height, Pix: pix[:width*height]}, nil
}

// Row returns the pixels of row y.
func (b *Buffer) Row(y int) []uint32 {
	return b.Pix[y*b.Width : (y+1)*b.Width]
}

// At returns the pixel at (x, y), or 0 outside the buffer.
func (b *Buffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Pix[y*b.Width+x]
}

// Set stores a pixel. Out-of-range coordinates are ignored.
func (b *Buffer) Set(x, y int, argb uint32) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Pix[y*b.Width+x] = argb
}

// CopyTo copies the w by h block at (sx, sy) into dst starting at offset,
// advancing stride pixels per row. The block must lie inside b.
func (b *Buffer) CopyTo(sx, sy, w, h int, dst []uint32, offset, stride int) {
	for y := 0; y < h; y++ {
		row := b.Pix[(sy+y)*b.Width+sx:]
		copy(dst[offset+y*stride:offset+y*stride+w], row[:w])
	}
}

// Crop returns a new w by h buffer holding the block of b at (x, y).
// Parts of the block outside b stay transparent.
func (b *Buffer) Crop(x, y, w, h int) (*Buffer, error) {
	out, err := NewBuffer(w, h)
	if err != nil {
		return nil, err
	}

	cw := min(w, b.Width-x)
	ch := min(h, b.Height-y)
	if x < 0 || y < 0 || cw <= 0 || ch <= 0 {
		return out, nil
	}
	b.CopyTo(x, y, cw, ch, out.Pix, 0, w)
	return out, nil
}

// ToNRGBA converts the buffer to a non-premultiplied image.NRGBA.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for i, p := range b.Pix {
		j := i * 4
		img.Pix[j+0] = uint8(p >> 16)
		img.Pix[j+1] = uint8(p >> 8)
		img.Pix[j+2] = uint8(p)
		img.Pix[j+3] = uint8(p >> 24)
	}
	return img
}

// FromImage converts any image.Image into a new Buffer.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	out, err := NewBuffer(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			out.Pix[y*out.Width+x] = PackColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return out, nil
}

// PackColor converts a color.Color to a non-premultiplied ARGB word.
func PackColor(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.A)<<24 | uint32(n.R)<<16 | uint32(n.G)<<8 | uint32(n.B)
}
