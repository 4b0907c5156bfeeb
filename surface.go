package overlay

import (
	"image"
	"image/color"
	"image/png"
	"os"

	imgbuf "github.com/gogpu/overlay/internal/image"
)

// Surface is an ARGB pixel buffer together with the dirty region of its
// pending updates. Pixels are row-major with a stride equal to the width.
//
// A Surface is shared by pointer between every Context drawing into it; its
// pixels are never copied by the engine.
type Surface struct {
	width  int
	height int
	pix    []uint32
	dirty  DirtyRegion
}

// NewSurface creates a transparent surface. Negative dimensions are treated
// as zero.
func NewSurface(width, height int) *Surface {
	width, height = max(width, 0), max(height, 0)
	return &Surface{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// NewSurfaceFromImage creates a surface holding a copy of img.
// The dirty region starts empty.
func NewSurfaceFromImage(img image.Image) *Surface {
	b := img.Bounds()
	s := NewSurface(b.Dx(), b.Dy())
	for y := 0; y < s.height; y++ {
		row := s.pix[y*s.width : (y+1)*s.width]
		for x := range row {
			row[x] = imgbuf.PackColor(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return s
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Rect returns {0, 0, Width, Height}.
func (s *Surface) Rect() Rect {
	return Rect{W: s.width, H: s.height}
}

// Pix returns the pixel slice. Writes through it bypass dirty tracking.
func (s *Surface) Pix() []uint32 {
	return s.pix
}

// Dirty returns the dirty region of the surface.
func (s *Surface) Dirty() *DirtyRegion {
	return &s.dirty
}

// Pixel returns the pixel at (x, y), or Transparent outside the surface.
func (s *Surface) Pixel(x, y int) ARGB {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return Transparent
	}
	return ARGB(s.pix[y*s.width+x])
}

// SetPixel stores c at (x, y) as is and marks the pixel dirty.
// Out-of-range coordinates are ignored.
func (s *Surface) SetPixel(x, y int, c ARGB) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.pix[y*s.width+x] = uint32(c)
	s.dirty.MarkRect(x, y, 1, 1)
}

// Clear fills the whole surface with c and marks it dirty.
func (s *Surface) Clear(c ARGB) {
	for i := range s.pix {
		s.pix[i] = uint32(c)
	}
	s.dirty.Add(s.Rect())
}

// row returns the pixels of row y.
func (s *Surface) row(y int) []uint32 {
	return s.pix[y*s.width : (y+1)*s.width]
}

// Size implements ImageSource.
func (s *Surface) Size() (w, h int) {
	return s.width, s.height
}

// Pixels implements ImageSource.
func (s *Surface) Pixels(sx, sy, w, h int, dst []uint32, offset, stride int) {
	for y := 0; y < h; y++ {
		src := s.pix[(sy+y)*s.width+sx:]
		copy(dst[offset+y*stride:offset+y*stride+w], src[:w])
	}
}

// ToImage converts the surface to an image.NRGBA.
func (s *Surface) ToImage() *image.NRGBA {
	if s.width == 0 || s.height == 0 {
		return image.NewNRGBA(image.Rectangle{})
	}
	b := &imgbuf.Buffer{Width: s.width, Height: s.height, Pix: s.pix}
	return b.ToNRGBA()
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s.ToImage())
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}
