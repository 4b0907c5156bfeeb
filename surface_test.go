package overlay

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewSurface(t *testing.T) {
	s := NewSurface(4, 3)
	if s.Width() != 4 || s.Height() != 3 || len(s.Pix()) != 12 {
		t.Fatalf("surface %dx%d with %d pixels", s.Width(), s.Height(), len(s.Pix()))
	}
	if !s.Dirty().IsEmpty() {
		t.Error("new surface is dirty")
	}

	empty := NewSurface(-1, 5)
	if empty.Width() != 0 || len(empty.Pix()) != 0 {
		t.Errorf("negative width gave %dx%d", empty.Width(), empty.Height())
	}
	if img := empty.ToImage(); !img.Bounds().Empty() {
		t.Error("empty surface converted to a non-empty image")
	}
}

func TestSurfacePixels(t *testing.T) {
	s := NewSurface(3, 2)
	s.SetPixel(2, 1, White)
	s.SetPixel(3, 0, White)
	s.SetPixel(-1, 0, White)

	if s.Pixel(2, 1) != White || s.Pixel(5, 5) != Transparent {
		t.Error("Pixel returned unexpected values")
	}
	if !s.Dirty().Contains(2, 1) || s.Dirty().Bounds() != NewRect(2, 1, 1, 1) {
		t.Errorf("dirty = %v", s.Dirty().Rects())
	}

	dst := make([]uint32, 8)
	s.Pixels(1, 0, 2, 2, dst, 1, 4)
	want := []uint32{0, 0, 0, 0, 0, 0, uint32(White), 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %#x, want %#x", i, dst[i], want[i])
		}
	}

	if w, h := s.Size(); w != 3 || h != 2 {
		t.Errorf("Size() = %d,%d", w, h)
	}
}

func TestSurfaceImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetNRGBA(0, 1, color.NRGBA{R: 255, A: 128})

	s := NewSurfaceFromImage(src)
	if s.Pixel(1, 0) != 0xFF0A141E || s.Pixel(0, 1) != 0x80FF0000 {
		t.Errorf("pixels = %v %v", s.Pixel(1, 0), s.Pixel(0, 1))
	}
	if !s.Dirty().IsEmpty() {
		t.Error("surface from image starts dirty")
	}

	out := s.ToImage()
	if out.NRGBAAt(0, 1) != (color.NRGBA{R: 255, A: 128}) {
		t.Errorf("ToImage pixel = %v", out.NRGBAAt(0, 1))
	}

	var _ image.Image = s
	if s.Bounds() != image.Rect(0, 0, 2, 2) || s.ColorModel() != color.NRGBAModel {
		t.Error("image.Image methods disagree with the surface")
	}
	if FromColor(s.At(1, 0)) != 0xFF0A141E {
		t.Errorf("At(1,0) = %v", s.At(1, 0))
	}
}

func TestSurfaceSavePNG(t *testing.T) {
	s := NewSurface(3, 3)
	s.Clear(RGB(0, 128, 255))
	if s.Dirty().Bounds() != s.Rect() {
		t.Error("Clear did not mark the whole surface")
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got := FromColor(img.At(2, 2)); got != RGB(0, 128, 255) {
		t.Errorf("decoded pixel = %v", got)
	}
}
