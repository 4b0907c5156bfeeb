package image

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr error
	}{
		{"valid", 4, 3, nil},
		{"zero width", 0, 3, ErrInvalidDimensions},
		{"negative height", 4, -1, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBuffer(tt.w, tt.h)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err == nil && len(b.Pix) != tt.w*tt.h {
				t.Errorf("len(Pix) = %d, want %d", len(b.Pix), tt.w*tt.h)
			}
		})
	}
}

func TestFromPixels(t *testing.T) {
	if _, err := FromPixels(make([]uint32, 5), 3, 2); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short data: err = %v, want ErrDataTooSmall", err)
	}
	pix := make([]uint32, 8)
	b, err := FromPixels(pix, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	b.Set(1, 1, 7)
	if pix[4] != 7 {
		t.Error("FromPixels copied instead of wrapping")
	}
}

func TestBufferAtSet(t *testing.T) {
	b, _ := NewBuffer(2, 2)
	b.Set(1, 0, 0xFF112233)
	b.Set(-1, 0, 1)
	b.Set(2, 2, 1)

	if got := b.At(1, 0); got != 0xFF112233 {
		t.Errorf("At(1,0) = %#x", got)
	}
	if got := b.At(5, 5); got != 0 {
		t.Errorf("At outside = %#x, want 0", got)
	}
	for i, p := range b.Pix {
		if i != 1 && p != 0 {
			t.Errorf("pixel %d = %#x, want 0", i, p)
		}
	}
}

func TestCrop(t *testing.T) {
	b, _ := NewBuffer(4, 4)
	for i := range b.Pix {
		b.Pix[i] = uint32(i + 1)
	}

	c, err := b.Crop(1, 1, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint32{6, 7, 10, 11}
	for i, p := range c.Pix {
		if p != want[i] {
			t.Errorf("pixel %d = %d, want %d", i, p, want[i])
		}
	}

	// Extends past the right and bottom edges.
	c, _ = b.Crop(3, 3, 2, 2)
	want = []uint32{16, 0, 0, 0}
	for i, p := range c.Pix {
		if p != want[i] {
			t.Errorf("overhang pixel %d = %d, want %d", i, p, want[i])
		}
	}

	if _, err := b.Crop(0, 0, 0, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("empty crop: err = %v", err)
	}
}

func TestNRGBARoundTrip(t *testing.T) {
	b, _ := NewBuffer(2, 1)
	b.Pix[0] = 0x80FF4020
	b.Pix[1] = 0xFF000000

	img := b.ToNRGBA()
	if c := img.NRGBAAt(0, 0); c != (color.NRGBA{R: 0xFF, G: 0x40, B: 0x20, A: 0x80}) {
		t.Errorf("NRGBAAt(0,0) = %v", c)
	}

	back, err := FromImage(img)
	if err != nil {
		t.Fatal(err)
	}
	for i := range b.Pix {
		if back.Pix[i] != b.Pix[i] {
			t.Errorf("pixel %d = %#x, want %#x", i, back.Pix[i], b.Pix[i])
		}
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 12, 11))
	img.SetNRGBA(11, 10, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	b, err := FromImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if b.Width != 2 || b.Height != 1 {
		t.Fatalf("size = %dx%d, want 2x1", b.Width, b.Height)
	}
	if b.Pix[1] != 0xFF010203 {
		t.Errorf("Pix[1] = %#x, want 0xFF010203", b.Pix[1])
	}
}

func TestScratch(t *testing.T) {
	s := GetScratch(16)
	if len(s) != 16 {
		t.Fatalf("len = %d, want 16", len(s))
	}
	for i := range s {
		s[i] = 9
	}
	PutScratch(s)

	s = GetScratch(8)
	for i, p := range s {
		if p != 0 {
			t.Fatalf("reused scratch not cleared at %d", i)
		}
	}
}
