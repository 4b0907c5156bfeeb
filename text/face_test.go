package text

import (
	"errors"
	"testing"

	"github.com/go-text/typesetting/di"
	"golang.org/x/image/font/gofont/goregular"
)

type glyphCall struct {
	x, y, w, h int
	pix        []uint32
}

type recordTarget struct {
	calls []glyphCall
}

func (r *recordTarget) DrawGlyph(pix []uint32, x, y, w, h int) {
	r.calls = append(r.calls, glyphCall{x, y, w, h, pix})
}

func TestBitmapFaceDrawString(t *testing.T) {
	face := DefaultFace()
	var dst recordTarget
	const rgb = 0xFF00FF00

	face.DrawString(&dst, "AB", 0, 11, rgb)

	if len(dst.calls) != 2 {
		t.Fatalf("got %d glyphs, want 2", len(dst.calls))
	}
	want := []glyphCall{{x: 0, y: 0, w: 6, h: 13}, {x: 7, y: 0, w: 6, h: 13}}
	for i, c := range dst.calls {
		if c.x != want[i].x || c.y != want[i].y || c.w != want[i].w || c.h != want[i].h {
			t.Errorf("glyph %d at (%d,%d %dx%d), want (%d,%d %dx%d)",
				i, c.x, c.y, c.w, c.h, want[i].x, want[i].y, want[i].w, want[i].h)
		}
		if len(c.pix) != c.w*c.h {
			t.Errorf("glyph %d: %d pixels for %dx%d", i, len(c.pix), c.w, c.h)
		}

		inked := 0
		for _, p := range c.pix {
			switch p {
			case 0:
			case rgb:
				inked++
			default:
				t.Fatalf("glyph %d: unexpected pixel %#x", i, p)
			}
		}
		if inked == 0 {
			t.Errorf("glyph %d has no ink", i)
		}
	}
}

func TestBitmapFaceAlpha(t *testing.T) {
	var dst recordTarget
	DefaultFace().DrawString(&dst, "X", 0, 11, 0x80FFFFFF)

	for _, p := range dst.calls[0].pix {
		if p != 0 && p != 0x80FFFFFF {
			t.Fatalf("pixel %#x, want color alpha kept at 0x80", p)
		}
	}
}

func TestBitmapFaceMeasureMetrics(t *testing.T) {
	face := DefaultFace()
	if got := face.Measure("hello"); got != 35 {
		t.Errorf("Measure(hello) = %d, want 35", got)
	}
	if got := face.Measure(""); got != 0 {
		t.Errorf("Measure(\"\") = %d, want 0", got)
	}
	m := face.Metrics()
	if m != (Metrics{Ascent: 11, Descent: 2, Height: 13}) {
		t.Errorf("Metrics() = %+v", m)
	}
}

func TestNewShapedFaceErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		size float64
		want error
	}{
		{"empty data", nil, 12, ErrEmptyFontData},
		{"zero size", goregular.TTF, 0, ErrInvalidSize},
		{"negative size", goregular.TTF, -3, ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewShapedFace(tt.data, tt.size); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := NewShapedFace([]byte("not a font"), 12); err == nil {
		t.Error("garbage data: expected parse error")
	}
}

func TestShapedFace(t *testing.T) {
	face, err := NewShapedFace(goregular.TTF, 16)
	if err != nil {
		t.Fatal(err)
	}

	m := face.Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 || m.Height < m.Ascent {
		t.Errorf("Metrics() = %+v", m)
	}

	w := face.Measure("Hello")
	if w <= 0 {
		t.Fatalf("Measure(Hello) = %d", w)
	}
	if face.Measure("Hello Hello") <= w {
		t.Error("longer string did not measure wider")
	}
	if face.Measure("") != 0 {
		t.Error("empty string has width")
	}

	var dst recordTarget
	const rgb = 0xFF202020
	face.DrawString(&dst, "Hello", 10, 20, rgb)
	if len(dst.calls) < 4 {
		t.Fatalf("got %d glyphs, want at least 4", len(dst.calls))
	}
	for i, c := range dst.calls {
		if c.y > 20 || c.y+c.h < 20-m.Ascent {
			t.Errorf("glyph %d spans rows %d..%d, not around baseline 20", i, c.y, c.y+c.h)
		}
		for _, p := range c.pix {
			if p != 0 && p&0x00FFFFFF != rgb&0x00FFFFFF {
				t.Fatalf("glyph %d: pixel %#x changes color", i, p)
			}
		}
	}
	if dst.calls[0].x < 10 || dst.calls[len(dst.calls)-1].x <= dst.calls[0].x {
		t.Error("glyphs do not advance to the right of the origin")
	}

	// Cached glyphs render identically.
	var again recordTarget
	face.DrawString(&again, "Hello", 10, 20, rgb)
	if len(again.calls) != len(dst.calls) {
		t.Fatalf("second draw: %d glyphs, want %d", len(again.calls), len(dst.calls))
	}
}

func TestSplitRuns(t *testing.T) {
	runs := splitRuns("plain text")
	if len(runs) != 1 || runs[0].dir != di.DirectionLTR || string(runs[0].text) != "plain text" {
		t.Errorf("splitRuns(plain text) = %+v", runs)
	}

	runs = splitRuns("אבג")
	if len(runs) != 1 || runs[0].dir != di.DirectionRTL {
		t.Errorf("splitRuns(hebrew) = %+v, want a single RTL run", runs)
	}
}
