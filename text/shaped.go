package text

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/overlay/internal/cache"
)

// ShapedFace renders TrueType and OpenType fonts with complex shaping.
//
// Glyph IDs and positions come from the HarfBuzz shaper of go-text, glyph
// outlines from x/image/font/sfnt. Rasterized glyphs are cached by ID.
// ShapedFace is safe for concurrent use.
type ShapedFace struct {
	mu       sync.Mutex
	shaper   shaping.HarfbuzzShaper
	face     *gtfont.Face
	outlines *sfnt.Font
	buf      sfnt.Buffer
	ppem     fixed.Int26_6
	glyphs   *cache.LRU[sfnt.GlyphIndex, glyphMask]
}

const maxCachedGlyphs = 512

// glyphMask is a rasterized glyph. offset is the top-left of the mask
// relative to the pen position on the baseline.
type glyphMask struct {
	mask   *image.Alpha
	offset image.Point
}

// NewShapedFace parses font data and returns a face of the given pixel size.
func NewShapedFace(data []byte, size float64) (*ShapedFace, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if !(size > 0) || math.IsInf(size, 1) {
		return nil, ErrInvalidSize
	}

	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	outlines, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	return &ShapedFace{
		face:     face,
		outlines: outlines,
		ppem:     fixed.Int26_6(size * 64),
		glyphs:   cache.NewLRU[sfnt.GlyphIndex, glyphMask](maxCachedGlyphs),
	}, nil
}

// DrawString implements Face.
func (f *ShapedFace) DrawString(dst Target, s string, x, y int, rgb uint32) {
	if s == "" {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	pen := fixed.I(x)
	baseline := fixed.I(y)
	for _, r := range splitRuns(s) {
		for _, g := range f.shape(r) {
			gm := f.glyph(sfnt.GlyphIndex(g.GlyphID)) //nolint:gosec // glyph IDs of sfnt fonts fit in 16 bits
			if gm.mask != nil {
				b := gm.mask.Bounds()
				gx := (pen + g.XOffset).Round() + gm.offset.X
				gy := (baseline - g.YOffset).Round() + gm.offset.Y
				pix := coverageToARGB(gm.mask, image.Point{}, b, rgb)
				dst.DrawGlyph(pix, gx, gy, b.Dx(), b.Dy())
			}
			pen += g.Advance
		}
	}
}

// Measure implements Face.
func (f *ShapedFace) Measure(s string) int {
	if s == "" {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	var width fixed.Int26_6
	for _, r := range splitRuns(s) {
		for _, g := range f.shape(r) {
			width += g.Advance
		}
	}
	return width.Round()
}

// Metrics implements Face.
func (f *ShapedFace) Metrics() Metrics {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, err := f.outlines.Metrics(&f.buf, f.ppem, font.HintingNone)
	if err != nil {
		return Metrics{}
	}
	return Metrics{
		Ascent:  m.Ascent.Round(),
		Descent: m.Descent.Round(),
		Height:  m.Height.Round(),
	}
}

// shape runs the HarfBuzz shaper over one directional run.
func (f *ShapedFace) shape(r run) []shaping.Glyph {
	input := shaping.Input{
		Text:      r.text,
		RunStart:  0,
		RunEnd:    len(r.text),
		Direction: r.dir,
		Face:      f.face,
		Size:      f.ppem,
		Script:    detectScript(r.text),
		Language:  language.NewLanguage("en"),
	}
	return f.shaper.Shape(input).Glyphs
}

// glyph returns the cached mask of gid, rasterizing it on first use.
// Blank or unloadable glyphs have a nil mask.
func (f *ShapedFace) glyph(gid sfnt.GlyphIndex) glyphMask {
	return f.glyphs.GetOrCreate(gid, func() glyphMask {
		return f.rasterize(gid)
	})
}

func (f *ShapedFace) rasterize(gid sfnt.GlyphIndex) glyphMask {
	segments, err := f.outlines.LoadGlyph(&f.buf, gid, f.ppem, nil)
	if err != nil || len(segments) == 0 {
		return glyphMask{}
	}

	bounds := segmentBounds(segments)
	x0, y0 := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	x1, y1 := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return glyphMask{}
	}

	// Shift the outline so the mask starts at (0, 0).
	dx, dy := float32(x0), float32(y0)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 - dx, float32(p.Y)/64 - dy
	}

	r := vector.NewRasterizer(w, h)
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			r.MoveTo(pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			r.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			r.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[0])
			cx, cy := pt(seg.Args[1])
			ex, ey := pt(seg.Args[2])
			r.CubeTo(bx, by, cx, cy, ex, ey)
		}
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return glyphMask{mask: mask, offset: image.Pt(x0, y0)}
}

// segmentBounds returns the box around every point of an outline, control
// points included.
func segmentBounds(segments sfnt.Segments) fixed.Rectangle26_6 {
	b := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: math.MaxInt32, Y: math.MaxInt32},
		Max: fixed.Point26_6{X: math.MinInt32, Y: math.MinInt32},
	}
	for _, seg := range segments {
		n := 1
		switch seg.Op {
		case sfnt.SegmentOpQuadTo:
			n = 2
		case sfnt.SegmentOpCubeTo:
			n = 3
		}
		for _, p := range seg.Args[:n] {
			b.Min.X = min(b.Min.X, p.X)
			b.Min.Y = min(b.Min.Y, p.Y)
			b.Max.X = max(b.Max.X, p.X)
			b.Max.Y = max(b.Max.Y, p.Y)
		}
	}
	return b
}

// run is a span of text with a single direction, in visual order.
type run struct {
	text []rune
	dir  di.Direction
}

// splitRuns splits s into directional runs using the Unicode bidirectional
// algorithm. Text that cannot be analyzed is returned as one LTR run.
func splitRuns(s string) []run {
	whole := []run{{text: []rune(s), dir: di.DirectionLTR}}

	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}

	runs := make([]run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		br := ordering.Run(i)
		dir := di.DirectionLTR
		if br.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, run{text: []rune(br.String()), dir: dir})
	}
	return runs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
