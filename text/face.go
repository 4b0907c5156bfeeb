package text

// Face draws and measures strings.
//
// Coordinates are those of the Target; y is the baseline of the text.
// Glyph pixels carry the requested color with their alpha scaled by glyph
// coverage.
type Face interface {
	// DrawString renders s with its baseline origin at (x, y).
	DrawString(dst Target, s string, x, y int, rgb uint32)

	// Measure returns the advance width of s in pixels.
	Measure(s string) int

	// Metrics returns the vertical metrics of the face.
	Metrics() Metrics
}

// Target receives rasterized glyphs.
type Target interface {
	// DrawGlyph draws the w by h block of ARGB pixels with its top-left
	// corner at (x, y). pix is row-major with stride w.
	DrawGlyph(pix []uint32, x, y, w, h int)
}

// Metrics holds vertical font metrics in whole pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of a line.
	Ascent int
	// Descent is the distance from the baseline to the bottom of a line.
	Descent int
	// Height is the recommended baseline-to-baseline distance.
	Height int
}
