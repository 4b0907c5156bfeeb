// Package text provides the font collaborator of the overlay rasterizer.
//
// A [Face] turns a string into glyph coverage blocks and hands them to a
// [Target], which is normally an overlay.Context. The context composites the
// glyph pixels one by one through its clip, so text obeys the same clipping,
// compositing and dirty tracking as every other primitive.
//
// Two faces are provided:
//
//   - [BitmapFace] wraps any golang.org/x/image/font.Face. [DefaultFace]
//     returns one backed by basicfont.Face7x13, which needs no font file.
//   - [ShapedFace] parses TrueType or OpenType data. Text is split into
//     directional runs with golang.org/x/text/unicode/bidi, shaped with the
//     HarfBuzz port of github.com/go-text/typesetting, and every glyph outline
//     is loaded with golang.org/x/image/font/sfnt and rasterized by
//     golang.org/x/image/vector.
//
// # Example usage
//
//	face, err := text.NewShapedFace(goregular.TTF, 18)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dc := overlay.NewContext(320, 240, overlay.WithFont(face))
//	dc.DrawString("Hello, overlay", 10, 30)
package text
