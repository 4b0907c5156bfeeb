// Package overlay is a software 2D rasterizer that draws straight into an
// in-memory ARGB pixel buffer.
//
// # Overview
//
// overlay targets hosts without an accelerated canvas, such as a graphics
// plane composited over video. Drawing happens on a [Context]; every Context
// writes into a shared [Surface], which records the touched area in its
// [DirtyRegion] so a presentation layer can copy only what changed.
//
// # Quick Start
//
//	import "github.com/gogpu/overlay"
//
//	dc := overlay.NewContext(320, 240)
//	dc.SetColor(overlay.RGB(255, 0, 0))
//	dc.FillRect(10, 10, 100, 50)
//	dc.DrawLine(0, 0, 319, 239)
//	dc.Surface().SavePNG("out.png")
//
// # Coordinates and Clipping
//
// Drawing coordinates are relative to the context origin, moved with
// [Context.Translate]. Each context clips to the intersection of an optional
// user clip ([Context.SetClip], [Context.ClipRect]), an optional constraint
// ([Context.Constrain]) and the surface bounds. Only rectangular clips are
// supported.
//
// # Compositing
//
// Pixels are non-premultiplied ARGB with alpha in the most significant byte.
// A [Composite] selects Clear, Src or SrcOver with an extra alpha factor.
// [Context.SetXORMode] switches to XOR painting, which ignores the composite.
//
// # Forks
//
// [Context.Fork] returns a context sharing the surface but with its own copy
// of origin, clip, colors, font and composite state. Contexts are not safe
// for concurrent use; serialize all drawing into one surface.
//
// # Architecture
//
//   - Public API: Context, Surface, DirtyRegion, Composite, ImageSource
//   - Internal: clip (rectangles and clip resolution), blend (span
//     compositing), raster (lines, polygons, ellipses), image (pixel
//     buffers and scaling)
//   - Collaborators: text (fonts), present (frame buffer flushing)
package overlay
