// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster converts integer primitives into pixels and spans.
//
// The functions here know nothing about surfaces, clipping or colors. They
// report covered pixels through Plot callbacks and covered runs through
// Span callbacks; the caller owns compositing.
package raster

// Plot receives a single covered pixel.
type Plot func(x, y int)

// Span receives a horizontal run of length pixels starting at (x, y).
// length may be zero or negative for degenerate input; callers treat that
// as nothing to draw.
type Span func(x, y, length int)

// Line walks the integer Bresenham line from (x1, y1) to (x2, y2), both
// endpoints inclusive, calling plot for every pixel in order.
//
// All eight octants are handled by a sign-adjusted step and a doubled error
// accumulator, so no floating point is involved.
func Line(x1, y1, x2, y2 int, plot Plot) {
	dy := y2 - y1
	dx := x2 - x1

	stepx, stepy := 1, 1
	if dy < 0 {
		dy = -dy
		stepy = -1
	}
	if dx < 0 {
		dx = -dx
		stepx = -1
	}
	dy <<= 1
	dx <<= 1

	plot(x1, y1)

	if dx > dy {
		fraction := dy - (dx >> 1)
		for x1 != x2 {
			if fraction >= 0 {
				y1 += stepy
				fraction -= dx
			}
			x1 += stepx
			fraction += dy
			plot(x1, y1)
		}
		return
	}

	fraction := dx - (dy >> 1)
	for y1 != y2 {
		if fraction >= 0 {
			x1 += stepx
			fraction -= dy
		}
		y1 += stepy
		fraction += dx
		plot(x1, y1)
	}
}
