// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"
)

// axes returns the squared semi-axes of a w by h box in float32, matching
// the precision used by ellipseOffset.
func axes(w, h int) (as, bs float32) {
	a := float32(w) / 2
	b := float32(h) / 2
	return a * a, b * b
}

// ellipseOffset returns the half-width of the ellipse at row offset i from
// its center: int(sqrt((1 - i²/bs) * as)), truncated toward zero.
// Rows beyond the vertical extent produce 0.
func ellipseOffset(i int, as, bs float32) int {
	q := float32(i*i) / bs
	v := (1.0 - float64(q)) * float64(as)
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int(math.Sqrt(v))
}

// OvalOutline returns the closed point list approximating the ellipse
// inscribed in the box (x, y, w, h).
//
// The list runs down the left boundary, back up the right boundary and
// repeats the first point at the end. Connecting the points with lines gives
// the outline. Returns nil for an empty box.
func OvalOutline(x, y, w, h int) []image.Point {
	if w <= 0 || h <= 0 {
		return nil
	}

	hh := h / 2
	pts := make([]image.Point, 0, (hh+hh+1)*2+1)
	as, bs := axes(w, h)

	for i := -hh; i <= hh; i++ {
		offset := ellipseOffset(i, as, bs)
		pts = append(pts, image.Pt(x-offset+w/2, y+i+hh))
	}
	for i := hh; i >= -hh; i-- {
		offset := ellipseOffset(i, as, bs)
		pts = append(pts, image.Pt(x+offset+w/2, y+i+hh))
	}

	return append(pts, pts[0])
}

// FillOval reports one span per row of the ellipse inscribed in the box
// (x, y, w, h). Each span runs from the left to the right boundary inclusive.
func FillOval(x, y, w, h int, span Span) {
	if w <= 0 || h <= 0 {
		return
	}

	hh := h / 2
	as, bs := axes(w, h)
	for i := -hh; i <= hh; i++ {
		offset := ellipseOffset(i, as, bs)
		startX := x - offset + w/2
		endX := x + offset + w/2
		span(startX, y+i+hh, endX-startX+1)
	}
}

// RoundRectOutline returns the closed point list of a rounded rectangle
// whose corner arcs are quarter ellipses of size aw by ah.
//
// The arcs are visited clockwise starting at the middle of the top-left
// arc; straight edges appear as the gaps between consecutive arc points.
// aw and ah must be positive. Returns nil for an empty box.
func RoundRectOutline(x, y, w, h, aw, ah int) []image.Point {
	if w <= 0 || h <= 0 || aw <= 0 || ah <= 0 {
		return nil
	}

	ha := ah / 2
	pts := make([]image.Point, 0, (ha+1)*4+1)
	as, bs := axes(aw, ah)

	// top-left arc, from its middle up to the top edge
	for i := 0; -ha <= i; i-- {
		offset := ellipseOffset(i, as, bs)
		pts = append(pts, image.Pt(x-offset+aw/2, y+i+ha))
	}
	// top-right arc, down to its middle
	for i := -ha; i <= 0; i++ {
		offset := ellipseOffset(i, as, bs)
		pts = append(pts, image.Pt(x+offset+(w-aw)+aw/2, y+i+ha))
	}
	// bottom-right arc
	for i := 0; i <= ha; i++ {
		offset := ellipseOffset(i, as, bs)
		pts = append(pts, image.Pt(x+offset+(w-aw)+aw/2, y+i+h-ha))
	}
	// bottom-left arc, back up
	for i := ha; i >= 0; i-- {
		offset := ellipseOffset(i, as, bs)
		pts = append(pts, image.Pt(x-offset+aw/2, y+i+h-ha))
	}

	return append(pts, pts[0])
}

// FillRoundRect reports the spans of a filled rounded rectangle with corner
// arcs of size aw by ah: the curved top rows, the straight middle rows and
// the curved bottom rows. aw and ah must be positive.
func FillRoundRect(x, y, w, h, aw, ah int, span Span) {
	if w <= 0 || h <= 0 || aw <= 0 || ah <= 0 {
		return
	}

	ha := ah / 2
	as, bs := axes(aw, ah)

	for i := -ha; i < 0; i++ {
		offset := ellipseOffset(i, as, bs)
		startX := x - offset + aw/2
		endX := x + offset + (w - aw) + aw/2
		span(startX, y+i+ha, endX-startX+1)
	}

	for i := 0; i < h-ah; i++ {
		span(x, y+i+ha, w)
	}

	for i := 0; i <= ha; i++ {
		offset := ellipseOffset(i, as, bs)
		startX := x - offset + aw/2
		endX := x + offset + (w - aw) + aw/2
		span(startX, y+i+h-1-ha, endX-startX+1)
	}
}
