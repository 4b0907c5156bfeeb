// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"slices"
)

// Edge is a directed polygon boundary segment from (X1, Y1) to (X2, Y2).
type Edge struct {
	X1, Y1 int
	X2, Y2 int
}

// NewEdge creates an edge between two vertices.
func NewEdge(p0, p1 image.Point) Edge {
	return Edge{X1: p0.X, Y1: p0.Y, X2: p1.X, Y2: p1.Y}
}

// Intersects reports whether the scanline at y crosses the edge.
// The edge covers the half-open range [min(Y1,Y2), max(Y1,Y2)); horizontal
// edges never intersect.
func (e Edge) Intersects(y int) bool {
	if e.Y1 == e.Y2 {
		return false
	}
	lo, hi := min(e.Y1, e.Y2), max(e.Y1, e.Y2)
	return y >= lo && y < hi
}

// IntersectionX returns the x-coordinate where the scanline at y crosses
// the edge, by linear interpolation truncated toward zero.
// Only meaningful when Intersects(y) is true.
func (e Edge) IntersectionX(y int) int {
	return e.X1 + (y-e.Y1)*(e.X2-e.X1)/(e.Y2-e.Y1)
}

// EdgeList holds the edges of one closed polygon.
type EdgeList struct {
	edges      []Edge
	minY, maxY int
}

// NewEdgeList builds the edge list of the polygon through pts.
//
// A trailing vertex equal to the first is dropped, then one edge is created
// per consecutive vertex pair plus the closing edge back to the first vertex.
// Returns nil for fewer than three vertices.
func NewEdgeList(pts []image.Point) *EdgeList {
	if len(pts) < 3 {
		return nil
	}

	el := &EdgeList{minY: pts[0].Y, maxY: pts[0].Y}
	for _, p := range pts[1:] {
		el.minY = min(el.minY, p.Y)
		el.maxY = max(el.maxY, p.Y)
	}

	n := len(pts)
	if pts[0] == pts[n-1] {
		n--
	}

	el.edges = make([]Edge, 0, n)
	for i := 0; i < n-1; i++ {
		el.edges = append(el.edges, NewEdge(pts[i], pts[i+1]))
	}
	el.edges = append(el.edges, NewEdge(pts[n-1], pts[0]))

	return el
}

// Len returns the number of edges.
func (el *EdgeList) Len() int {
	return len(el.edges)
}

// Edges returns the underlying slice.
func (el *EdgeList) Edges() []Edge {
	return el.edges
}

// YRange returns the minimum and maximum vertex y-coordinates.
func (el *EdgeList) YRange() (minY, maxY int) {
	return el.minY, el.maxY
}

// Crossings appends to xs the distinct, sorted x-coordinates where the
// scanline at y crosses the polygon and returns the extended slice.
func (el *EdgeList) Crossings(xs []int, y int) []int {
	start := len(xs)
	for _, e := range el.edges {
		if e.Intersects(y) {
			xs = append(xs, e.IntersectionX(y))
		}
	}
	row := xs[start:]
	slices.Sort(row)
	row = slices.Compact(row)
	return xs[:start+len(row)]
}

// FillPolygon scan-converts the polygon through pts with the even-odd rule,
// reporting one span per interior run.
//
// Crossings on a scanline are de-duplicated before pairing. A scanline left
// with an odd number of crossings is treated as belonging to an open or
// malformed polygon and is skipped entirely.
func FillPolygon(pts []image.Point, span Span) {
	el := NewEdgeList(pts)
	if el == nil {
		return
	}

	xs := make([]int, 0, el.Len())
	for y := el.minY; y <= el.maxY; y++ {
		xs = el.Crossings(xs[:0], y)
		if len(xs)%2 != 0 {
			continue
		}
		for i := 0; i < len(xs); i += 2 {
			span(xs[i], y, xs[i+1]-xs[i])
		}
	}
}
