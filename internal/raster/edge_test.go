// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"slices"
	"testing"
)

type span struct{ x, y, n int }

func collectPolygon(pts []image.Point) []span {
	var spans []span
	FillPolygon(pts, func(x, y, n int) {
		spans = append(spans, span{x, y, n})
	})
	return spans
}

func TestEdgeIntersects(t *testing.T) {
	tests := []struct {
		name string
		edge Edge
		y    int
		want bool
	}{
		{"horizontal never", Edge{0, 5, 10, 5}, 5, false},
		{"top inclusive", Edge{0, 0, 0, 10}, 0, true},
		{"bottom exclusive", Edge{0, 0, 0, 10}, 10, false},
		{"upward edge", Edge{0, 10, 0, 0}, 3, true},
		{"above", Edge{0, 2, 4, 6}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.edge.Intersects(tt.y); got != tt.want {
				t.Errorf("Intersects(%d) = %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}

func TestEdgeIntersectionX(t *testing.T) {
	e := Edge{X1: 10, Y1: 0, X2: 0, Y2: 10}
	for y := 0; y < 10; y++ {
		if got := e.IntersectionX(y); got != 10-y {
			t.Errorf("IntersectionX(%d) = %d, want %d", y, got, 10-y)
		}
	}

	// Truncation toward zero on a shallow slope.
	e = Edge{X1: 0, Y1: 0, X2: 3, Y2: 2}
	if got := e.IntersectionX(1); got != 1 {
		t.Errorf("IntersectionX(1) = %d, want 1", got)
	}
}

func TestNewEdgeList(t *testing.T) {
	square := []image.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	el := NewEdgeList(square)
	if el.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", el.Len())
	}
	if last := el.Edges()[3]; last != (Edge{0, 10, 0, 0}) {
		t.Errorf("closing edge = %+v", last)
	}

	closed := append(slices.Clone(square), image.Pt(0, 0))
	if got := NewEdgeList(closed).Len(); got != 4 {
		t.Errorf("duplicate closing vertex: Len() = %d, want 4", got)
	}

	if NewEdgeList(square[:2]) != nil {
		t.Error("NewEdgeList with 2 points should be nil")
	}

	minY, maxY := el.YRange()
	if minY != 0 || maxY != 10 {
		t.Errorf("YRange() = (%d, %d), want (0, 10)", minY, maxY)
	}
}

func TestFillPolygonSquare(t *testing.T) {
	spans := collectPolygon([]image.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	if len(spans) != 10 {
		t.Fatalf("got %d spans, want 10: %v", len(spans), spans)
	}
	for i, s := range spans {
		if s != (span{0, i, 10}) {
			t.Errorf("span %d = %+v, want {0 %d 10}", i, s, i)
		}
	}
}

func TestFillPolygonTriangle(t *testing.T) {
	spans := collectPolygon([]image.Point{{0, 0}, {10, 0}, {0, 10}})
	if len(spans) != 10 {
		t.Fatalf("got %d spans, want 10", len(spans))
	}
	for i, s := range spans {
		if s != (span{0, i, 10 - i}) {
			t.Errorf("span %d = %+v, want {0 %d %d}", i, s, i, 10-i)
		}
	}
}

func TestFillPolygonDegenerate(t *testing.T) {
	tests := []struct {
		name string
		pts  []image.Point
	}{
		{"empty", nil},
		{"one point", []image.Point{{1, 1}}},
		{"two points", []image.Point{{0, 0}, {5, 5}}},
		{"horizontal line", []image.Point{{0, 3}, {5, 3}, {9, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range collectPolygon(tt.pts) {
				if s.n > 0 {
					t.Errorf("unexpected span %+v", s)
				}
			}
		})
	}
}

func TestFillPolygonConcave(t *testing.T) {
	// A "U" shape: two prongs joined at the bottom.
	u := []image.Point{{0, 0}, {3, 0}, {3, 5}, {6, 5}, {6, 0}, {9, 0}, {9, 8}, {0, 8}}
	spans := collectPolygon(u)

	var prongRows int
	for _, s := range spans {
		if s.y < 5 {
			prongRows++
			if s != (span{0, s.y, 3}) && s != (span{6, s.y, 3}) {
				t.Errorf("prong span %+v", s)
			}
		}
	}
	if prongRows != 10 {
		t.Errorf("prong spans = %d, want 10", prongRows)
	}
}

func TestFillPolygonOddCrossingsSkipRow(t *testing.T) {
	// The inner vertex (5,3) leaves {0, 5, 10} at y=3 after de-duplication.
	spans := collectPolygon([]image.Point{{0, 0}, {10, 0}, {10, 10}, {5, 3}, {0, 10}})

	rows := map[int][]span{}
	for _, s := range spans {
		rows[s.y] = append(rows[s.y], s)
	}

	if got := rows[3]; len(got) != 0 {
		t.Errorf("row 3 = %v, want skipped", got)
	}
	for y := 0; y < 3; y++ {
		if got := rows[y]; len(got) != 1 || got[0] != (span{0, y, 10}) {
			t.Errorf("row %d = %v, want one full span", y, got)
		}
	}
	want := []span{{0, 4, 5}, {6, 4, 4}}
	if got := rows[4]; !slices.Equal(got, want) {
		t.Errorf("row 4 = %v, want %v", got, want)
	}
}
