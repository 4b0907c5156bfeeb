package overlay

import "slices"

// maxDirtyRects bounds the rectangle list of a DirtyRegion. Past it the list
// collapses to its bounding box.
const maxDirtyRects = 64

// DirtyRegion accumulates the union of the rectangles written since it was
// last consumed.
//
// The union is kept as a short list of rectangles. Rectangles contained in
// another are dropped, and rectangles sharing a full edge are merged, so the
// rows of a filled area collapse into one rectangle. The region may grow to
// a superset of the written pixels, never a subset.
//
// The drawing engine only ever adds to the region. Consuming it with
// GetAndClear or Clear is the job of a presentation layer.
//
// DirtyRegion is not safe for concurrent use.
type DirtyRegion struct {
	rects []Rect
}

// MarkRect adds the rectangle (x, y, w, h).
func (d *DirtyRegion) MarkRect(x, y, w, h int) {
	d.Add(Rect{X: x, Y: y, W: w, H: h})
}

// Add unions r into the region. Empty rectangles are ignored.
func (d *DirtyRegion) Add(r Rect) {
	if r.Empty() {
		return
	}
	for _, e := range d.rects {
		if e.ContainsRect(r) {
			return
		}
	}

	for {
		i := d.mergeable(r)
		if i < 0 {
			break
		}
		r = r.Union(d.rects[i])
		d.rects = slices.Delete(d.rects, i, i+1)
	}
	d.rects = slices.DeleteFunc(d.rects, r.ContainsRect)
	d.rects = append(d.rects, r)

	if len(d.rects) > maxDirtyRects {
		b := d.Bounds()
		d.rects = append(d.rects[:0], b)
	}
}

// mergeable returns the index of a rectangle whose union with r is exactly
// their combined area, or -1.
func (d *DirtyRegion) mergeable(r Rect) int {
	for i, e := range d.rects {
		if e.X == r.X && e.W == r.W && e.Bottom() >= r.Y && r.Bottom() >= e.Y {
			return i
		}
		if e.Y == r.Y && e.H == r.H && e.Right() >= r.X && r.Right() >= e.X {
			return i
		}
	}
	return -1
}

// IsEmpty reports whether nothing has been marked.
func (d *DirtyRegion) IsEmpty() bool {
	return len(d.rects) == 0
}

// Bounds returns the bounding box of the region, or an empty Rect.
func (d *DirtyRegion) Bounds() Rect {
	var b Rect
	for _, r := range d.rects {
		b = b.Union(r)
	}
	return b
}

// Contains reports whether pixel (x, y) lies in the region.
func (d *DirtyRegion) Contains(x, y int) bool {
	for _, r := range d.rects {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// Rects returns a copy of the rectangle list.
func (d *DirtyRegion) Rects() []Rect {
	return slices.Clone(d.rects)
}

// ForEach calls fn for every rectangle in the region.
func (d *DirtyRegion) ForEach(fn func(Rect)) {
	for _, r := range d.rects {
		fn(r)
	}
}

// GetAndClear returns the rectangle list and empties the region.
func (d *DirtyRegion) GetAndClear() []Rect {
	rects := d.rects
	d.rects = nil
	return rects
}

// Clear empties the region.
func (d *DirtyRegion) Clear() {
	d.rects = d.rects[:0]
}
