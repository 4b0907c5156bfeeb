package clip

// Resolve computes the effective clip of a rendering context.
//
// user is the caller's clip and constraint the externally imposed
// sub-region, both in absolute surface coordinates; either may be nil.
// The result is user ∩ constraint ∩ bounds, where a nil rectangle stands
// for bounds. It may be empty, in which case nothing is drawable.
func Resolve(user, constraint *Rect, bounds Rect) Rect {
	r := bounds
	if constraint != nil {
		r = r.Intersect(*constraint)
	}
	if user != nil {
		r = r.Intersect(*user)
	}
	if r.Empty() {
		return Rect{X: r.X, Y: r.Y}
	}
	return r
}

// Constrain narrows an existing constraint by a rectangle given relative to
// that constraint's origin. A nil current constraint stands for bounds.
//
// The returned rectangle is in absolute coordinates; its top-left is the new
// origin of the constrained context.
func Constrain(current *Rect, bounds Rect, x, y, w, h int) Rect {
	base := bounds
	if current != nil {
		base = *current
	}
	return base.Intersect(Rect{X: base.X + x, Y: base.Y + y, W: w, H: h})
}
