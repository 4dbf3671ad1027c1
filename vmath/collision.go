package vmath

// Intersects reports whether r and o overlap on both axes
// Ranges are closed, so rectangles sharing an edge intersect
func (r Rect) Intersects(o Rect) bool {
	if r.X > o.Right() || o.X > r.Right() {
		return false
	}
	if r.Y > o.Bottom() || o.Y > r.Bottom() {
		return false
	}
	return true
}
