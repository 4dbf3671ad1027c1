package vmath

// Rect is an axis-aligned rectangle in world pixels, origin at the top-left
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle from integer geometry
func NewRect(x, y, w, h int) Rect {
	return Rect{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)}
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Contains reports whether the point lies inside r, edges included
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}
