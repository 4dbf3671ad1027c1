// Package vmath provides world-space geometry for entities and UI hit tests
package vmath

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
