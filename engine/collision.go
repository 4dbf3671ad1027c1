package engine

// Collides reports whether the player overlaps any obstacle, stopping at the first hit
func Collides(p Player, obstacles []Obstacle) bool {
	for i := range obstacles {
		if p.Intersects(obstacles[i].Rect) {
			return true
		}
	}
	return false
}
