package runner

// Collides reports whether the margin-shrunk boxes of p and o overlap.
func Collides(p Player, o Obstacle) bool {
	return p.Hitbox().Intersects(o.Hitbox())
}

// firstHit returns the index of the first obstacle colliding with p.
// Later obstacles are not examined once a hit is found.
func firstHit(p Player, obstacles []Obstacle) (int, bool) {
	for i, o := range obstacles {
		if Collides(p, o) {
			return i, true
		}
	}
	return -1, false
}
