package runner

// Update advances the player's vertical state by one frame.
// Jumps start only from rest on the ground; gravity is a per-frame constant.
func (p *Player) Update(in Input, groundLine float64) {
	if p.Grounded && p.DY == 0 && in.Jump {
		p.DY = -p.JumpStrength
		p.Grounded = false
	}

	p.DY += p.Gravity
	p.Y += p.DY

	// Land
	if p.Y+p.Height > groundLine {
		p.Y = groundLine - p.Height
		p.DY = 0
		p.Grounded = true
	}
}

// scroll moves every obstacle left by speed.
func scroll(obstacles []Obstacle, speed float64) {
	for i := range obstacles {
		obstacles[i].X -= speed
	}
}
