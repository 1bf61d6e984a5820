package game

// Body is the player's vertical physics state. Horizontal position is fixed,
// so only Y and vertical velocity integrate.
type Body struct {
	Y   float64 // Vertical position of the sprite center, field units
	Vel float64 // Vertical velocity, units/s (positive = down)
}

// Integrate advances the body by dt seconds under constant gravity.
// Callers guard dt == 0; a zero tick never reaches here.
func (b *Body) Integrate(dt, gravity float64) {
	b.Vel += gravity * dt
	b.Y += b.Vel * dt
}

// Impulse sets the vertical velocity to jumpForce. The set is absolute, not
// additive: flapping repeatedly does not stack impulses.
func (b *Body) Impulse(jumpForce float64) {
	b.Vel = jumpForce
}
