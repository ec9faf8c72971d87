package game

// Collides reports whether the ball's bounding square overlaps the paddle.
// Touching edges count as overlap. A ball fast enough to cross the whole
// paddle within one step is not detected.
func Collides(b Ball, p Paddle) bool {
	return b.X-b.Radius <= p.Right() &&
		b.X+b.Radius >= p.X &&
		b.Y-b.Radius <= p.Bottom() &&
		b.Y+b.Radius >= p.Y
}
