package game

const (
	OpponentDeadzone = 3.0
	OpponentStep     = 4.0
)

// Track moves the paddle one fixed step toward centering itself on ballY.
// There is no trajectory prediction, so a fast ball can outrun it.
func Track(p *Paddle, ballY float64, surfaceHeight int) {
	target := ballY - p.Height/2
	dy := target - p.Y
	if dy > OpponentDeadzone {
		p.Y += OpponentStep
	} else if dy < -OpponentDeadzone {
		p.Y -= OpponentStep
	}
	p.Clamp(surfaceHeight)
}
