package game

import (
	"math"
	"math/rand"
)

const (
	BallRadius = 12.0
	BallSpeed  = 6.0
	SpinFactor = 0.15 // vy gained per unit of off-center hit
)

type Ball struct {
	X, Y   float64
	Radius float64
	Speed  float64
	VX, VY float64
	Color  string
}

func NewBall(x, y float64, color string) *Ball {
	return &Ball{
		X:      x,
		Y:      y,
		Radius: BallRadius,
		Speed:  BallSpeed,
		Color:  color,
	}
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceVertical reverses vertical direction (wall bounce)
func (b *Ball) BounceVertical() {
	b.VY = -b.VY
}

// OutsideVertical reports whether the ball pokes past the top or bottom wall
func (b *Ball) OutsideVertical(surfaceHeight int) bool {
	return b.Y-b.Radius < 0 || b.Y+b.Radius > float64(surfaceHeight)
}

// ClampVertical pulls the ball center back to [radius, surfaceHeight-radius]
func (b *Ball) ClampVertical(surfaceHeight int) {
	b.Y = clamp(b.Y, b.Radius, float64(surfaceHeight)-b.Radius)
}

// BounceOffPaddle reverses horizontal direction and adds spin proportional
// to how far from the paddle's center the ball struck. Spin is not capped.
func (b *Ball) BounceOffPaddle(p *Paddle) {
	b.VX = -b.VX
	b.VY += SpinFactor * (b.Y - p.CenterY())
}

// Speed2 returns the squared magnitude of the velocity
func (b *Ball) Speed2() float64 {
	return b.VX*b.VX + b.VY*b.VY
}

// Reset places the ball at the given center and launches it diagonally with
// magnitude Speed, choosing the sign of each axis independently.
func (b *Ball) Reset(centerX, centerY float64, rng *rand.Rand) {
	b.X = centerX
	b.Y = centerY

	component := b.Speed / math.Sqrt2
	b.VX = component * randomSign(rng)
	b.VY = component * randomSign(rng)
}

func randomSign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
