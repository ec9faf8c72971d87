package game

import "golang.org/x/exp/constraints"

const (
	PaddleWidth  = 16.0
	PaddleHeight = 100.0
)

// Paddle is an axis-aligned rectangle anchored at its top-left corner
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Color         string
}

// NewPaddle creates a paddle at column x, vertically centered on the surface
func NewPaddle(x float64, surfaceHeight int, color string) *Paddle {
	return &Paddle{
		X:      x,
		Y:      float64(surfaceHeight)/2 - PaddleHeight/2,
		Width:  PaddleWidth,
		Height: PaddleHeight,
		Color:  color,
	}
}

func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

func (p *Paddle) Right() float64 {
	return p.X + p.Width
}

func (p *Paddle) Bottom() float64 {
	return p.Y + p.Height
}

// Clamp keeps the paddle fully inside [0, surfaceHeight]
func (p *Paddle) Clamp(surfaceHeight int) {
	p.Y = clamp(p.Y, 0, float64(surfaceHeight)-p.Height)
}

// SetCenter positions the paddle so its vertical center is at y, clamped
func (p *Paddle) SetCenter(y float64, surfaceHeight int) {
	p.Y = y - p.Height/2
	p.Clamp(surfaceHeight)
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
