// Package view holds the read-only snapshot of a game frame handed to the
// render step. Everything here is a plain value; holding a Frame never
// gives access to the live game state.
package view

// PaddleView is a paddle's geometry and color at the time of the snapshot
type PaddleView struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  string
}

// Bounds returns the paddle rectangle as (left, top, right, bottom)
func (p PaddleView) Bounds() (float64, float64, float64, float64) {
	return p.X, p.Y, p.X + p.Width, p.Y + p.Height
}

// BallView represents the ball's position and size
type BallView struct {
	X      float64
	Y      float64
	Radius float64
	Color  string
}

// Contains reports whether the point lies inside the ball's disc
func (b BallView) Contains(x, y float64) bool {
	dx := x - b.X
	dy := y - b.Y
	return dx*dx+dy*dy <= b.Radius*b.Radius
}

// Frame represents everything the renderer needs for one refresh
type Frame struct {
	Tick          int
	Left          PaddleView
	Right         PaddleView
	Ball          BallView
	LeftScore     int
	RightScore    int
	SurfaceWidth  int
	SurfaceHeight int
}
