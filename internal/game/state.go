package game

import (
	"math/rand"
	"time"

	"github.com/diegok/mousepong/internal/view"
)

// Default color tags, opaque to the simulation
const (
	DefaultLeftColor  = "#1abc9c"
	DefaultRightColor = "#e74c3c"
	DefaultBallColor  = "#ffffff"
)

// Events records what happened during a single Update
type Events uint8

const (
	EventWallBounce Events = 1 << iota
	EventPaddleHit
	EventLeftScored
	EventRightScored
)

// Has reports whether all bits of f are set
func (e Events) Has(f Events) bool {
	return e&f == f
}

// ScoreFunc receives both scores after every point
type ScoreFunc func(left, right int)

// GameState manages the complete game state. It is owned by a single
// goroutine; nothing in it is safe for concurrent use.
type GameState struct {
	Width      int
	Height     int
	Left       *Paddle
	Right      *Paddle
	Ball       *Ball
	LeftScore  int
	RightScore int
	Tick       int

	rng     *rand.Rand
	onScore ScoreFunc
}

// NewGameState creates a new game with both paddles and the ball centered.
// A nil rng falls back to a time-seeded source.
func NewGameState(width, height int, rng *rand.Rand) *GameState {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	gs := &GameState{
		Width:  width,
		Height: height,
		Left:   NewPaddle(0, height, DefaultLeftColor),
		Right:  NewPaddle(float64(width)-PaddleWidth, height, DefaultRightColor),
		Ball:   NewBall(float64(width)/2, float64(height)/2, DefaultBallColor),
		rng:    rng,
	}
	gs.resetBall()
	return gs
}

// SetColors replaces the display tags of both paddles and the ball
func (gs *GameState) SetColors(left, right, ball string) {
	gs.Left.Color = left
	gs.Right.Color = right
	gs.Ball.Color = ball
}

// OnScore registers the score display callback
func (gs *GameState) OnScore(fn ScoreFunc) {
	gs.onScore = fn
}

// MovePlayer places the player's paddle so its center sits at y
func (gs *GameState) MovePlayer(y float64) {
	gs.Left.SetCenter(y, gs.Height)
}

// NudgePlayer shifts the player's paddle center by dy
func (gs *GameState) NudgePlayer(dy float64) {
	gs.MovePlayer(gs.Left.CenterY() + dy)
}

// Update runs one game tick
func (gs *GameState) Update() Events {
	var ev Events
	gs.Tick++

	b := gs.Ball
	b.Move()

	if b.OutsideVertical(gs.Height) {
		b.BounceVertical()
		b.ClampVertical(gs.Height)
		ev |= EventWallBounce
	}

	// Only the paddle the ball is travelling toward can be hit
	if b.VX < 0 && Collides(*b, *gs.Left) {
		b.BounceOffPaddle(gs.Left)
		ev |= EventPaddleHit
	} else if b.VX > 0 && Collides(*b, *gs.Right) {
		b.BounceOffPaddle(gs.Right)
		ev |= EventPaddleHit
	}

	ev |= gs.checkScore()

	Track(gs.Right, b.Y, gs.Height)

	return ev
}

// checkScore awards a point when the ball leaves the court horizontally
func (gs *GameState) checkScore() Events {
	var ev Events

	// Ball past left edge - right side scores
	if gs.Ball.X-gs.Ball.Radius < 0 {
		gs.RightScore++
		gs.notifyScore()
		gs.resetBall()
		ev |= EventRightScored
	}

	// Ball past right edge - left side scores
	if gs.Ball.X+gs.Ball.Radius > float64(gs.Width) {
		gs.LeftScore++
		gs.notifyScore()
		gs.resetBall()
		ev |= EventLeftScored
	}

	return ev
}

func (gs *GameState) notifyScore() {
	if gs.onScore != nil {
		gs.onScore(gs.LeftScore, gs.RightScore)
	}
}

func (gs *GameState) resetBall() {
	gs.Ball.Reset(float64(gs.Width)/2, float64(gs.Height)/2, gs.rng)
}

// Snapshot copies the current state into a value the renderer can hold
func (gs *GameState) Snapshot() view.Frame {
	return view.Frame{
		Tick:          gs.Tick,
		Left:          paddleView(gs.Left),
		Right:         paddleView(gs.Right),
		Ball:          view.BallView{X: gs.Ball.X, Y: gs.Ball.Y, Radius: gs.Ball.Radius, Color: gs.Ball.Color},
		LeftScore:     gs.LeftScore,
		RightScore:    gs.RightScore,
		SurfaceWidth:  gs.Width,
		SurfaceHeight: gs.Height,
	}
}

func paddleView(p *Paddle) view.PaddleView {
	return view.PaddleView{
		X:      p.X,
		Y:      p.Y,
		Width:  p.Width,
		Height: p.Height,
		Color:  p.Color,
	}
}
