package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBall_Move(t *testing.T) {
	ball := NewBall(10.0, 20.0, "#fff")
	ball.VX = 1.0
	ball.VY = -0.5

	ball.Move()

	assert.Equal(t, 11.0, ball.X)
	assert.Equal(t, 19.5, ball.Y)
}

func TestBall_BounceVertical(t *testing.T) {
	ball := NewBall(10.0, 20.0, "#fff")
	ball.VX = 0.5
	ball.VY = 0.25

	ball.BounceVertical()

	assert.Equal(t, 0.5, ball.VX, "VX must be unchanged")
	assert.Equal(t, -0.25, ball.VY)
}

func TestBall_OutsideVertical(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"middle", 250, false},
		{"touching top", 12, false},
		{"past top", 11, true},
		{"touching bottom", 488, false},
		{"past bottom", 489, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := NewBall(400, tt.y, "#fff")
			assert.Equal(t, tt.want, ball.OutsideVertical(500))
		})
	}
}

func TestBall_ClampVertical(t *testing.T) {
	ball := NewBall(400, -3, "#fff")
	ball.ClampVertical(500)
	assert.Equal(t, BallRadius, ball.Y)

	ball.Y = 510
	ball.ClampVertical(500)
	assert.Equal(t, 500-BallRadius, ball.Y)
}

func TestBall_BounceOffPaddle_Center(t *testing.T) {
	paddle := &Paddle{X: 0, Y: 200, Width: PaddleWidth, Height: PaddleHeight}
	ball := NewBall(20, 250, "#fff")
	ball.VX = -6
	ball.VY = 0

	ball.BounceOffPaddle(paddle)

	assert.Equal(t, 6.0, ball.VX)
	assert.Equal(t, 0.0, ball.VY, "center hit adds no spin")
}

func TestBall_BounceOffPaddle_Spin(t *testing.T) {
	paddle := &Paddle{X: 784, Y: 200, Width: PaddleWidth, Height: PaddleHeight}
	ball := NewBall(775, 290, "#fff")
	ball.VX = 6
	ball.VY = 1

	ball.BounceOffPaddle(paddle)

	assert.Equal(t, -6.0, ball.VX)
	// 40 units below center adds 0.15 * 40
	assert.InDelta(t, 7.0, ball.VY, 1e-9)

	// Spin is not capped: repeated low hits keep adding
	ball.VX = 6
	ball.BounceOffPaddle(paddle)
	assert.InDelta(t, 13.0, ball.VY, 1e-9)
}

func TestBall_Reset(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	seen := make(map[[2]bool]bool)

	for i := 0; i < 200; i++ {
		ball := NewBall(1, 2, "#fff")
		ball.VX = 30
		ball.VY = -90

		ball.Reset(400, 250, rng)

		assert.Equal(t, 400.0, ball.X)
		assert.Equal(t, 250.0, ball.Y)
		assert.InDelta(t, ball.Speed*ball.Speed, ball.Speed2(), 1e-9)
		assert.InDelta(t, ball.Speed/math.Sqrt2, math.Abs(ball.VX), 1e-9)
		assert.InDelta(t, ball.Speed/math.Sqrt2, math.Abs(ball.VY), 1e-9)

		seen[[2]bool{ball.VX > 0, ball.VY > 0}] = true
	}

	assert.Len(t, seen, 4, "all four diagonal directions should occur")
}
