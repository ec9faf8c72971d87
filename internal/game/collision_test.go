package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollides(t *testing.T) {
	paddle := Paddle{X: 100, Y: 200, Width: 16, Height: 100}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 108, 250, true},
		{"touching right edge", 128, 250, true},
		{"touching left edge", 88, 250, true},
		{"touching top edge", 108, 188, true},
		{"touching bottom edge", 108, 312, true},
		{"touching corner", 128, 188, true},
		{"just right", 128.01, 250, false},
		{"just left", 87.99, 250, false},
		{"just above", 108, 187.99, false},
		{"just below", 108, 312.01, false},
		{"far away", 400, 250, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := Ball{X: tt.x, Y: tt.y, Radius: 12}
			assert.Equal(t, tt.want, Collides(ball, paddle))
		})
	}
}

func TestCollides_IsPure(t *testing.T) {
	paddle := Paddle{X: 0, Y: 0, Width: 16, Height: 100}
	ball := Ball{X: 10, Y: 10, Radius: 12, VX: -3, VY: 2}

	Collides(ball, paddle)

	assert.Equal(t, Paddle{X: 0, Y: 0, Width: 16, Height: 100}, paddle)
	assert.Equal(t, Ball{X: 10, Y: 10, Radius: 12, VX: -3, VY: 2}, ball)
}
