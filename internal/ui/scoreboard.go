package ui

import "fmt"

// ScoreFlashFrames is how long the scoring side stays highlighted
const ScoreFlashFrames = 30

// Scoreboard is the score display. The game notifies it on every point.
type Scoreboard struct {
	Left, Right int

	flash     int
	leftFlash bool
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

// SetScore records a new score and highlights whichever side gained
func (s *Scoreboard) SetScore(left, right int) {
	s.leftFlash = left > s.Left
	if left > s.Left || right > s.Right {
		s.flash = ScoreFlashFrames
	}
	s.Left = left
	s.Right = right
}

// Tick advances the highlight countdown by one frame
func (s *Scoreboard) Tick() {
	if s.flash > 0 {
		s.flash--
	}
}

// Highlighted reports which side, if any, is currently flashing
func (s *Scoreboard) Highlighted() (left, right bool) {
	if s.flash == 0 {
		return false, false
	}
	return s.leftFlash, !s.leftFlash
}

func (s *Scoreboard) Text() string {
	return fmt.Sprintf("[ LEFT %d - %d RIGHT ]", s.Left, s.Right)
}
