package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/mousepong/internal/config"
	"github.com/diegok/mousepong/internal/view"
)

const (
	BallChar   = '\u25CF' // ●
	PaddleChar = '\u2588' // █
	NetChar    = '\u2502' // │
)

// Renderer draws game frames. It only ever reads the snapshot it is given.
type Renderer struct {
	screen *Screen
	theme  config.Theme
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen, theme config.Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Viewport returns the mapping for the current terminal size
func (r *Renderer) Viewport(frame view.Frame) Viewport {
	w, h := r.screen.Size()
	return NewViewport(w, h, frame.SurfaceWidth, frame.SurfaceHeight)
}

// RenderGame displays the game screen
func (r *Renderer) RenderGame(frame view.Frame, board *Scoreboard) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	vp := NewViewport(screenW, screenH, frame.SurfaceWidth, frame.SurfaceHeight)

	// Draw court background (black)
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, courtTop, screenW, vp.Rows, courtStyle, ' ')

	r.renderNet(vp, frame.SurfaceWidth)

	r.renderPaddle(vp, frame.Left)
	r.renderPaddle(vp, frame.Right)
	r.renderBall(vp, frame.Ball)

	r.renderScoreboard(board, screenW)

	// Status bar at bottom
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, statusY, screenW, 1, statusStyle, ' ')
	statusText := fmt.Sprintf(" Tick: %d | Move the mouse to play | 'q' quits", frame.Tick)
	r.screen.DrawText(0, statusY, statusText, statusStyle)

	r.screen.Show()
}

// renderNet draws the dashed center line, one dash every other row
func (r *Renderer) renderNet(vp Viewport, surfaceW int) {
	centerX := vp.Col(float64(surfaceW) / 2)
	style := HexStyle(r.theme.Net)
	for row := courtTop; row < courtTop+vp.Rows; row += 2 {
		r.screen.SetCell(centerX, row, style, NetChar)
	}
}

// renderPaddle fills every cell the paddle rectangle touches
func (r *Renderer) renderPaddle(vp Viewport, p view.PaddleView) {
	left, top, right, bottom := p.Bounds()
	col0, col1 := vp.ColSpan(left, right)
	row0, row1 := vp.RowSpan(top, bottom)

	style := HexStyle(p.Color)
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if vp.InCourt(col, row) {
				r.screen.SetCell(col, row, style, PaddleChar)
			}
		}
	}
}

// renderBall fills the cells whose centers fall inside the ball's disc,
// falling back to the single cell under the ball's center
func (r *Renderer) renderBall(vp Viewport, b view.BallView) {
	style := HexStyle(b.Color)
	col0, col1 := vp.Col(b.X-b.Radius), vp.Col(b.X+b.Radius)
	row0, row1 := vp.Row(b.Y-b.Radius), vp.Row(b.Y+b.Radius)

	drawn := false
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			x, y := vp.CellCenter(col, row)
			if b.Contains(x, y) && vp.InCourt(col, row) {
				r.screen.SetCell(col, row, style, PaddleChar)
				drawn = true
			}
		}
	}

	if !drawn {
		col, row := vp.Col(b.X), vp.Row(b.Y)
		if vp.InCourt(col, row) {
			r.screen.SetCell(col, row, style, BallChar)
		}
	}
}

// renderScoreboard draws the score at top center, flashing the side that
// just scored
func (r *Renderer) renderScoreboard(board *Scoreboard, screenW int) {
	text := board.Text()
	x := (screenW - len(text)) / 2

	base := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	r.screen.FillRect(0, 0, screenW, 1, tcell.StyleDefault.Background(tcell.ColorDarkGray), ' ')
	r.screen.DrawText(x, 0, text, base)

	leftHot, rightHot := board.Highlighted()
	flash := base.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)

	leftLabel := fmt.Sprintf("LEFT %d", board.Left)
	rightLabel := fmt.Sprintf("%d RIGHT", board.Right)
	if leftHot {
		r.screen.DrawText(x+2, 0, leftLabel, flash)
	}
	if rightHot {
		r.screen.DrawText(x+len(text)-2-len(rightLabel), 0, rightLabel, flash)
	}
}
