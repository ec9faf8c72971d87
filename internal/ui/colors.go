package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// HexColor converts a "#rrggbb" tag into a true-color tcell color.
// Tags that do not parse fall back to white.
func HexColor(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorWhite
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// HexStyle returns a style drawing in the given color on a black court
func HexStyle(hex string) tcell.Style {
	return tcell.StyleDefault.Foreground(HexColor(hex)).Background(tcell.ColorBlack)
}
