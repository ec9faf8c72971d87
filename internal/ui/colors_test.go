package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestHexColor(t *testing.T) {
	assert.Equal(t, tcell.NewRGBColor(26, 188, 156), HexColor("#1abc9c"))
	assert.Equal(t, tcell.NewRGBColor(231, 76, 60), HexColor("#e74c3c"))
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), HexColor("#ffffff"))
}

func TestHexColor_Invalid(t *testing.T) {
	assert.Equal(t, tcell.ColorWhite, HexColor("chartreuse"))
	assert.Equal(t, tcell.ColorWhite, HexColor(""))
}

func TestHexStyle(t *testing.T) {
	want := tcell.StyleDefault.Foreground(tcell.NewRGBColor(187, 187, 187)).Background(tcell.ColorBlack)
	assert.Equal(t, want, HexStyle("#bbbbbb"))
}
