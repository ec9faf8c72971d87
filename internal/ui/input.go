package ui

import (
	"github.com/gdamore/tcell/v2"
)

// KeyboardStep is how far one key press moves the player paddle center
const KeyboardStep = 25.0

// KeyToNudge converts a key event to a vertical paddle offset, or 0
func KeyToNudge(key tcell.Key, r rune) float64 {
	switch key {
	case tcell.KeyUp:
		return -KeyboardStep
	case tcell.KeyDown:
		return KeyboardStep
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return -KeyboardStep
		case 's', 'S':
			return KeyboardStep
		}
	}
	return 0
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// PointerToSurfaceY converts a mouse event into a court y coordinate
func PointerToSurfaceY(ev *tcell.EventMouse, vp Viewport) float64 {
	_, row := ev.Position()
	return vp.SurfaceY(row)
}
