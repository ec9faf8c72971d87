package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToNudge(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		rune rune
		want float64
	}{
		{tcell.KeyUp, 0, -KeyboardStep},
		{tcell.KeyDown, 0, KeyboardStep},
		{tcell.KeyRune, 'w', -KeyboardStep},
		{tcell.KeyRune, 'W', -KeyboardStep},
		{tcell.KeyRune, 's', KeyboardStep},
		{tcell.KeyRune, 'S', KeyboardStep},
		{tcell.KeyRune, 'x', 0},
		{tcell.KeyEnter, 0, 0},
	}

	for _, tt := range tests {
		got := KeyToNudge(tt.key, tt.rune)
		if got != tt.want {
			t.Errorf("KeyToNudge(%v, %c) = %v, want %v", tt.key, tt.rune, got, tt.want)
		}
	}
}

func TestIsQuitKey(t *testing.T) {
	if !IsQuitKey(tcell.KeyRune, 'q') {
		t.Error("'q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyRune, 'Q') {
		t.Error("'Q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyEscape, 0) {
		t.Error("Escape should be quit key")
	}
	if !IsQuitKey(tcell.KeyCtrlC, 0) {
		t.Error("Ctrl+C should be quit key")
	}
	if IsQuitKey(tcell.KeyRune, 'x') {
		t.Error("'x' should not be quit key")
	}
}

func TestPointerToSurfaceY(t *testing.T) {
	vp := NewViewport(80, 24, 800, 500)

	ev := tcell.NewEventMouse(10, 12, tcell.ButtonNone, tcell.ModNone)
	got := PointerToSurfaceY(ev, vp)

	want := 11.5 / (22.0 / 500.0)
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected y=%f, got %f", want, got)
	}
}

func TestPointerToSurfaceY_OutsideCourt(t *testing.T) {
	vp := NewViewport(80, 24, 800, 500)

	top := PointerToSurfaceY(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone), vp)
	if top >= 0 {
		t.Errorf("scoreboard row should map above the court, got %f", top)
	}

	bottom := PointerToSurfaceY(tcell.NewEventMouse(0, 23, tcell.ButtonNone, tcell.ModNone), vp)
	if bottom <= 500 {
		t.Errorf("status row should map below the court, got %f", bottom)
	}
}
