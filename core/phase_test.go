package core

import "testing"

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseMenu, "Menu"},
		{PhasePlaying, "Playing"},
		{PhasePaused, "Paused"},
		{PhaseGameOver, "GameOver"},
		{PhaseWin, "Win"},
		{Phase(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.phase.String(); got != tt.expected {
				t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.expected)
			}
		})
	}
}

func TestPhaseTerminal(t *testing.T) {
	for _, p := range []Phase{PhaseMenu, PhasePlaying, PhasePaused} {
		if p.Terminal() {
			t.Errorf("%v should not be terminal", p)
		}
	}
	for _, p := range []Phase{PhaseGameOver, PhaseWin} {
		if !p.Terminal() {
			t.Errorf("%v should be terminal", p)
		}
	}
}
