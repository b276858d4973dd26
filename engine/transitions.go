package engine

import (
	"slices"

	"github.com/lixenwraith/harvest/core"
)

// validTransitions lists every phase change the session may perform
// Reset reaches Menu from anywhere, including Menu itself
var validTransitions = map[core.Phase][]core.Phase{
	core.PhaseMenu:     {core.PhasePlaying, core.PhaseMenu},
	core.PhasePlaying:  {core.PhasePaused, core.PhaseGameOver, core.PhaseWin, core.PhaseMenu},
	core.PhasePaused:   {core.PhasePlaying, core.PhaseMenu},
	core.PhaseGameOver: {core.PhasePlaying, core.PhaseMenu},
	core.PhaseWin:      {core.PhasePlaying, core.PhaseMenu},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to core.Phase) bool {
	return slices.Contains(validTransitions[from], to)
}

// canStart reports whether Start begins a fresh round from phase p
// Paused resumes only through TogglePause
func canStart(p core.Phase) bool {
	return p == core.PhaseMenu || p.Terminal()
}
