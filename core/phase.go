package core

// Phase is the session lifecycle state
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseWin
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	case PhaseWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the phase ends a round
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWin
}
