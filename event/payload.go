package event

import "github.com/lixenwraith/harvest/core"

// SessionResetPayload identifies the new session
type SessionResetPayload struct {
	SessionID string
}

// PhaseChangedPayload carries both ends of a transition
type PhaseChangedPayload struct {
	From  core.Phase
	To    core.Phase
	Score int
}

// CropPayload describes a spawned or collected crop
type CropPayload struct {
	Kind   string
	Points int
	X, Y   float64
	Score  int // Session score after the event
}
