package event

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventSessionReset signals a fresh session (new farmer, crops cleared)
	// Trigger: Session.Reset, Session.Start
	// Consumer: logging | Payload: *SessionResetPayload
	EventSessionReset EventType = iota

	// EventPhaseChanged signals a phase transition
	// Trigger: Start, TogglePause, Reset, timer expiry, goal reached
	// Consumer: SoundManager, logging | Payload: *PhaseChangedPayload
	EventPhaseChanged

	// EventCropSpawned signals a new crop on the field
	// Trigger: spawn step of Session.Update
	// Consumer: metrics | Payload: *CropPayload
	EventCropSpawned

	// EventCropCollected signals a crop picked up by the farmer
	// Trigger: collection step of Session.Update
	// Consumer: SoundManager | Payload: *CropPayload
	EventCropCollected

	// EventFarmerBlocked signals a move rejected by an obstacle
	// Trigger: movement step of Session.Update | Payload: nil
	EventFarmerBlocked
)

// String returns the event name
func (t EventType) String() string {
	switch t {
	case EventSessionReset:
		return "SessionReset"
	case EventPhaseChanged:
		return "PhaseChanged"
	case EventCropSpawned:
		return "CropSpawned"
	case EventCropCollected:
		return "CropCollected"
	case EventFarmerBlocked:
		return "FarmerBlocked"
	default:
		return "Unknown"
	}
}

// GameEvent is one queued occurrence
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64
	Timestamp time.Time
}
