package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundCollect  SoundType = iota // Crop pickup, pitched by points
	SoundWin                       // Goal reached
	SoundGameOver                  // Time ran out below goal
	SoundPause                     // Pause toggled either way
	soundTypeCount
)

// String returns the key used for per-effect volumes in config
func (s SoundType) String() string {
	switch s {
	case SoundCollect:
		return "collect"
	case SoundWin:
		return "win"
	case SoundGameOver:
		return "gameover"
	case SoundPause:
		return "pause"
	default:
		return "unknown"
	}
}

// ErrSpeakerUnavailable wraps speaker initialisation failures
var ErrSpeakerUnavailable = errors.New("speaker unavailable")
