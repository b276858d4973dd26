package input

import (
	"time"

	"github.com/lixenwraith/harvest/component"
)

// HoldState emulates key-up for terminals, which only report presses
// A direction counts as held until hold elapses after its latest press or repeat
type HoldState struct {
	hold    time.Duration
	expires [dirCount]time.Time
}

// NewHoldState creates a tracker with the given hold window
func NewHoldState(hold time.Duration) *HoldState {
	return &HoldState{hold: hold}
}

// Press marks dir held from now
// Pressing a direction releases its opposite, matching a key-up on real keyboards
func (h *HoldState) Press(dir Direction, now time.Time) {
	if dir == DirNone || dir >= dirCount {
		return
	}
	h.expires[dir] = now.Add(h.hold)
	h.expires[opposite(dir)] = time.Time{}
}

// Directions returns the flags still held at now
func (h *HoldState) Directions(now time.Time) component.Directions {
	return component.Directions{
		Left:  h.held(DirLeft, now),
		Right: h.held(DirRight, now),
		Up:    h.held(DirUp, now),
		Down:  h.held(DirDown, now),
	}
}

// Release drops every held direction
func (h *HoldState) Release() {
	h.expires = [dirCount]time.Time{}
}

func (h *HoldState) held(dir Direction, now time.Time) bool {
	return now.Before(h.expires[dir])
}

func opposite(dir Direction) Direction {
	switch dir {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}
