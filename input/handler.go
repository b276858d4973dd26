package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/harvest/component"
)

// Handler translates tcell events into actions and held directions
// HandleEvent runs on the event goroutine while the frame driver polls
// Directions and TakePause, so state is mutex guarded
type Handler struct {
	mu           sync.Mutex
	table        *KeyTable
	hold         *HoldState
	pausePending bool
}

// NewHandler creates a handler over table; nil selects DefaultKeyTable
func NewHandler(table *KeyTable, hold time.Duration) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Handler{
		table: table,
		hold:  NewHoldState(hold),
	}
}

// HandleEvent processes a tcell event stamped with its own arrival time
func (h *Handler) HandleEvent(ev tcell.Event) Action {
	return h.HandleEventAt(ev, ev.When())
}

// HandleEventAt processes a tcell event as if it arrived at now
func (h *Handler) HandleEventAt(ev tcell.Event, now time.Time) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry, ok := h.table.Lookup(ev)
		if !ok {
			return ActionNone
		}

		h.mu.Lock()
		defer h.mu.Unlock()
		switch entry.Action {
		case ActionMove:
			h.hold.Press(entry.Direction, now)
		case ActionPause:
			// Latched until the next frame; a second press before then cancels it
			h.pausePending = !h.pausePending
		case ActionStart, ActionReset:
			h.hold.Release()
		}
		return entry.Action

	case *tcell.EventResize:
		return ActionResize
	}
	return ActionNone
}

// Directions returns the directions held at now
func (h *Handler) Directions(now time.Time) component.Directions {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hold.Directions(now)
}

// TakePause reports and clears a pending pause toggle
func (h *Handler) TakePause() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	p := h.pausePending
	h.pausePending = false
	return p
}
