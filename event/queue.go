package event

import "github.com/lixenwraith/harvest/constants"

// EventQueue is the FIFO between the session and the router
// Thread-Safety: none. The session pushes during Update and lifecycle calls,
// and the frame driver drains it through Router.DispatchAll on the same goroutine
//
// Overflow: the backing slice grows; no event is dropped between two drains
type EventQueue struct {
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, constants.EventQueueSize)}
}

// Push appends an event behind all pending ones
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events = append(eq.events, ev)
}

// Consume returns all pending events in FIFO order and empties the queue
// The returned slice belongs to the caller
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := eq.events
	eq.events = make([]GameEvent, 0, max(cap(out), constants.EventQueueSize))
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return len(eq.events)
}
