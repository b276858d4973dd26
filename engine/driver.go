package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/harvest/component"
	"github.com/lixenwraith/harvest/event"
	"github.com/lixenwraith/harvest/status"
)

// InputSource is polled once per frame
type InputSource interface {
	// Directions returns the movement flags held at now
	Directions(now time.Time) component.Directions
	// TakePause reports and clears a pending pause toggle
	TakePause() bool
}

// FrameDriver turns wall-clock frames into clamped session updates
type FrameDriver struct {
	session  *Session
	clock    Clock
	input    InputSource
	router   *event.Router
	logger   zerolog.Logger
	maxDelta time.Duration
	last     time.Time
}

// NewFrameDriver binds a session to a clock and input source
// input and router may be nil; maxDelta bounds each step
func NewFrameDriver(session *Session, clock Clock, input InputSource, router *event.Router, maxDelta time.Duration, logger zerolog.Logger) *FrameDriver {
	d := &FrameDriver{
		session:  session,
		clock:    clock,
		input:    input,
		router:   router,
		logger:   logger,
		maxDelta: maxDelta,
	}
	d.Resync()
	return d
}

// Resync makes the next Tick measure from now
func (d *FrameDriver) Resync() {
	d.last = d.clock.Now()
}

// Tick runs one frame and returns the step applied in seconds
func (d *FrameDriver) Tick() float64 {
	now := d.clock.Now()
	delta := min(max(now.Sub(d.last), 0), d.maxDelta)
	d.last = now
	dt := delta.Seconds()

	var dirs component.Directions
	if d.input != nil {
		dirs = d.input.Directions(now)
		if d.input.TakePause() {
			d.session.TogglePause()
		}
	}
	d.session.Update(dt, dirs)

	metrics := d.session.Metrics()
	metrics.Ints.Get(status.KeyFrames).Add(1)
	metrics.Floats.Get(status.KeyFrameDelta).Set(dt)

	d.Dispatch()
	return dt
}

// Dispatch routes pending session events to registered handlers
func (d *FrameDriver) Dispatch() int {
	if d.router == nil {
		return 0
	}
	n := d.router.DispatchAll()
	if n > 0 {
		d.session.Metrics().Ints.Get(status.KeyEvents).Add(int64(n))
	}
	return n
}

// Start starts the session and resyncs the frame clock on success
func (d *FrameDriver) Start() bool {
	if !d.session.Start() {
		return false
	}
	d.Resync()
	d.logger.Debug().Str("session", d.session.SessionID()).Msg("round started")
	return true
}

// Reset returns the session to Menu and resyncs the frame clock
func (d *FrameDriver) Reset() {
	d.session.Reset()
	d.Resync()
}

// TogglePause forwards a pause request outside the polled input
func (d *FrameDriver) TogglePause() bool {
	return d.session.TogglePause()
}

// Session returns the driven session
func (d *FrameDriver) Session() *Session {
	return d.session
}
