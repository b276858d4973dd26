package engine

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/harvest/component"
	"github.com/lixenwraith/harvest/config"
	"github.com/lixenwraith/harvest/core"
	"github.com/lixenwraith/harvest/event"
	"github.com/lixenwraith/harvest/status"
)

// stubInput returns fixed directions and a one-shot pause request
type stubInput struct {
	dirs  component.Directions
	pause bool
	polls int
}

func (s *stubInput) Directions(now time.Time) component.Directions {
	s.polls++
	return s.dirs
}

func (s *stubInput) TakePause() bool {
	p := s.pause
	s.pause = false
	return p
}

func newTestDriver(t *testing.T, input InputSource) (*FrameDriver, *MockTimeProvider, *event.Router) {
	t.Helper()
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	queue := event.NewEventQueue()
	s, err := NewSession(config.Default(), &scriptedRand{}, WithClock(clock), WithQueue(queue))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	router := event.NewRouter(queue)
	d := NewFrameDriver(s, clock, input, router, 33*time.Millisecond, zerolog.Nop())
	return d, clock, router
}

func TestDriverClampsDelta(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		want    float64
	}{
		{"normal frame", 16 * time.Millisecond, 0.016},
		{"long stall", 2 * time.Second, 0.033},
		{"backwards", -time.Second, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, clock, _ := newTestDriver(t, nil)
			d.Start()
			clock.Advance(tt.advance)

			got := d.Tick()

			if !approx(got, tt.want) {
				t.Errorf("Tick() = %v, want %v", got, tt.want)
			}
			if !approx(d.Session().Remaining(), 60-tt.want) {
				t.Errorf("Remaining() = %v, want %v", d.Session().Remaining(), 60-tt.want)
			}
		})
	}
}

func TestDriverResyncsOnStart(t *testing.T) {
	d, clock, _ := newTestDriver(t, nil)
	clock.Advance(10 * time.Second)

	d.Start()
	if got := d.Tick(); got != 0 {
		t.Errorf("first Tick() after Start = %v, want 0", got)
	}
}

func TestDriverPollsInput(t *testing.T) {
	input := &stubInput{dirs: component.Directions{Right: true}}
	d, clock, _ := newTestDriver(t, input)
	d.Start()

	clock.Advance(20 * time.Millisecond)
	d.Tick()

	if input.polls != 1 {
		t.Errorf("input polled %d times, want 1", input.polls)
	}
	if x := d.Session().Farmer().X; !approx(x, 433+260*0.02) {
		t.Errorf("farmer x = %v, want %v", x, 433+260*0.02)
	}
}

func TestDriverPauseToggle(t *testing.T) {
	input := &stubInput{pause: true, dirs: component.Directions{Right: true}}
	d, clock, _ := newTestDriver(t, input)
	d.Start()

	clock.Advance(20 * time.Millisecond)
	d.Tick()

	s := d.Session()
	if s.Phase() != core.PhasePaused {
		t.Fatalf("Phase() = %v, want Paused", s.Phase())
	}
	// Toggle happens before the update, so the frame is frozen
	if s.Remaining() != 60 || s.Farmer().X != 433 {
		t.Errorf("paused frame advanced: remaining %v farmer x %v", s.Remaining(), s.Farmer().X)
	}

	input.pause = true
	clock.Advance(20 * time.Millisecond)
	d.Tick()
	if s.Phase() != core.PhasePlaying {
		t.Errorf("Phase() = %v, want Playing after second toggle", s.Phase())
	}
}

func TestDriverDispatchesEvents(t *testing.T) {
	d, clock, router := newTestDriver(t, nil)

	var changes []event.PhaseChangedPayload
	router.Register(event.HandlerFunc{
		Types: []event.EventType{event.EventPhaseChanged},
		Fn: func(ev event.GameEvent) {
			changes = append(changes, *ev.Payload.(*event.PhaseChangedPayload))
		},
	})

	d.Start()
	clock.Advance(16 * time.Millisecond)
	d.Tick()

	if len(changes) != 1 || changes[0].To != core.PhasePlaying {
		t.Fatalf("changes = %+v, want one transition to Playing", changes)
	}

	metrics := d.Session().Metrics()
	if n := metrics.Ints.Get(status.KeyFrames).Load(); n != 1 {
		t.Errorf("%s = %d, want 1", status.KeyFrames, n)
	}
	// Initial reset, start reset and the phase change
	if n := metrics.Ints.Get(status.KeyEvents).Load(); n != 3 {
		t.Errorf("%s = %d, want 3", status.KeyEvents, n)
	}
}

func TestDriverReset(t *testing.T) {
	d, clock, _ := newTestDriver(t, nil)
	d.Start()
	clock.Advance(20 * time.Millisecond)
	d.Tick()

	d.Reset()
	if d.Session().Phase() != core.PhaseMenu {
		t.Errorf("Phase() = %v, want Menu", d.Session().Phase())
	}
	if d.TogglePause() {
		t.Error("TogglePause() = true in Menu")
	}
}
