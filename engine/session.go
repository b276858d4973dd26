package engine

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/harvest/component"
	"github.com/lixenwraith/harvest/config"
	"github.com/lixenwraith/harvest/core"
	"github.com/lixenwraith/harvest/event"
	"github.com/lixenwraith/harvest/status"
	"github.com/lixenwraith/harvest/vmath"
)

// Session owns all game state for one field: the farmer, crops, scarecrows,
// phase, timer and score. It is single-threaded; callers serialize access.
type Session struct {
	logger  zerolog.Logger
	metrics *status.Registry
	queue   *event.EventQueue
	clock   Clock
	rng     vmath.Rand

	// Read-only after construction
	field         core.Rect
	tile          int
	duration      float64 // Seconds
	goal          int
	baseInterval  float64 // Seconds
	intervalRange float64 // Seconds
	scarecrowAt   []config.Position

	id            string
	phase         core.Phase
	remaining     float64
	score         int
	spawnInterval float64
	spawnAccum    float64
	frame         int64
	blocked       bool // Previous frame's move was rejected

	farmer     *component.Farmer
	crops      []*component.Crop
	scarecrows []*component.Scarecrow
	obstacles  []core.Rect // Scarecrow bounds, rebuilt on reset
}

// Option configures optional session collaborators
type Option func(*Session)

// WithLogger sets the session logger; default is zerolog.Nop()
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithMetrics shares a metrics registry; default is a private registry
func WithMetrics(r *status.Registry) Option {
	return func(s *Session) { s.metrics = r }
}

// WithQueue sets the queue events are pushed to; default is a private queue
func WithQueue(q *event.EventQueue) Option {
	return func(s *Session) { s.queue = q }
}

// WithClock sets the clock used for event timestamps
func WithClock(c Clock) Option {
	return func(s *Session) { s.clock = c }
}

// NewSession validates cfg and returns a session in Menu
// A nil rng is replaced by a FastRand seeded from cfg.Seed, or the clock when 0
func NewSession(cfg *config.Config, rng vmath.Rand, opts ...Option) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("new session: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{
		logger:        zerolog.Nop(),
		field:         cfg.Field(),
		tile:          cfg.Tile,
		duration:      cfg.Duration.Seconds(),
		goal:          cfg.Goal,
		baseInterval:  cfg.BaseSpawnInterval.Seconds(),
		intervalRange: cfg.SpawnIntervalRange.Seconds(),
		scarecrowAt:   slices.Clone(cfg.Scarecrows),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = status.NewRegistry()
	}
	if s.queue == nil {
		s.queue = event.NewEventQueue()
	}
	if s.clock == nil {
		s.clock = NewTimeProvider()
	}
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(s.clock.Now().UnixNano())
		}
		rng = vmath.NewFastRand(seed)
	}
	s.rng = rng

	s.Reset()
	return s, nil
}

// Reset returns to Menu with a fresh farmer, scarecrows, timer and score
func (s *Session) Reset() {
	from := s.phase
	s.reinitialize()
	s.setPhase(from, core.PhaseMenu)
}

// Start begins a new round from Menu, GameOver or Win
// Returns false, changing nothing, from Playing or Paused
func (s *Session) Start() bool {
	from := s.phase
	if !canStart(from) {
		return false
	}
	s.reinitialize()
	s.setPhase(from, core.PhasePlaying)
	s.metrics.Ints.Get(status.KeySessions).Add(1)
	return true
}

// TogglePause swaps Playing and Paused; any other phase is left alone
func (s *Session) TogglePause() bool {
	switch s.phase {
	case core.PhasePlaying:
		s.setPhase(s.phase, core.PhasePaused)
	case core.PhasePaused:
		s.setPhase(s.phase, core.PhasePlaying)
	default:
		return false
	}
	return true
}

// reinitialize rebuilds round state without touching the phase
func (s *Session) reinitialize() {
	s.id = uuid.NewString()
	s.remaining = s.duration
	s.score = 0
	s.spawnAccum = 0
	s.spawnInterval = s.baseInterval
	s.frame = 0
	s.blocked = false

	start := component.StartBounds(s.field)
	s.farmer = component.NewFarmer(start.X, start.Y)
	s.crops = nil
	s.scarecrows = make([]*component.Scarecrow, 0, len(s.scarecrowAt))
	for _, p := range s.scarecrowAt {
		s.scarecrows = append(s.scarecrows, component.NewScarecrow(p.X, p.Y))
	}
	s.obstacles = component.Bounds(s.scarecrows)

	s.metrics.Strings.Get(status.KeySessionID).Store(s.id)
	s.metrics.Floats.Get(status.KeySpawnInterval).Set(s.spawnInterval)

	s.emit(event.EventSessionReset, &event.SessionResetPayload{SessionID: s.id})
	s.logger.Debug().Str("session", s.id).Msg("session reset")
}

// setPhase applies a table-checked transition and announces it
func (s *Session) setPhase(from, to core.Phase) {
	if !CanTransition(from, to) {
		s.logger.Warn().Stringer("from", from).Stringer("to", to).Msg("rejected phase transition")
		return
	}
	s.phase = to
	if from == to {
		return
	}

	s.emit(event.EventPhaseChanged, &event.PhaseChangedPayload{From: from, To: to, Score: s.score})
	s.logger.Info().
		Str("session", s.id).
		Stringer("from", from).
		Stringer("to", to).
		Int("score", s.score).
		Float64("remaining", s.remaining).
		Msg("phase changed")
}

func (s *Session) emit(t event.EventType, payload any) {
	s.queue.Push(event.GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     s.frame,
		Timestamp: s.clock.Now(),
	})
}

// Phase returns the current phase
func (s *Session) Phase() core.Phase { return s.phase }

// Remaining returns the seconds left in the round, within [0, duration]
func (s *Session) Remaining() float64 { return s.remaining }

// Duration returns the round length in seconds
func (s *Session) Duration() float64 { return s.duration }

// Score returns the points collected this round
func (s *Session) Score() int { return s.score }

// Goal returns the score that wins the round
func (s *Session) Goal() int { return s.goal }

// SessionID returns the identifier regenerated on every reset
func (s *Session) SessionID() string { return s.id }

// Frame returns the number of Playing updates in this round
func (s *Session) Frame() int64 { return s.frame }

// Queue returns the queue the session pushes events to
func (s *Session) Queue() *event.EventQueue { return s.queue }

// Metrics returns the registry the session reports to
func (s *Session) Metrics() *status.Registry { return s.metrics }

// Farmer returns the live farmer; callers must not retain it across Reset
func (s *Session) Farmer() *component.Farmer { return s.farmer }

// Crops returns the live crop collection
func (s *Session) Crops() []*component.Crop { return s.crops }

// Scarecrows returns the obstacle collection
func (s *Session) Scarecrows() []*component.Scarecrow { return s.scarecrows }

// Field returns the playfield bounds
func (s *Session) Field() core.Rect { return s.field }
