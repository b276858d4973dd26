package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/harvest/audio"
	"github.com/lixenwraith/harvest/config"
	"github.com/lixenwraith/harvest/engine"
	"github.com/lixenwraith/harvest/event"
	"github.com/lixenwraith/harvest/input"
	"github.com/lixenwraith/harvest/render"
	"github.com/lixenwraith/harvest/status"
)

// game wires the session to the terminal, input and sound
type game struct {
	screen   tcell.Screen
	logger   zerolog.Logger
	metrics  *status.Registry
	session  *engine.Session
	driver   *engine.FrameDriver
	input    *input.Handler
	sound    *audio.SoundManager
	renderer *render.TerminalRenderer
}

// newGame builds every component over an initialized screen
// Audio failures are logged and the game runs silent
func newGame(cfg *config.Config, screen tcell.Screen, logger zerolog.Logger, mute bool) (*game, error) {
	table := input.DefaultKeyTable()
	if err := table.ApplyBindings(cfg.Input.Bindings); err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	metrics := status.NewRegistry()
	queue := event.NewEventQueue()
	clock := engine.NewTimeProvider()

	session, err := engine.NewSession(cfg, nil,
		engine.WithLogger(logger.With().Str("component", "session").Logger()),
		engine.WithMetrics(metrics),
		engine.WithQueue(queue),
		engine.WithClock(clock),
	)
	if err != nil {
		return nil, err
	}

	sound := audio.NewSoundManager(cfg.Audio, logger.With().Str("component", "audio").Logger())
	if err := sound.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("continuing without audio")
	}
	if mute {
		sound.Mute()
	}

	router := event.NewRouter(queue)
	router.Register(sound)
	router.Register(eventLogger(logger))

	handler := input.NewHandler(table, cfg.Input.HoldDuration)

	g := &game{
		screen:   screen,
		logger:   logger,
		metrics:  metrics,
		session:  session,
		driver:   engine.NewFrameDriver(session, clock, handler, router, cfg.MaxFrameDelta, logger),
		input:    handler,
		sound:    sound,
		renderer: render.NewTerminalRenderer(screen),
	}
	g.updateStatus()
	return g, nil
}

// eventLogger records every game event at debug level
func eventLogger(logger zerolog.Logger) event.Handler {
	return event.HandlerFunc{
		Types: []event.EventType{
			event.EventSessionReset,
			event.EventPhaseChanged,
			event.EventCropSpawned,
			event.EventCropCollected,
			event.EventFarmerBlocked,
		},
		Fn: func(ev event.GameEvent) {
			logger.Debug().
				Stringer("event", ev.Type).
				Int64("frame", ev.Frame).
				Interface("payload", ev.Payload).
				Msg("game event")
		},
	}
}

// handle applies one terminal event; false means quit
func (g *game) handle(ev tcell.Event) bool {
	switch g.input.HandleEvent(ev) {
	case input.ActionQuit:
		return false
	case input.ActionStart:
		g.driver.Start()
	case input.ActionReset:
		g.driver.Reset()
	case input.ActionMute:
		muted := g.sound.ToggleMute()
		g.logger.Info().Bool("muted", muted).Msg("mute toggled")
		g.updateStatus()
	case input.ActionResize:
		g.screen.Sync()
	}
	return true
}

// frame advances the session one tick and redraws
func (g *game) frame() {
	g.driver.Tick()
	g.renderer.RenderFrame(g.session.Snapshot())
}

func (g *game) updateStatus() {
	if g.sound.Muted() {
		g.renderer.SetStatus("muted")
	} else {
		g.renderer.SetStatus("")
	}
}

// run processes events and frames until quit, a closed event channel or ctx ends
func (g *game) run(ctx context.Context, events <-chan tcell.Event, frames <-chan time.Time) error {
	g.frame()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok || !g.handle(ev) {
				return nil
			}

		case <-frames:
			g.frame()
		}
	}
}

// shutdown releases audio and records final metrics
func (g *game) shutdown() {
	g.sound.Cleanup()
	g.logger.Info().Fields(g.metrics.Snapshot()).Msg("shutdown")
}
