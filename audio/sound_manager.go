package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/harvest/config"
	"github.com/lixenwraith/harvest/constants"
	"github.com/lixenwraith/harvest/core"
	"github.com/lixenwraith/harvest/event"
)

// SoundManager plays game sound effects through a shared mixer
// Every operation is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	logger      zerolog.Logger
	initialized bool
	muted       bool
	played      [soundTypeCount]int
}

// NewSoundManager creates a sound manager; it stays silent until Initialize
func NewSoundManager(cfg config.AudioConfig, logger zerolog.Logger) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = constants.AudioSampleRate
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker and starts the mixer
// Disabled audio returns nil and leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("%w: %v", ErrSpeakerUnavailable, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info().Int("sample_rate", sm.cfg.SampleRate).Msg("audio initialized")
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play queues one sound effect; points only affect SoundCollect
func (sm *SoundManager) Play(s SoundType, points int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := GetSoundEffect(s, &sm.cfg, points)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[s]++
}

// Mute silences future sounds; ones already playing finish
func (sm *SoundManager) Mute() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = true
}

// Unmute re-enables playback
func (sm *SoundManager) Unmute() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = false
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayedCount returns how many times s was queued
func (sm *SoundManager) PlayedCount(s SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[s]
}

// EventTypes implements event.Handler
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{event.EventCropCollected, event.EventPhaseChanged}
}

// HandleEvent implements event.Handler
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	s, points, ok := soundFor(ev)
	if !ok {
		return
	}
	sm.Play(s, points)
}

// soundFor maps a game event to the effect it triggers
func soundFor(ev event.GameEvent) (SoundType, int, bool) {
	switch ev.Type {
	case event.EventCropCollected:
		p, ok := ev.Payload.(*event.CropPayload)
		if !ok {
			return 0, 0, false
		}
		return SoundCollect, p.Points, true

	case event.EventPhaseChanged:
		p, ok := ev.Payload.(*event.PhaseChangedPayload)
		if !ok {
			return 0, 0, false
		}
		switch {
		case p.To == core.PhaseWin:
			return SoundWin, 0, true
		case p.To == core.PhaseGameOver:
			return SoundGameOver, 0, true
		case p.To == core.PhasePaused, p.From == core.PhasePaused && p.To == core.PhasePlaying:
			return SoundPause, 0, true
		}
	}
	return 0, 0, false
}
