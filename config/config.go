package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/harvest/component"
	"github.com/lixenwraith/harvest/constants"
	"github.com/lixenwraith/harvest/core"
	"github.com/lixenwraith/harvest/vmath"
)

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid config")

// Position is a top-left corner in world units
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// AudioConfig controls sound effect playback
type AudioConfig struct {
	Enabled       bool               `yaml:"enabled"`
	MasterVolume  float64            `yaml:"master_volume"` // 0.0-1.0
	SampleRate    int                `yaml:"sample_rate"`
	EffectVolumes map[string]float64 `yaml:"effect_volumes"`
}

// InputConfig controls terminal key handling
type InputConfig struct {
	// HoldDuration keeps a direction held after its last key repeat
	HoldDuration time.Duration `yaml:"hold_duration"`

	// Bindings maps single-character keys to action names, e.g. "x": "pause"
	// Applied over the default key table; "none" unbinds
	Bindings map[string]string `yaml:"bindings"`
}

// Config is the full runtime configuration
type Config struct {
	// Field geometry in world units
	FieldWidth  int `yaml:"field_width"`
	FieldHeight int `yaml:"field_height"`
	Tile        int `yaml:"tile"`

	// Round rules
	Duration time.Duration `yaml:"duration"`
	Goal     int           `yaml:"goal"`

	// Spawn ramp: interval goes from Base to Base-Range over the round
	BaseSpawnInterval  time.Duration `yaml:"base_spawn_interval"`
	SpawnIntervalRange time.Duration `yaml:"spawn_interval_range"`

	// Frame driver
	FrameInterval time.Duration `yaml:"frame_interval"`
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"`

	// Seed for the random source; 0 picks one from the clock
	Seed uint64 `yaml:"seed"`

	Scarecrows []Position `yaml:"scarecrows"`

	Audio AudioConfig `yaml:"audio"`
	Input InputConfig `yaml:"input"`
}

// Default returns the stock game configuration
func Default() *Config {
	scarecrows := make([]Position, 0, len(constants.DefaultScarecrows))
	for _, p := range constants.DefaultScarecrows {
		scarecrows = append(scarecrows, Position{X: p[0], Y: p[1]})
	}

	return &Config{
		FieldWidth:         constants.FieldWidth,
		FieldHeight:        constants.FieldHeight,
		Tile:               constants.Tile,
		Duration:           constants.SessionDuration,
		Goal:               constants.ScoreGoal,
		BaseSpawnInterval:  constants.BaseSpawnInterval,
		SpawnIntervalRange: constants.SpawnIntervalRange,
		FrameInterval:      constants.FrameUpdateInterval,
		MaxFrameDelta:      constants.MaxFrameDelta,
		Scarecrows:         scarecrows,
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   constants.AudioSampleRate,
			EffectVolumes: map[string]float64{
				"collect":  1.0,
				"win":      0.6,
				"gameover": 0.7,
				"pause":    0.4,
			},
		},
		Input: InputConfig{
			HoldDuration: constants.KeyHoldDuration,
		},
	}
}

// Validate reports the first rule the configuration breaks
func (c *Config) Validate() error {
	switch {
	case c.FieldWidth <= 0 || c.FieldHeight <= 0:
		return fmt.Errorf("%w: field size %dx%d must be positive", ErrInvalid, c.FieldWidth, c.FieldHeight)
	case c.Tile <= 0:
		return fmt.Errorf("%w: tile %d must be positive", ErrInvalid, c.Tile)
	case c.FieldWidth < 3*c.Tile || c.FieldHeight < 3*c.Tile:
		return fmt.Errorf("%w: field %dx%d leaves no spawn cells inside a %d border", ErrInvalid, c.FieldWidth, c.FieldHeight, c.Tile)
	case c.Duration <= 0:
		return fmt.Errorf("%w: duration %v must be positive", ErrInvalid, c.Duration)
	case c.Goal <= 0:
		return fmt.Errorf("%w: goal %d must be positive", ErrInvalid, c.Goal)
	case c.SpawnIntervalRange < 0:
		return fmt.Errorf("%w: spawn interval range %v must not be negative", ErrInvalid, c.SpawnIntervalRange)
	case c.BaseSpawnInterval <= c.SpawnIntervalRange:
		return fmt.Errorf("%w: base spawn interval %v must exceed range %v", ErrInvalid, c.BaseSpawnInterval, c.SpawnIntervalRange)
	case c.FrameInterval <= 0:
		return fmt.Errorf("%w: frame interval %v must be positive", ErrInvalid, c.FrameInterval)
	case c.MaxFrameDelta <= 0:
		return fmt.Errorf("%w: max frame delta %v must be positive", ErrInvalid, c.MaxFrameDelta)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: master volume %v outside [0, 1]", ErrInvalid, c.Audio.MasterVolume)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d must be positive", ErrInvalid, c.Audio.SampleRate)
	case c.Input.HoldDuration <= 0:
		return fmt.Errorf("%w: hold duration %v must be positive", ErrInvalid, c.Input.HoldDuration)
	}
	return c.validatePlacement()
}

// Field returns the playing field box in world units
func (c *Config) Field() core.Rect {
	return core.Rect{W: float64(c.FieldWidth), H: float64(c.FieldHeight)}
}

// validatePlacement checks that the farmer start and every scarecrow lie
// inside the field and that no scarecrow covers the start box
func (c *Config) validatePlacement() error {
	field := c.Field()
	start := component.StartBounds(field)
	if !vmath.Contains(field, start) {
		return fmt.Errorf("%w: farmer start (%v,%v) outside field %dx%d", ErrInvalid, start.X, start.Y, c.FieldWidth, c.FieldHeight)
	}
	for i, p := range c.Scarecrows {
		box := component.NewScarecrow(p.X, p.Y).Bounds()
		if !vmath.Contains(field, box) {
			return fmt.Errorf("%w: scarecrow %d at (%v,%v) outside field %dx%d", ErrInvalid, i, p.X, p.Y, c.FieldWidth, c.FieldHeight)
		}
		if vmath.Overlaps(box, start) {
			return fmt.Errorf("%w: scarecrow %d at (%v,%v) covers the farmer start", ErrInvalid, i, p.X, p.Y)
		}
	}
	return nil
}
