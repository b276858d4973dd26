package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the elapsed time fed into one update so a stalled frame cannot jump the world
	MaxFrameDelta = 33 * time.Millisecond

	// EventQueueSize is the preallocated capacity of the session event queue
	EventQueueSize = 64
)

// World Geometry (world units)
const (
	FieldWidth  = 900
	FieldHeight = 540

	// Tile is the spawn grid pitch; one tile of border is never spawned on
	Tile = 30
)

// Session Rules
const (
	// SessionDuration is the countdown length of one round
	SessionDuration = 60 * time.Second

	// ScoreGoal is the score that wins the round
	ScoreGoal = 15
)

// Spawn Ramp
const (
	// BaseSpawnInterval is the crop spawn interval at progress 0
	BaseSpawnInterval = 800 * time.Millisecond

	// SpawnIntervalRange is subtracted linearly as progress goes 0 -> 1 (0.8s -> 0.3s)
	SpawnIntervalRange = 500 * time.Millisecond
)
