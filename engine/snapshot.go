package engine

import (
	"github.com/lixenwraith/harvest/component"
	"github.com/lixenwraith/harvest/core"
)

// Snapshot is a detached copy of session state for rendering
// Mutating it has no effect on the session
type Snapshot struct {
	SessionID     string
	Phase         core.Phase
	Remaining     float64
	Duration      float64
	Score         int
	Goal          int
	SpawnInterval float64
	Field         core.Rect
	Tile          int

	Farmer     component.Farmer
	Crops      []component.Crop
	Scarecrows []component.Scarecrow
}

// Snapshot copies the current state
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:     s.id,
		Phase:         s.phase,
		Remaining:     s.remaining,
		Duration:      s.duration,
		Score:         s.score,
		Goal:          s.goal,
		SpawnInterval: s.spawnInterval,
		Field:         s.field,
		Tile:          s.tile,
		Farmer:        *s.farmer,
		Crops:         make([]component.Crop, 0, len(s.crops)),
		Scarecrows:    make([]component.Scarecrow, 0, len(s.scarecrows)),
	}
	for _, c := range s.crops {
		snap.Crops = append(snap.Crops, *c)
	}
	for _, sc := range s.scarecrows {
		snap.Scarecrows = append(snap.Scarecrows, *sc)
	}
	return snap
}
