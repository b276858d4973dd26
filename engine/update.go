package engine

import (
	"slices"

	"github.com/lixenwraith/harvest/component"
	"github.com/lixenwraith/harvest/core"
	"github.com/lixenwraith/harvest/event"
	"github.com/lixenwraith/harvest/status"
	"github.com/lixenwraith/harvest/vmath"
)

// Update advances a Playing session by dt seconds; other phases are untouched
// Negative dt is treated as zero. Step order is fixed:
//  1. countdown, ending the round at zero
//  2. farmer movement with obstacle rollback
//  3. spawning on the accelerating interval
//  4. collection, winning early on reaching the goal
//  5. purge of collected crops
//  6. sway animation of the remaining crops
func (s *Session) Update(dt float64, dirs component.Directions) {
	if s.phase != core.PhasePlaying {
		return
	}
	dt = max(dt, 0)
	s.frame++

	if s.tickTimer(dt) {
		return
	}
	s.moveFarmer(dt, dirs)
	s.spawnCrops(dt)
	s.collectCrops()
	s.purgeCrops()
	animate(s.crops, dt)
}

// animate runs the per-frame behavior of every entity in order
func animate[E component.Updater](entities []E, dt float64) {
	for _, e := range entities {
		e.Update(dt)
	}
}

// tickTimer counts down and reports whether the round ended
func (s *Session) tickTimer(dt float64) bool {
	s.remaining = vmath.Clamp(s.remaining-dt, 0, s.duration)
	if s.remaining > 0 {
		return false
	}
	if s.score >= s.goal {
		s.setPhase(s.phase, core.PhaseWin)
	} else {
		s.setPhase(s.phase, core.PhaseGameOver)
	}
	return true
}

func (s *Session) moveFarmer(dt float64, dirs component.Directions) {
	s.farmer.ApplyInput(dirs)
	blocked := s.farmer.Advance(dt, s.field, s.obstacles)
	if blocked {
		s.metrics.Ints.Get(status.KeyMovesBlocked).Add(1)
		// One event per contact rather than per frame of pushing
		if !s.blocked {
			s.emit(event.EventFarmerBlocked, nil)
		}
	}
	s.blocked = blocked
}

// SpawnInterval returns the spawn period for the current remaining time,
// falling linearly from the base interval to base minus range
func (s *Session) SpawnInterval() float64 {
	progress := vmath.Saturate(1 - s.remaining/s.duration)
	return vmath.Lerp(s.baseInterval, s.baseInterval-s.intervalRange, progress)
}

func (s *Session) spawnCrops(dt float64) {
	s.spawnInterval = s.SpawnInterval()
	s.metrics.Floats.Get(status.KeySpawnInterval).Set(s.spawnInterval)

	s.spawnAccum += dt
	for s.spawnAccum >= s.spawnInterval {
		s.spawnAccum -= s.spawnInterval
		s.spawnCrop()
	}
}

// spawnCrop places one random crop on the tile grid, one tile in from each edge
func (s *Session) spawnCrop() {
	p := vmath.GridRandomPoint(int(s.field.W), int(s.field.H), s.tile, s.rng)
	kind := component.RandomCropKind(s.rng)
	c := component.NewCrop(p.X, p.Y, kind, s.rng)
	s.crops = append(s.crops, c)

	s.metrics.Ints.Get(status.KeyCropsSpawned).Add(1)
	s.emit(event.EventCropSpawned, &event.CropPayload{
		Kind:   string(c.Type),
		Points: c.Points(),
		X:      c.X,
		Y:      c.Y,
		Score:  s.score,
	})
}

func (s *Session) collectCrops() {
	farmer := s.farmer.Bounds()
	collected := 0
	for _, c := range s.crops {
		if !c.Alive() || !vmath.Overlaps(farmer, c.Bounds()) {
			continue
		}
		c.Dead = true
		s.score += c.Points()
		collected++

		s.emit(event.EventCropCollected, &event.CropPayload{
			Kind:   string(c.Type),
			Points: c.Points(),
			X:      c.X,
			Y:      c.Y,
			Score:  s.score,
		})
		s.logger.Debug().
			Str("session", s.id).
			Str("crop", string(c.Type)).
			Int("score", s.score).
			Msg("crop collected")
	}
	if collected == 0 {
		return
	}

	s.metrics.Ints.Get(status.KeyCropsCollected).Add(int64(collected))
	if s.score >= s.goal {
		s.setPhase(s.phase, core.PhaseWin)
	}
}

func (s *Session) purgeCrops() {
	s.crops = slices.DeleteFunc(s.crops, func(c *component.Crop) bool {
		return !c.Alive()
	})
}
