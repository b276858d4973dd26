package physics

import (
	"github.com/lixenwraith/harvest/core"
	"github.com/lixenwraith/harvest/vmath"
)

// Move displaces body by velocity*dt, clamps it into bounds, and rejects the
// whole displacement if the result overlaps any blocker
// Returns the resulting box and whether the move was rejected
//
// Rejection restores the pre-move box exactly, including any clamp; there is
// no per-axis sliding along a blocker edge
func Move(body core.Rect, velX, velY, dt float64, bounds core.Rect, blockers []core.Rect) (core.Rect, bool) {
	next := body.Moved(body.X+velX*dt, body.Y+velY*dt)
	next = vmath.ClampInto(next, bounds)

	if vmath.OverlapsAny(next, blockers) {
		return body, true
	}
	return next, false
}
