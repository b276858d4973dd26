package component

import (
	"github.com/lixenwraith/harvest/constants"
	"github.com/lixenwraith/harvest/core"
	"github.com/lixenwraith/harvest/physics"
)

// Farmer is the player-controlled actor
type Farmer struct {
	Body
	VX, VY float64
	Speed  float64 // World units per second
}

// StartBounds returns the farmer's box at round start: centered horizontally,
// FarmerStartInset above the bottom edge of field
func StartBounds(field core.Rect) core.Rect {
	return core.Rect{
		X: field.Center().X - constants.FarmerWidth/2,
		Y: field.Max().Y - constants.FarmerStartInset,
		W: constants.FarmerWidth,
		H: constants.FarmerHeight,
	}
}

// NewFarmer creates a farmer with the default size and speed at (x, y)
func NewFarmer(x, y float64) *Farmer {
	return &Farmer{
		Body:  Body{X: x, Y: y, W: constants.FarmerWidth, H: constants.FarmerHeight},
		Speed: constants.FarmerSpeed,
	}
}

func (f *Farmer) Kind() Kind { return KindFarmer }

// ApplyInput derives velocity from the held directions
func (f *Farmer) ApplyInput(d Directions) {
	f.VX = Axis(d.Left, d.Right) * f.Speed
	f.VY = Axis(d.Up, d.Down) * f.Speed
}

// Advance moves the farmer for dt seconds inside bounds
// Returns true when an obstacle rejected the whole move
func (f *Farmer) Advance(dt float64, bounds core.Rect, obstacles []core.Rect) bool {
	next, blocked := physics.Move(f.Bounds(), f.VX, f.VY, dt, bounds, obstacles)
	f.X, f.Y = next.X, next.Y
	return blocked
}
