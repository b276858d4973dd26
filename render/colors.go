package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/harvest/vmath"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)   // Outside the field
	RgbFieldLight = tcell.NewRGBColor(120, 170, 90) // Grass, even tiles
	RgbFieldDark  = tcell.NewRGBColor(105, 155, 78) // Grass, odd tiles

	RgbFarmerBg   = tcell.NewRGBColor(230, 160, 60) // Straw hat orange
	RgbFarmerFg   = tcell.NewRGBColor(40, 30, 20)
	RgbScarecrow  = tcell.NewRGBColor(140, 100, 60) // Weathered wood
	RgbScarecrowF = tcell.NewRGBColor(230, 210, 160)

	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255)
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
	RgbMessage    = tcell.NewRGBColor(255, 220, 120)

	// Phase label backgrounds
	RgbPhaseMenuBg     = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbPhasePlayingBg  = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbPhasePausedBg   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbPhaseGameOverBg = tcell.NewRGBColor(200, 50, 50)   // Red
	RgbPhaseWinBg      = tcell.NewRGBColor(255, 215, 0)   // Gold
)

// ParseHex converts a "#rrggbb" string to a color, falling back on failure
func ParseHex(hex string, fallback tcell.Color) tcell.Color {
	c := tcell.GetColor(hex)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

// Shade scales a color's brightness by factor, clamped to valid channels
func Shade(c tcell.Color, factor float64) tcell.Color {
	r, g, b := c.RGB()
	if r < 0 {
		return c
	}
	scale := func(v int32) int32 {
		return int32(vmath.Clamp(float64(v)*factor, 0, 255))
	}
	return tcell.NewRGBColor(scale(r), scale(g), scale(b))
}
