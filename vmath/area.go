package vmath

import "github.com/lixenwraith/harvest/core"

// GridCells returns how many whole cells of size pitch fit in span after
// removing one cell of border on each side
func GridCells(span, pitch int) int {
	if pitch <= 0 {
		return 0
	}
	n := (span - 2*pitch) / pitch
	if n < 0 {
		return 0
	}
	return n
}

// GridRandomPoint returns a random grid-aligned corner inside bounds,
// excluding a one-pitch border, using the provided RNG
func GridRandomPoint(width, height, pitch int, rng Rand) core.Point {
	gx := rng.Intn(GridCells(width, pitch))*pitch + pitch
	gy := rng.Intn(GridCells(height, pitch))*pitch + pitch
	return core.Point{X: float64(gx), Y: float64(gy)}
}
