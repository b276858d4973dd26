package core

// Rect is an axis-aligned box in world units
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Dimensions (positive)
}

// Point is a position in world units
type Point struct {
	X, Y float64
}

// Min returns the top-left corner
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// Max returns the bottom-right corner
func (r Rect) Max() Point {
	return Point{X: r.X + r.W, Y: r.Y + r.H}
}

// Center returns the midpoint of the rect
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Moved returns a copy of the rect with its corner at (x, y)
func (r Rect) Moved(x, y float64) Rect {
	r.X, r.Y = x, y
	return r
}
