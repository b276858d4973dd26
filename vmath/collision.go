package vmath

import "github.com/lixenwraith/harvest/core"

// Overlaps reports a positive-area intersection of two boxes
// All four tests are strict: boxes sharing only an edge do not overlap
func Overlaps(a, b core.Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// OverlapsAny reports whether r overlaps at least one of others
func OverlapsAny(r core.Rect, others []core.Rect) bool {
	for _, o := range others {
		if Overlaps(r, o) {
			return true
		}
	}
	return false
}

// ClampInto keeps r fully inside bounds, moving only its corner
func ClampInto(r core.Rect, bounds core.Rect) core.Rect {
	r.X = Clamp(r.X, bounds.X, bounds.X+bounds.W-r.W)
	r.Y = Clamp(r.Y, bounds.Y, bounds.Y+bounds.H-r.H)
	return r
}

// Contains reports whether inner lies fully inside outer; shared edges count as inside
func Contains(outer, inner core.Rect) bool {
	lo, hi := inner.Min(), inner.Max()
	end := outer.Max()
	return lo.X >= outer.X && lo.Y >= outer.Y && hi.X <= end.X && hi.Y <= end.Y
}
