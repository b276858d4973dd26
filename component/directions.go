package component

// Directions are the four movement flags read once per frame
type Directions struct {
	Left, Right, Up, Down bool
}

// Axis returns -1, 0 or +1 for a negative/positive flag pair
// Both set cancel to 0
func Axis(negative, positive bool) float64 {
	return b2f(positive) - b2f(negative)
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Any reports whether any direction is held
func (d Directions) Any() bool {
	return d.Left || d.Right || d.Up || d.Down
}
