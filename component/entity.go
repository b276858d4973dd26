package component

import "github.com/lixenwraith/harvest/core"

// Kind tags the entity variants on the field
type Kind uint8

const (
	KindCrop Kind = iota
	KindFarmer
	KindScarecrow
)

// String returns the variant name
func (k Kind) String() string {
	switch k {
	case KindCrop:
		return "Crop"
	case KindFarmer:
		return "Farmer"
	case KindScarecrow:
		return "Scarecrow"
	default:
		return "Unknown"
	}
}

// Entity is the capability set shared by every variant
type Entity interface {
	Kind() Kind
	Bounds() core.Rect
	Alive() bool
}

// Updater is implemented by variants with per-frame behavior
type Updater interface {
	Update(dt float64)
}

// Body carries position, size and liveness common to all variants
// W and H stay positive for the lifetime of the entity
type Body struct {
	X, Y float64
	W, H float64
	Dead bool
}

// Bounds returns the axis-aligned box of the body
func (b *Body) Bounds() core.Rect {
	return core.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Alive reports whether the entity has not been marked dead
func (b *Body) Alive() bool {
	return !b.Dead
}

// Bounds collects the boxes of a slice of entities
func Bounds[E Entity](entities []E) []core.Rect {
	out := make([]core.Rect, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.Bounds())
	}
	return out
}
