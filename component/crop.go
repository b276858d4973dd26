package component

import (
	"math"

	"github.com/lixenwraith/harvest/constants"
	"github.com/lixenwraith/harvest/vmath"
)

// CropKind tags a collectible; unknown tags are tolerated and score the fallback
type CropKind string

const (
	CropWheat CropKind = "wheat"
	CropBerry CropKind = "berry"
	CropApple CropKind = "apple"
)

// CropInfo is the static description of a crop kind
type CropInfo struct {
	Kind   CropKind
	Points int
	Color  string // Hex colour, opaque to game logic
}

// CropTable lists the spawnable crop kinds
var CropTable = [...]CropInfo{
	{Kind: CropWheat, Points: 1, Color: "#d9a441"},
	{Kind: CropBerry, Points: 2, Color: "#2307f7"},
	{Kind: CropApple, Points: 3, Color: "#ff0000"},
}

// fallbackPoints is scored by a tag missing from CropTable
// Unreachable through spawning, which only draws from CropTable
const fallbackPoints = 1

// LookupCrop returns the table entry for kind
func LookupCrop(kind CropKind) (CropInfo, bool) {
	for _, info := range CropTable {
		if info.Kind == kind {
			return info, true
		}
	}
	return CropInfo{}, false
}

// Points returns the score value of a crop kind
func Points(kind CropKind) int {
	if info, ok := LookupCrop(kind); ok {
		return info.Points
	}
	return fallbackPoints
}

// Color returns the display colour of a crop kind, wheat colour if unknown
func Color(kind CropKind) string {
	if info, ok := LookupCrop(kind); ok {
		return info.Color
	}
	return CropTable[0].Color
}

// RandomCropKind picks uniformly among the defined kinds
func RandomCropKind(rng vmath.Rand) CropKind {
	return CropTable[rng.Intn(len(CropTable))].Kind
}

// Crop is a collectible worth Points(Type) when the farmer touches it
type Crop struct {
	Body
	Type CropKind
	Sway float64 // Animation phase in radians, unbounded
}

// NewCrop creates a crop at (x, y); an empty kind becomes wheat
// rng seeds the sway phase so neighbouring crops do not animate in lockstep; nil leaves it at 0
func NewCrop(x, y float64, kind CropKind, rng vmath.Rand) *Crop {
	if kind == "" {
		kind = CropWheat
	}
	c := &Crop{
		Body: Body{X: x, Y: y, W: constants.CropWidth, H: constants.CropHeight},
		Type: kind,
	}
	if rng != nil {
		c.Sway = rng.Float64() * 2 * math.Pi
	}
	return c
}

func (c *Crop) Kind() Kind { return KindCrop }

// Points returns the score value of this crop
func (c *Crop) Points() int {
	return Points(c.Type)
}

// Update advances the sway phase
func (c *Crop) Update(dt float64) {
	c.Sway += dt * constants.CropSwayRate
}
