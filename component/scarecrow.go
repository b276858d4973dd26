package component

import "github.com/lixenwraith/harvest/constants"

// Scarecrow is a static obstacle the farmer cannot enter
type Scarecrow struct {
	Body
}

// NewScarecrow places a scarecrow with its top-left corner at (x, y)
func NewScarecrow(x, y float64) *Scarecrow {
	return &Scarecrow{
		Body: Body{X: x, Y: y, W: constants.ScarecrowWidth, H: constants.ScarecrowHeight},
	}
}

func (s *Scarecrow) Kind() Kind { return KindScarecrow }
