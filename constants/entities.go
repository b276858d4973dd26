package constants

// Farmer
const (
	FarmerWidth  = 34
	FarmerHeight = 34

	// FarmerSpeed is in world units per second
	FarmerSpeed = 260

	// FarmerStartInset is the gap from the field's bottom edge to the farmer's
	// top edge at round start; the farmer is centered horizontally
	FarmerStartInset = 80
)

// Crop
const (
	CropWidth  = 20
	CropHeight = 26

	// CropSwayRate is radians of sway phase per second
	CropSwayRate = 2.0
)

// Scarecrow
const (
	ScarecrowWidth  = 26
	ScarecrowHeight = 46
)

// DefaultScarecrows are the obstacle corners placed on every reset
var DefaultScarecrows = [][2]float64{
	{200, 220},
	{650, 160},
}
