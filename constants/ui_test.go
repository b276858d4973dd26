package constants

import "testing"

// TestFieldFitsCellGrid verifies the field maps onto whole terminal cells
func TestFieldFitsCellGrid(t *testing.T) {
	if FieldWidth%CellWidth != 0 {
		t.Errorf("FieldWidth %d not divisible by CellWidth %d", FieldWidth, CellWidth)
	}
	if FieldHeight%CellHeight != 0 {
		t.Errorf("FieldHeight %d not divisible by CellHeight %d", FieldHeight, CellHeight)
	}
}

// TestSpawnRampStaysPositive verifies the spawn interval never reaches zero
func TestSpawnRampStaysPositive(t *testing.T) {
	if BaseSpawnInterval <= SpawnIntervalRange {
		t.Errorf("BaseSpawnInterval %v must exceed SpawnIntervalRange %v", BaseSpawnInterval, SpawnIntervalRange)
	}
}

// TestFarmerStartInsideField verifies the start box fits the default field
func TestFarmerStartInsideField(t *testing.T) {
	startX := FieldWidth/2 - FarmerWidth/2
	startY := FieldHeight - FarmerStartInset
	if startX < 0 || startX+FarmerWidth > FieldWidth {
		t.Errorf("farmer start x %d out of field", startX)
	}
	if startY < 0 || startY+FarmerHeight > FieldHeight {
		t.Errorf("farmer start y %d out of field", startY)
	}
}
