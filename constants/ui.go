package constants

import "time"

// Terminal Layout
const (
	// CellWidth and CellHeight are world units covered by one terminal cell
	// Terminal cells are roughly twice as tall as wide, hence 15x30
	CellWidth  = 15
	CellHeight = 30

	// HUDRows is the number of rows above the field
	HUDRows = 1

	// MessageRows is the number of rows below the field
	MessageRows = 1
)

// Input
const (
	// KeyHoldDuration keeps a direction pressed after its last key repeat
	// Terminals deliver no release events, so holds are emulated by expiry
	KeyHoldDuration = 150 * time.Millisecond
)

// Phase messages shown under the field
const (
	MessageMenu     = "Press Start (Enter) to play"
	MessagePaused   = "Paused (press P to resume)"
	MessageGameOver = "Time up! Press Reset (R) to return to Menu"
	MessageWin      = "Harvest complete! Press Reset (R) for another round"
)
