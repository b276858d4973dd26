package input

// Action is the semantic result of one terminal event
type Action uint8

const (
	ActionNone   Action = iota
	ActionMove          // Direction key, folded into held directions
	ActionPause         // p
	ActionStart         // Enter, Space
	ActionReset         // r
	ActionMute          // m
	ActionQuit          // q, Esc, Ctrl+C
	ActionResize        // Terminal resize event
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMove:
		return "Move"
	case ActionPause:
		return "Pause"
	case ActionStart:
		return "Start"
	case ActionReset:
		return "Reset"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	case ActionResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// Direction identifies one movement key
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
	dirCount
)
