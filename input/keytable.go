package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Action    Action
	Direction Direction
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	left := KeyEntry{ActionMove, DirLeft}
	right := KeyEntry{ActionMove, DirRight}
	up := KeyEntry{ActionMove, DirUp}
	down := KeyEntry{ActionMove, DirDown}
	pause := KeyEntry{ActionPause, DirNone}
	start := KeyEntry{ActionStart, DirNone}
	reset := KeyEntry{ActionReset, DirNone}
	mute := KeyEntry{ActionMute, DirNone}
	quit := KeyEntry{ActionQuit, DirNone}

	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyLeft:   left,
			tcell.KeyRight:  right,
			tcell.KeyUp:     up,
			tcell.KeyDown:   down,
			tcell.KeyEnter:  start,
			tcell.KeyEscape: quit,
			tcell.KeyCtrlC:  quit,
		},

		Runes: map[rune]KeyEntry{
			// wasd
			'a': left,
			'A': left,
			'd': right,
			'D': right,
			'w': up,
			'W': up,
			's': down,
			'S': down,

			// vi
			'h': left,
			'l': right,
			'k': up,
			'j': down,

			'p': pause,
			'P': pause,
			' ': start,
			'r': reset,
			'R': reset,
			'm': mute,
			'M': mute,
			'q': quit,
		},
	}
}

// Lookup resolves a key event to its entry
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		entry, ok := kt.Runes[ev.Rune()]
		return entry, ok
	}
	entry, ok := kt.SpecialKeys[ev.Key()]
	return entry, ok
}
