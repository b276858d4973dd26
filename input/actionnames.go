package input

import (
	"fmt"
	"unicode/utf8"
)

// actionRegistry maps canonical action names to KeyEntry structs
// Used to resolve configured binding strings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	"move_left":  {ActionMove, DirLeft},
	"move_right": {ActionMove, DirRight},
	"move_up":    {ActionMove, DirUp},
	"move_down":  {ActionMove, DirDown},

	"pause": {ActionPause, DirNone},
	"start": {ActionStart, DirNone},
	"reset": {ActionReset, DirNone},
	"mute":  {ActionMute, DirNone},
	"quit":  {ActionQuit, DirNone},
}

// ApplyBindings overlays key-to-action-name bindings onto the rune table
// Keys must be a single character; unknown names are rejected
func (kt *KeyTable) ApplyBindings(bindings map[string]string) error {
	for key, name := range bindings {
		r, size := utf8.DecodeRuneInString(key)
		if r == utf8.RuneError || size != len(key) {
			return fmt.Errorf("binding %q: key must be a single character", key)
		}
		entry, ok := actionRegistry[name]
		if !ok {
			return fmt.Errorf("binding %q: unknown action %q", key, name)
		}
		if entry.Action == ActionNone {
			delete(kt.Runes, r)
			continue
		}
		kt.Runes[r] = entry
	}
	return nil
}
