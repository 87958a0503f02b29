package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps key events to actions
type KeyTable struct {
	Keys  map[tcell.Key]Action
	Runes map[rune]Action
}

// DefaultKeyTable returns the stock bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyEscape: ActionQuit,
			tcell.KeyEnter:  ActionShoot,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
		},
		Runes: map[rune]Action{
			'q': ActionQuit,
			' ': ActionShoot,
		},
	}
}

// Resolve returns the action bound to ev, ActionNone if unbound.
// Modifiers are ignored.
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}

// unbind removes every binding to a
func (kt *KeyTable) unbind(a Action) {
	maps.DeleteFunc(kt.Keys, func(_ tcell.Key, v Action) bool { return v == a })
	maps.DeleteFunc(kt.Runes, func(_ rune, v Action) bool { return v == a })
}
