package input

// Action is a gameplay command resolved from a key event
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionShoot
	ActionLeft
	ActionRight
)

// actionNames maps canonical config names to actions
var actionNames = map[string]Action{
	"quit":  ActionQuit,
	"shoot": ActionShoot,
	"left":  ActionLeft,
	"right": ActionRight,
}

// String returns the canonical config name
func (a Action) String() string {
	for name, act := range actionNames {
		if act == a {
			return name
		}
	}
	return "none"
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionNames[name]
	return a, ok
}
