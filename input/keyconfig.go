package input

import (
	"fmt"
	"slices"
	"strings"
)

// BindKeys returns base with the given actions rebound.
// bindings maps action name to key names; a listed action loses its default keys.
// Key names are special key names ("left", "esc"), rune aliases ("space") or single characters.
func BindKeys(base *KeyTable, bindings map[string][]string) (*KeyTable, error) {
	kt := base.Clone()

	// Sorted for deterministic error reporting
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		action, err := resolveAction(name)
		if err != nil {
			return nil, err
		}
		kt.unbind(action)

		for _, keyStr := range bindings[name] {
			if err := kt.bind(keyStr, action); err != nil {
				return nil, fmt.Errorf("keys.%s: %w", name, err)
			}
		}
	}

	return kt, nil
}

func (kt *KeyTable) bind(keyStr string, a Action) error {
	lower := strings.ToLower(strings.TrimSpace(keyStr))

	if k, ok := nameToKey[lower]; ok {
		kt.Keys[k] = a
		return nil
	}

	r, err := resolveRune(keyStr)
	if err != nil {
		return err
	}
	kt.Runes[r] = a
	return nil
}

// resolveRune converts a key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected key name, single character or alias)", s)
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	a, ok := ActionByName(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}
