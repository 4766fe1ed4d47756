package input

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// KeyMap lists key names per action. Names are frontend-neutral ("left", "a", "space",
// "enter", "esc", "ctrl-c"); each frontend resolves them to its own key codes
type KeyMap struct {
	Left  []string `toml:"left"`
	Right []string `toml:"right"`
	Shoot []string `toml:"shoot"`
	Start []string `toml:"start"`
	Quit  []string `toml:"quit"`
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  []string{"left", "a"},
		Right: []string{"right", "d"},
		Shoot: []string{"space"},
		Start: []string{"enter"},
		Quit:  []string{"esc", "ctrl-c", "q"},
	}
}

// LoadKeyConfig decodes a standalone TOML keymap over the defaults
// Sections absent from data keep their default bindings
func LoadKeyConfig(data []byte) (KeyMap, error) {
	km := DefaultKeyMap()
	md, err := toml.Decode(string(data), &km)
	if err != nil {
		return KeyMap{}, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		key := undecoded[0]
		if _, err := ActionByName(key[0]); err != nil {
			return KeyMap{}, fmt.Errorf("keymap: %w", err)
		}
		return KeyMap{}, fmt.Errorf("keymap: unexpected key %q", key.String())
	}
	if err := km.Validate(); err != nil {
		return KeyMap{}, err
	}
	return km, nil
}

// Bindings flattens the map into normalized key name → action pairs
// Returns error when one key is bound to two different actions
func (km KeyMap) Bindings() (map[string]Action, error) {
	result := make(map[string]Action)
	sections := []struct {
		action Action
		keys   []string
	}{
		{ActionLeft, km.Left},
		{ActionRight, km.Right},
		{ActionShoot, km.Shoot},
		{ActionBegin, km.Start},
		{ActionQuit, km.Quit},
	}

	for _, sec := range sections {
		for _, raw := range sec.keys {
			name := NormalizeKeyName(raw)
			if name == "" {
				return nil, fmt.Errorf("[%s] empty key name", sec.action)
			}
			if prev, ok := result[name]; ok && prev != sec.action {
				return nil, fmt.Errorf("key %q bound to both %s and %s", name, prev, sec.action)
			}
			result[name] = sec.action
		}
	}
	return result, nil
}

// Validate checks that every action has a key and no key is shared
func (km KeyMap) Validate() error {
	if len(km.Start) == 0 {
		return fmt.Errorf("keymap: start has no keys")
	}
	if len(km.Quit) == 0 {
		return fmt.Errorf("keymap: quit has no keys")
	}
	_, err := km.Bindings()
	return err
}

// NormalizeKeyName lowercases and folds aliases so "Space", " " and "space" match
func NormalizeKeyName(s string) string {
	if s == " " {
		return "space"
	}
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "escape":
		return "esc"
	case "return":
		return "enter"
	case "arrowleft":
		return "left"
	case "arrowright":
		return "right"
	}
	return s
}
