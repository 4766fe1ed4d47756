package window

import (
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/skyfire/input"
)

// namedKeys covers keymap names whose ebiten key name differs
var namedKeys = map[string]ebiten.Key{
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"space": ebiten.KeySpace,
	"enter": ebiten.KeyEnter,
	"esc":   ebiten.KeyEscape,
	"tab":   ebiten.KeyTab,
}

// KeyCode resolves a keymap name to an ebiten key
func KeyCode(name string) (ebiten.Key, bool) {
	name = input.NormalizeKeyName(name)
	if k, ok := namedKeys[name]; ok {
		return k, true
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return 0, false
	}
	return k, true
}

// ResolveKeys maps every action to its ebiten keys. Names without a window equivalent
// (terminal chords such as ctrl-c) are skipped; an action left with no key is an error
func ResolveKeys(km input.KeyMap) (map[input.Action][]ebiten.Key, error) {
	bindings, err := km.Bindings()
	if err != nil {
		return nil, fmt.Errorf("window keymap: %w", err)
	}

	keys := make(map[input.Action][]ebiten.Key, 5)
	for name, action := range bindings {
		k, ok := KeyCode(name)
		if !ok {
			log.Printf("window keymap: no key for %q, skipped", name)
			continue
		}
		keys[action] = append(keys[action], k)
	}

	if len(keys[input.ActionBegin]) == 0 {
		return nil, fmt.Errorf("window keymap: start has no usable key")
	}
	return keys, nil
}
