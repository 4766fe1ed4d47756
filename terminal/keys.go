package terminal

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skyfire/input"
)

// specialKeys names the non-rune keys a keymap may refer to
var specialKeys = map[tcell.Key]string{
	tcell.KeyLeft:   "left",
	tcell.KeyRight:  "right",
	tcell.KeyUp:     "up",
	tcell.KeyDown:   "down",
	tcell.KeyEnter:  "enter",
	tcell.KeyEscape: "esc",
	tcell.KeyCtrlC:  "ctrl-c",
	tcell.KeyCtrlQ:  "ctrl-q",
	tcell.KeyTab:    "tab",
}

// KeyName returns the normalized keymap name of a key event, or "" for unnamed keys
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return "space"
		}
		if !unicode.IsPrint(r) {
			return ""
		}
		return strings.ToLower(string(r))
	}
	if name, ok := specialKeys[ev.Key()]; ok {
		return name
	}
	return input.NormalizeKeyName(ev.Name())
}
