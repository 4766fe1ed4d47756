package input

import (
	"fmt"
	"strings"
)

// Action is a bindable game action
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionShoot
	ActionBegin // start, or reset+start after game over
	ActionQuit
)

// actionRegistry maps canonical action names to actions
var actionRegistry = map[string]Action{
	"left":  ActionLeft,
	"right": ActionRight,
	"shoot": ActionShoot,
	"start": ActionBegin,
	"quit":  ActionQuit,
}

// String returns the canonical config name of the action
func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "none"
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, error) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// Opposite returns the direction that a press of a cancels
func (a Action) Opposite() Action {
	switch a {
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	}
	return ActionNone
}
