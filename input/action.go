// Package input maps terminal key events to walker actions and emulates held
// keys on terminals that never report key release.
package input

import (
	"errors"
	"strings"
)

// ErrUnknownAction is returned by keymap loading for an unrecognized action name
var ErrUnknownAction = errors.New("unknown action")

// Action is a logical control
type Action uint8

const (
	ActionNone Action = iota

	// Held controls
	ActionForward
	ActionBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight
	ActionRun
	ActionInteract

	// Commands
	ActionReset
	ActionNewGame
	ActionClearBoard
	ActionToggleMinimap
	ActionToggleHeading
	ActionToggleDebug
	ActionToggleMute
	ActionQuit

	actionCount
)

// actionRegistry maps canonical keymap names to actions
// "none" unbinds a key when merged over the defaults
var actionRegistry = map[string]Action{
	"none":           ActionNone,
	"forward":        ActionForward,
	"back":           ActionBack,
	"strafe_left":    ActionStrafeLeft,
	"strafe_right":   ActionStrafeRight,
	"turn_left":      ActionTurnLeft,
	"turn_right":     ActionTurnRight,
	"run":            ActionRun,
	"interact":       ActionInteract,
	"reset":          ActionReset,
	"new_game":       ActionNewGame,
	"clear_board":    ActionClearBoard,
	"toggle_minimap": ActionToggleMinimap,
	"toggle_heading": ActionToggleHeading,
	"toggle_debug":   ActionToggleDebug,
	"toggle_mute":    ActionToggleMute,
	"quit":           ActionQuit,
}

var actionNames [actionCount]string

func init() {
	for name, a := range actionRegistry {
		actionNames[a] = name
	}
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "none"
}

// Held reports whether the action is a continuous control rather than a command
func (a Action) Held() bool {
	return a >= ActionForward && a <= ActionInteract
}

// ActionByName resolves a keymap action name, case-insensitive
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}
