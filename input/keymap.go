package input

import (
	"fmt"
	"maps"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Rune aliases for keys that are awkward as bare YAML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyByName is the lowercase tcell key name table
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// KeyMap binds printable runes and special keys to actions
type KeyMap struct {
	Runes map[rune]Action
	Keys  map[tcell.Key]Action
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Runes: map[rune]Action{
			'w': ActionForward,
			's': ActionBack,
			'a': ActionStrafeLeft,
			'd': ActionStrafeRight,
			'j': ActionTurnLeft,
			'l': ActionTurnRight,
			'e': ActionInteract,
			' ': ActionInteract,
			'r': ActionReset,
			'n': ActionNewGame,
			'c': ActionClearBoard,
			'm': ActionToggleMinimap,
			'h': ActionToggleHeading,
			'x': ActionToggleMute,
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:    ActionForward,
			tcell.KeyDown:  ActionBack,
			tcell.KeyLeft:  ActionTurnLeft,
			tcell.KeyRight: ActionTurnRight,
			tcell.KeyEnter: ActionInteract,
			tcell.KeyF2:    ActionToggleDebug,
			tcell.KeyCtrlQ: ActionQuit,
			tcell.KeyCtrlC: ActionQuit,
			tcell.KeyEsc:   ActionQuit,
		},
	}
}

// Clone deep copies the key map
func (km *KeyMap) Clone() *KeyMap {
	return &KeyMap{Runes: maps.Clone(km.Runes), Keys: maps.Clone(km.Keys)}
}

// Resolve maps a key event to an action. Uppercase letters resolve through
// their lowercase binding and report run so Shift doubles as the run modifier
func (km *KeyMap) Resolve(ev *tcell.EventKey) (action Action, run bool) {
	if ev.Key() != tcell.KeyRune {
		return km.Keys[ev.Key()], ev.Modifiers()&tcell.ModShift != 0
	}
	r := ev.Rune()
	if a, ok := km.Runes[r]; ok {
		return a, false
	}
	if unicode.IsUpper(r) {
		return km.Runes[unicode.ToLower(r)], true
	}
	return ActionNone, false
}

// keymapFile is the YAML shape of a keymap override:
//
//	keys:
//	  w: forward
//	  space: interact
//	special:
//	  up: forward
//	  ctrl-q: none
type keymapFile struct {
	Keys    map[string]string `yaml:"keys"`
	Special map[string]string `yaml:"special"`
}

// LoadKeyMap parses YAML keymap data into a sparse override map. Only the
// entries present are populated
func LoadKeyMap(data []byte) (*KeyMap, error) {
	var f keymapFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	km := &KeyMap{}
	if len(f.Keys) > 0 {
		km.Runes = make(map[rune]Action, len(f.Keys))
		for keyStr, name := range f.Keys {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			a, err := resolveAction(name)
			if err != nil {
				return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
			}
			km.Runes[r] = a
		}
	}
	if len(f.Special) > 0 {
		km.Keys = make(map[tcell.Key]Action, len(f.Special))
		for keyStr, name := range f.Special {
			k, ok := keyByName[strings.ToLower(keyStr)]
			if !ok {
				return nil, fmt.Errorf("[special] unknown key name: %q", keyStr)
			}
			a, err := resolveAction(name)
			if err != nil {
				return nil, fmt.Errorf("[special] key %q: %w", keyStr, err)
			}
			km.Keys[k] = a
		}
	}
	return km, nil
}

func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

func resolveAction(name string) (Action, error) {
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}

// MergeKeyMap returns base overridden by override. ActionNone entries delete the key
func MergeKeyMap(base, override *KeyMap) *KeyMap {
	result := base.Clone()
	if result.Runes == nil {
		result.Runes = make(map[rune]Action)
	}
	if result.Keys == nil {
		result.Keys = make(map[tcell.Key]Action)
	}
	mergeInto(result.Runes, override.Runes)
	mergeInto(result.Keys, override.Keys)
	return result
}

func mergeInto[K comparable](base, override map[K]Action) {
	for k, a := range override {
		if a == ActionNone {
			delete(base, k)
		} else {
			base[k] = a
		}
	}
}
