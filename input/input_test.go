package input

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestActionNames(t *testing.T) {
	for name, a := range actionRegistry {
		if got := a.String(); got != name {
			t.Errorf("%v.String() = %q, want %q", a, got, name)
		}
		if back, ok := ActionByName(" " + name + " "); !ok || back != a {
			t.Errorf("ActionByName(%q) = %v, %v", name, back, ok)
		}
	}
	if _, ok := ActionByName("jump"); ok {
		t.Error("jump resolved")
	}
}

func TestResolve(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
		run  bool
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ActionForward, false},
		{"shifted rune runs", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModShift), ActionForward, true},
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionForward, false},
		{"shifted arrow runs", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), ActionForward, true},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone, false},
		{"quit", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModNone), ActionQuit, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, run := km.Resolve(tt.ev)
			if a != tt.want || run != tt.run {
				t.Errorf("Resolve = (%v, %v), want (%v, %v)", a, run, tt.want, tt.run)
			}
		})
	}
}

func TestLoadKeyMap(t *testing.T) {
	data := []byte(`
keys:
  k: forward
  space: none
special:
  Up: back
`)
	override, err := LoadKeyMap(data)
	if err != nil {
		t.Fatalf("LoadKeyMap: %v", err)
	}
	if override.Runes['k'] != ActionForward || override.Keys[tcell.KeyUp] != ActionBack {
		t.Fatalf("unexpected override %+v", override)
	}

	km := MergeKeyMap(DefaultKeyMap(), override)
	if km.Runes['k'] != ActionForward {
		t.Error("override binding missing")
	}
	if _, ok := km.Runes[' ']; ok {
		t.Error("none did not unbind space")
	}
	if km.Keys[tcell.KeyUp] != ActionBack {
		t.Error("special override missing")
	}
	if km.Runes['w'] != ActionForward {
		t.Error("default binding lost in merge")
	}
	if DefaultKeyMap().Runes[' '] != ActionInteract {
		t.Error("merge mutated the defaults")
	}
}

func TestLoadKeyMapErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		unknown bool
	}{
		{"unknown action", "keys:\n  w: fly\n", true},
		{"unknown special action", "special:\n  up: fly\n", true},
		{"bad rune", "keys:\n  ww: forward\n", false},
		{"bad special key", "special:\n  nokey: forward\n", false},
		{"malformed", "keys: [", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyMap([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrUnknownAction); got != tt.unknown {
				t.Errorf("errors.Is(ErrUnknownAction) = %v, want %v (%v)", got, tt.unknown, err)
			}
		})
	}
}

func TestHeldKeysExpiry(t *testing.T) {
	h := NewHeldKeys()
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	h.Press(ActionForward, t0)
	h.Expire(t0.Add(InitialHold - time.Millisecond))
	if !h.Down(ActionForward) {
		t.Fatal("released before the auto-repeat delay")
	}

	// Repeat extends only by the repeat interval, never shortening the hold
	h.Press(ActionForward, t0.Add(InitialHold-time.Millisecond))
	h.Expire(t0.Add(InitialHold - time.Millisecond + RepeatHold - time.Millisecond))
	if !h.Down(ActionForward) {
		t.Fatal("repeat did not extend the hold")
	}

	h.Expire(t0.Add(InitialHold + RepeatHold))
	if h.Down(ActionForward) || h.Len() != 0 {
		t.Error("hold did not expire")
	}
}

func TestHeldKeysIgnoresNone(t *testing.T) {
	h := NewHeldKeys()
	h.Press(ActionNone, time.Now())
	if h.Len() != 0 {
		t.Error("ActionNone was held")
	}
}

func TestTrackerRisingEdge(t *testing.T) {
	h := NewHeldKeys()
	tr := NewTracker()
	now := time.Now()

	h.Press(ActionInteract, now)
	tr.Update(h)
	if !tr.Pressed(ActionInteract) {
		t.Fatal("first frame did not fire")
	}

	// Still held: no new edge
	h.Press(ActionInteract, now)
	tr.Update(h)
	if tr.Pressed(ActionInteract) {
		t.Error("held key fired twice")
	}

	h.Release(ActionInteract)
	tr.Update(h)
	h.Press(ActionInteract, now)
	tr.Update(h)
	if !tr.Pressed(ActionInteract) {
		t.Error("press after release did not fire")
	}
}

func TestTrackerReset(t *testing.T) {
	h := NewHeldKeys()
	tr := NewTracker()
	h.Press(ActionInteract, time.Now())
	tr.Reset(h)
	tr.Update(h)
	if tr.Pressed(ActionInteract) {
		t.Error("key held across reset fired")
	}
}
