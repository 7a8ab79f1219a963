package input

import (
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Terminals deliver a press followed, after the auto-repeat delay, by repeats.
// A first press is held long enough to bridge that delay; each repeat only
// needs to bridge the repeat interval
const (
	InitialHold = 550 * time.Millisecond
	RepeatHold  = 120 * time.Millisecond
)

// HeldKeys is the set of actions currently considered down. Owned by the frame
// loop goroutine
type HeldKeys struct {
	held     mapset.Set[Action]
	deadline map[Action]time.Time
}

func NewHeldKeys() *HeldKeys {
	return &HeldKeys{
		held:     mapset.New[Action](),
		deadline: make(map[Action]time.Time),
	}
}

// Press marks a as down until its hold expires
func (h *HeldKeys) Press(a Action, now time.Time) {
	if a == ActionNone {
		return
	}
	hold := InitialHold
	if h.held.Has(a) {
		hold = RepeatHold
	}
	h.held.Put(a)
	if until := now.Add(hold); until.After(h.deadline[a]) {
		h.deadline[a] = until
	}
}

// Release drops a immediately
func (h *HeldKeys) Release(a Action) {
	h.held.Remove(a)
	delete(h.deadline, a)
}

// Expire releases every action whose hold has run out
func (h *HeldKeys) Expire(now time.Time) {
	for a, until := range h.deadline {
		if !now.Before(until) {
			h.Release(a)
		}
	}
}

// Down reports whether a is held
func (h *HeldKeys) Down(a Action) bool {
	return h.held.Has(a)
}

// Len returns the number of held actions
func (h *HeldKeys) Len() int {
	return h.held.Size()
}

// Reset releases everything
func (h *HeldKeys) Reset() {
	h.held = mapset.New[Action]()
	clear(h.deadline)
}
