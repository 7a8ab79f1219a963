package input

import (
	"github.com/zyedidia/generic/mapset"
)

// Tracker turns held state into rising edges, one frame at a time
type Tracker struct {
	prev  mapset.Set[Action]
	edges mapset.Set[Action]
}

func NewTracker() *Tracker {
	return &Tracker{prev: mapset.New[Action](), edges: mapset.New[Action]()}
}

// Update samples the held set for this frame
func (t *Tracker) Update(h *HeldKeys) {
	edges := mapset.New[Action]()
	cur := mapset.New[Action]()
	h.held.Each(func(a Action) {
		cur.Put(a)
		if !t.prev.Has(a) {
			edges.Put(a)
		}
	})
	t.prev, t.edges = cur, edges
}

// Pressed reports whether a went down since the previous Update
func (t *Tracker) Pressed(a Action) bool {
	return t.edges.Has(a)
}

// Reset forgets the previous frame so a still-held key does not fire again
// until released and pressed
func (t *Tracker) Reset(h *HeldKeys) {
	t.prev = mapset.New[Action]()
	h.held.Each(func(a Action) { t.prev.Put(a) })
	t.edges = mapset.New[Action]()
}
