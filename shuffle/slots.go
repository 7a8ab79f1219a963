package shuffle

import (
	"github.com/lixenwraith/clinic-walk/layout"
)

// Slot is a captured room footprint with its doors
type Slot struct {
	X, Z  float64
	W, H  float64
	Doors []layout.Door
}

// Capture deep copies the footprint of each room, in order
func Capture(rooms []*layout.Room) []Slot {
	slots := make([]Slot, len(rooms))
	for i, r := range rooms {
		slots[i] = Slot{
			X:     r.X,
			Z:     r.Z,
			W:     r.W,
			H:     r.H,
			Doors: append([]layout.Door(nil), r.Doors...),
		}
	}
	return slots
}

// Assign moves the room onto the slot. Furniture keeps its local offsets and
// so follows the room
func (s Slot) Assign(r *layout.Room) {
	r.X, r.Z, r.W, r.H = s.X, s.Z, s.W, s.H
	r.Doors = append([]layout.Door(nil), s.Doors...)
}

// RandomizeGroup gives room i the footprint of slot perm[i]. A length mismatch
// between rooms and slots leaves the rooms untouched and returns false
func RandomizeGroup(rooms []*layout.Room, slots []Slot, seed uint32) bool {
	if len(rooms) != len(slots) {
		return false
	}
	perm := NewMulberry32(seed).Perm(len(slots))
	for i, r := range rooms {
		slots[perm[i]].Assign(r)
	}
	return true
}
