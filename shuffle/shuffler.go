package shuffle

import (
	"log"

	"github.com/lixenwraith/clinic-walk/layout"
)

// SeedMix is folded into every derived seed
const SeedMix uint32 = 0x9E3779B9

// DeriveSeed combines the new-game counter with a base term and a group salt.
// The base is wall-clock milliseconds in normal play and a fixed seed in
// reproducible sessions
func DeriveSeed(counter uint32, base uint64, salt uint32) uint32 {
	return (counter + uint32(base%1000)) ^ SeedMix ^ mixSalt(salt)
}

// mixSalt spreads small salts across all bits (murmur3 finalizer)
func mixSalt(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85EBCA6B
	h ^= h >> 13
	h *= 0xC2B2AE35
	h ^= h >> 16
	return h
}

type groupSlots struct {
	group layout.Group
	slots []Slot
}

// Shuffler holds the slots captured from a base layout and reapplies
// per-group permutations to fresh clones of it
type Shuffler struct {
	groups []groupSlots
}

// NewShuffler captures the slots of every declared group of base
func NewShuffler(base *layout.Layout) *Shuffler {
	s := &Shuffler{}
	for _, g := range base.Groups {
		s.groups = append(s.groups, groupSlots{
			group: g,
			slots: Capture(groupRooms(base, g)),
		})
	}
	return s
}

// Apply shuffles every group of l independently and then repairs doors.
// l must be a clone of the base layout the shuffler was built from
func (s *Shuffler) Apply(l *layout.Layout, counter uint32, base uint64) {
	for _, gs := range s.groups {
		rooms := groupRooms(l, gs.group)
		if !RandomizeGroup(rooms, gs.slots, DeriveSeed(counter, base, gs.group.Salt)) {
			log.Printf("shuffle: group %q has %d rooms for %d slots, skipped", gs.group.Name, len(rooms), len(gs.slots))
		}
	}
	EnsureDoorsTowardCorridors(l)
}

func groupRooms(l *layout.Layout, g layout.Group) []*layout.Room {
	rooms := make([]*layout.Room, 0, len(g.Rooms))
	for _, key := range g.Rooms {
		if r := l.Room(key); r != nil {
			rooms = append(rooms, r)
		}
	}
	return rooms
}
