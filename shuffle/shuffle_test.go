package shuffle

import (
	"reflect"
	"sort"
	"testing"

	"github.com/lixenwraith/clinic-walk/layout"
)

func TestMulberry32Golden(t *testing.T) {
	tests := []struct {
		seed uint32
		want []uint32
	}{
		{1, []uint32{2693262067, 11749833, 2265367787}},
		{0, []uint32{2693262067, 11749833, 2265367787}},
		{42, []uint32{2581720956, 1925393290, 3661312704}},
	}
	for _, tt := range tests {
		m := NewMulberry32(tt.seed)
		for i, want := range tt.want {
			if got := m.Uint32(); got != want {
				t.Errorf("seed %d output %d = %d, want %d", tt.seed, i, got, want)
			}
		}
	}
}

func TestMulberry32Range(t *testing.T) {
	m := NewMulberry32(7)
	for i := 0; i < 10000; i++ {
		if v := m.Float64(); v < 0 || v >= 1 {
			t.Fatalf("value %v outside [0,1)", v)
		}
	}
}

func TestPermIsPermutation(t *testing.T) {
	for seed := uint32(1); seed < 50; seed++ {
		p := NewMulberry32(seed).Perm(7)
		sorted := append([]int(nil), p...)
		sort.Ints(sorted)
		for i, v := range sorted {
			if v != i {
				t.Fatalf("seed %d: %v is not a permutation", seed, p)
			}
		}
	}
}

func consultRooms(l *layout.Layout) []*layout.Room {
	return l.RoomsWithPrefix("consult")
}

func footprints(rooms []*layout.Room) [][4]float64 {
	out := make([][4]float64, len(rooms))
	for i, r := range rooms {
		out[i] = [4]float64{r.X, r.Z, r.W, r.H}
	}
	return out
}

func TestRandomizeGroupDeterministic(t *testing.T) {
	base, _ := layout.Default()
	slots := Capture(consultRooms(&base))

	a, b := base.Clone(), base.Clone()
	RandomizeGroup(consultRooms(&a), slots, 1234)
	RandomizeGroup(consultRooms(&b), slots, 1234)

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different layouts")
	}
}

func TestRandomizeGroupPreservesSlots(t *testing.T) {
	base, _ := layout.Default()
	slots := Capture(consultRooms(&base))

	for seed := uint32(1); seed < 20; seed++ {
		l := base.Clone()
		rooms := consultRooms(&l)
		if !RandomizeGroup(rooms, slots, seed) {
			t.Fatal("matching group reported mismatch")
		}
		got := footprints(rooms)
		want := footprints(consultRooms(&base))
		sortFootprints(got)
		sortFootprints(want)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("seed %d: footprints %v are not a permutation of %v", seed, got, want)
		}
	}
}

func sortFootprints(f [][4]float64) {
	sort.Slice(f, func(i, j int) bool {
		if f[i][0] != f[j][0] {
			return f[i][0] < f[j][0]
		}
		return f[i][1] < f[j][1]
	})
}

func TestRandomizeGroupMismatchIsNoop(t *testing.T) {
	base, _ := layout.Default()
	slots := Capture(consultRooms(&base))

	l := base.Clone()
	rooms := consultRooms(&l)[:3]
	if RandomizeGroup(rooms, slots, 99) {
		t.Error("mismatch reported as applied")
	}
	if !reflect.DeepEqual(l, base) {
		t.Error("mismatched randomize mutated the layout")
	}
}

func TestRandomizeKeepsKeysAndFurniture(t *testing.T) {
	base, _ := layout.Default()
	group := []*layout.Room{base.Room("registration"), base.Room("pharmacy")}
	slots := Capture(group)

	l := base.Clone()
	rooms := []*layout.Room{l.Room("registration"), l.Room("pharmacy")}
	RandomizeGroup(rooms, slots, 5)

	for i, r := range rooms {
		if r.Key != group[i].Key || r.Name != group[i].Name {
			t.Errorf("room identity changed: %q/%q", r.Key, r.Name)
		}
		if !reflect.DeepEqual(r.Furniture, group[i].Furniture) {
			t.Errorf("%s furniture offsets changed", r.Key)
		}
	}
}

func TestSlotDoorsAreCopied(t *testing.T) {
	r := &layout.Room{Doors: []layout.Door{{Side: layout.SideE, Offset: 1, Width: 1}}}
	slots := Capture([]*layout.Room{r})
	r.Doors[0].Offset = 9
	if slots[0].Doors[0].Offset != 1 {
		t.Error("capture aliases the room's doors")
	}

	var target layout.Room
	slots[0].Assign(&target)
	target.Doors[0].Width = 4
	if slots[0].Doors[0].Width != 1 {
		t.Error("assign aliases the slot's doors")
	}
}

func TestEnsureDoorsTowardCorridors(t *testing.T) {
	tests := []struct {
		name      string
		corridors []layout.Corridor
		side      layout.Side
		offset    float64
	}{
		{"corridor due south", []layout.Corridor{{X: 0, Z: 10, W: 10, H: 2}}, layout.SideS, 2},
		{"corridor due east", []layout.Corridor{{X: 10, Z: 1, W: 2, H: 10}}, layout.SideE, 2},
		{"corridor west and low", []layout.Corridor{{X: -10, Z: 1.5, W: 2, H: 1}}, layout.SideW, 3},
		{"tie keeps north", []layout.Corridor{{X: 0, Z: -10, W: 10, H: 2}, {X: 0, Z: 10, W: 10, H: 2}}, layout.SideN, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &layout.Layout{
				Rooms:     []layout.Room{{Key: "r", W: 4, H: 4, Doors: []layout.Door{{Side: layout.SideN}, {Side: layout.SideW}}}},
				Corridors: tt.corridors,
			}
			EnsureDoorsTowardCorridors(l)

			doors := l.Rooms[0].Doors
			if len(doors) != 1 {
				t.Fatalf("got %d doors, want 1", len(doors))
			}
			if doors[0].Side != tt.side {
				t.Errorf("side = %v, want %v", doors[0].Side, tt.side)
			}
			if doors[0].Offset != tt.offset {
				t.Errorf("offset = %v, want %v", doors[0].Offset, tt.offset)
			}
			if doors[0].Width != 1.2 {
				t.Errorf("width = %v, want 1.2", doors[0].Width)
			}
		})
	}
}

func TestEnsureDoorsNoCorridors(t *testing.T) {
	doors := []layout.Door{{Side: layout.SideE, Offset: 1, Width: 2}}
	l := &layout.Layout{Rooms: []layout.Room{{Key: "r", W: 4, H: 4, Doors: doors}}}
	EnsureDoorsTowardCorridors(l)
	if !reflect.DeepEqual(l.Rooms[0].Doors, doors) {
		t.Errorf("doors changed without corridors: %+v", l.Rooms[0].Doors)
	}
}

func TestRepairWidthClamped(t *testing.T) {
	if w := RepairWidth(&layout.Room{W: 50, H: 50}); w != 2.2 {
		t.Errorf("large room width = %v, want 2.2", w)
	}
	if w := RepairWidth(&layout.Room{W: 20, H: 20}); w != 1.6 {
		t.Errorf("mid room width = %v, want 1.6", w)
	}
}

func TestDeriveSeed(t *testing.T) {
	if DeriveSeed(3, 12345, 1) != DeriveSeed(3, 345, 1) {
		t.Error("base should only contribute its value mod 1000")
	}
	if DeriveSeed(3, 7, 1) == DeriveSeed(3, 7, 2) {
		t.Error("salt does not separate groups")
	}
	if DeriveSeed(3, 7, 1) == DeriveSeed(4, 7, 1) {
		t.Error("counter does not change the seed")
	}
}

func TestShufflerApply(t *testing.T) {
	base, _ := layout.Default()
	s := NewShuffler(&base)

	a, b := base.Clone(), base.Clone()
	s.Apply(&a, 1, 42)
	s.Apply(&b, 1, 42)
	if !reflect.DeepEqual(a, b) {
		t.Error("apply is not deterministic for a fixed seed")
	}

	for _, r := range a.Rooms {
		if len(r.Doors) != 1 {
			t.Errorf("%s has %d doors after repair", r.Key, len(r.Doors))
		}
	}

	// Rooms outside every group keep their footprint
	for _, key := range []string{"cafeteria", "triage", "waitingA", "treatment"} {
		got, want := a.Room(key), base.Room(key)
		if got.X != want.X || got.Z != want.Z || got.W != want.W || got.H != want.H {
			t.Errorf("%s moved although ungrouped", key)
		}
	}
}
