package layout

import (
	"fmt"
	"hash/fnv"

	"github.com/lixenwraith/clinic-walk/vmath"
)

// Defaults substituted for missing or unusable values
const (
	DefaultName          = "Klinik Kesihatan Titiwangsa (Approx)"
	DefaultWallHeight    = 3.0
	DefaultWallThickness = 0.2
	DefaultFloorW        = 60.0
	DefaultFloorH        = 40.0

	DefaultRoomSize = 4.0
	MinRoomSize     = 1.0
	MaxRoomSize     = 50.0

	DefaultDoorOffset = 0.5
	MinDoorOffset     = 0.0
	MaxDoorOffset     = 100.0
	DefaultDoorWidth  = 1.0
	MinDoorWidth      = 0.8
	MaxDoorWidth      = 5.0

	DefaultCorridorSize = 2.0
	MinCorridorSize     = 1.0
	MaxCorridorSize     = 60.0

	DefaultFurnitureSize = 1.0
)

// Sanitize validates raw data into a canonical layout. It never fails: non-finite
// or missing numbers take defaults, out-of-range values are clamped and unknown
// categorical values are replaced. The input is not modified
func Sanitize(raw RawLayout) (Layout, WorldConfig) {
	l := Layout{
		Name:          raw.Name,
		WallHeight:    positiveOr(raw.WallHeight, DefaultWallHeight),
		WallThickness: positiveOr(raw.WallThickness, DefaultWallThickness),
		FloorSize:     Size{W: DefaultFloorW, H: DefaultFloorH},
	}
	if l.Name == "" {
		l.Name = DefaultName
	}
	if fs := raw.FloorSize; fs != nil && positive(fs.W) && positive(fs.H) {
		l.FloorSize = Size{W: *fs.W, H: *fs.H}
	}

	for _, c := range raw.Corridors {
		l.Corridors = append(l.Corridors, Corridor{
			X: finiteOr(c.X, 0),
			Z: finiteOr(c.Z, 0),
			W: vmath.Clamp(finiteOr(c.W, DefaultCorridorSize), MinCorridorSize, MaxCorridorSize),
			H: vmath.Clamp(finiteOr(c.H, DefaultCorridorSize), MinCorridorSize, MaxCorridorSize),
		})
	}

	seen := make(map[string]bool, len(raw.Rooms))
	for i, r := range raw.Rooms {
		room := Room{
			Key:  uniqueKey(r.Key, i, seen),
			Name: r.Name,
			X:    finiteOr(r.X, 0),
			Z:    finiteOr(r.Z, 0),
			W:    vmath.Clamp(finiteOr(r.W, DefaultRoomSize), MinRoomSize, MaxRoomSize),
			H:    vmath.Clamp(finiteOr(r.H, DefaultRoomSize), MinRoomSize, MaxRoomSize),
		}
		if room.Name == "" {
			room.Name = fmt.Sprintf("Room %d", i+1)
		}
		for _, d := range r.Doors {
			room.Doors = append(room.Doors, sanitizeDoor(d))
		}
		for _, f := range r.Furniture {
			room.Furniture = append(room.Furniture, sanitizeFurniture(f))
		}
		l.Rooms = append(l.Rooms, room)
	}

	l.Groups = sanitizeGroups(raw.Groups, seen)

	return l, l.Config()
}

func sanitizeDoor(d RawDoor) Door {
	side, _ := ParseSide(d.Side)
	return Door{
		Side:   side,
		Offset: vmath.Clamp(finiteOr(d.Offset, DefaultDoorOffset), MinDoorOffset, MaxDoorOffset),
		Width:  vmath.Clamp(finiteOr(d.Width, DefaultDoorWidth), MinDoorWidth, MaxDoorWidth),
	}
}

func sanitizeFurniture(f RawFurniture) Furniture {
	kind, _ := ParseKind(f.Type)
	return Furniture{
		Kind:  kind,
		X:     finiteOr(f.X, 0),
		Z:     finiteOr(f.Z, 0),
		W:     finiteOr(f.W, DefaultFurnitureSize),
		H:     finiteOr(f.H, DefaultFurnitureSize),
		Y:     finiteOr(f.Y, 0),
		Label: f.Label,
	}
}

// sanitizeGroups drops unknown room keys and keys already claimed by an earlier
// group, so a room can never be shuffled across two clusters
func sanitizeGroups(raw []RawGroup, rooms map[string]bool) []Group {
	var out []Group
	claimed := make(map[string]bool)
	for i, g := range raw {
		group := Group{Name: g.Name}
		if group.Name == "" {
			group.Name = fmt.Sprintf("group_%d", i)
		}
		if g.Salt != nil {
			group.Salt = *g.Salt
		} else {
			group.Salt = nameSalt(group.Name)
		}
		for _, key := range g.Rooms {
			if !rooms[key] || claimed[key] {
				continue
			}
			claimed[key] = true
			group.Rooms = append(group.Rooms, key)
		}
		if len(group.Rooms) == 0 {
			continue
		}
		out = append(out, group)
	}
	return out
}

func uniqueKey(key string, index int, seen map[string]bool) string {
	if key == "" {
		key = fmt.Sprintf("room_%d", index)
	}
	for seen[key] {
		key = fmt.Sprintf("%s_%d", key, index)
	}
	seen[key] = true
	return key
}

func nameSalt(name string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return h.Sum32()
}

func finiteOr(v *float64, d float64) float64 {
	if v == nil || !vmath.Finite(*v) {
		return d
	}
	return *v
}

func positive(v *float64) bool {
	return v != nil && vmath.Finite(*v) && *v > 0
}

func positiveOr(v *float64, d float64) float64 {
	if positive(v) {
		return *v
	}
	return d
}
