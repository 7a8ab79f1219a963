// Package layout holds the declarative floor plan model and the sanitizer that
// turns raw, possibly hostile data into a canonical Layout.
package layout

import (
	"strings"

	"github.com/lixenwraith/clinic-walk/vmath"
)

// Side identifies a room wall. North is -Z, South is +Z, West is -X, East is +X
type Side uint8

const (
	SideN Side = iota
	SideS
	SideE
	SideW
)

var sideNames = [...]string{SideN: "N", SideS: "S", SideE: "E", SideW: "W"}

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return "N"
}

// Horizontal reports whether the wall runs along X (N and S walls)
func (s Side) Horizontal() bool {
	return s == SideN || s == SideS
}

// Normal returns the outward unit normal of the wall on the XZ plane
func (s Side) Normal() (float64, float64) {
	switch s {
	case SideS:
		return 0, 1
	case SideE:
		return 1, 0
	case SideW:
		return -1, 0
	default:
		return 0, -1
	}
}

// ParseSide accepts N/S/E/W in any case
func ParseSide(s string) (Side, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N":
		return SideN, true
	case "S":
		return SideS, true
	case "E":
		return SideE, true
	case "W":
		return SideW, true
	}
	return SideN, false
}

// FurnitureKind is the closed set of furniture categories
type FurnitureKind uint8

const (
	KindUnknown FurnitureKind = iota
	KindBench
	KindCounter
	KindKiosk
	KindDesk
	KindChair
	KindCabinet
	KindShelf
	KindScreen
	KindBed
	KindTable
	KindPartition
	KindCarpet
	KindBenchLab
	KindSign

	kindCount
)

// unknownKindName is what an unrecognized category serializes back to
const unknownKindName = "__unknown__"

var kindNames = [kindCount]string{
	KindUnknown:   unknownKindName,
	KindBench:     "bench",
	KindCounter:   "counter",
	KindKiosk:     "kiosk",
	KindDesk:      "desk",
	KindChair:     "chair",
	KindCabinet:   "cabinet",
	KindShelf:     "shelf",
	KindScreen:    "screen",
	KindBed:       "bed",
	KindTable:     "table",
	KindPartition: "partition",
	KindCarpet:    "carpet",
	KindBenchLab:  "benchLab",
	KindSign:      "sign",
}

func (k FurnitureKind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return unknownKindName
}

// Kinds lists every furniture kind including KindUnknown
func Kinds() []FurnitureKind {
	out := make([]FurnitureKind, 0, kindCount)
	for k := FurnitureKind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind maps a category name to its kind; unknown names yield KindUnknown, false
func ParseKind(name string) (FurnitureKind, bool) {
	for k := KindBench; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindUnknown, false
}

// Size is a floor extent in meters
type Size struct {
	W, H float64
}

// Door is an opening in one wall. Offset runs from the wall's min corner along its length
type Door struct {
	Side   Side
	Offset float64
	Width  float64
}

// Furniture is positioned relative to its room center
type Furniture struct {
	Kind  FurnitureKind
	X, Z  float64
	W, H  float64
	Y     float64
	Label string
}

// Room is an enclosed rectangle. Key is stable across randomization, geometry is not
type Room struct {
	Key       string
	Name      string
	X, Z      float64
	W, H      float64
	Doors     []Door
	Furniture []Furniture
}

// Bounds returns the room footprint
func (r *Room) Bounds() vmath.Rect {
	return vmath.RectCentered(r.X, r.Z, r.W, r.H)
}

// Contains tests a world point against the room footprint
func (r *Room) Contains(px, pz float64) bool {
	return Contains(px, pz, r.X, r.Z, r.W, r.H)
}

// WallLength returns the length of the wall on side s
func (r *Room) WallLength(s Side) float64 {
	if s.Horizontal() {
		return r.W
	}
	return r.H
}

// FirstFurniture returns the first furniture item of kind k, if any
func (r *Room) FirstFurniture(k FurnitureKind) (Furniture, bool) {
	for _, f := range r.Furniture {
		if f.Kind == k {
			return f, true
		}
	}
	return Furniture{}, false
}

// Corridor is an open walkable rectangle. It has no walls and no collider
type Corridor struct {
	X, Z float64
	W, H float64
}

// Bounds returns the corridor footprint
func (c Corridor) Bounds() vmath.Rect {
	return vmath.RectCentered(c.X, c.Z, c.W, c.H)
}

// Group names rooms whose geometry may be swapped with each other
type Group struct {
	Name  string
	Salt  uint32
	Rooms []string
}

// WorldConfig is the read-only view shared by geometry consumers
type WorldConfig struct {
	WallHeight    float64
	WallThickness float64
	FloorSize     Size
}

// Layout is a sanitized floor plan
type Layout struct {
	Name          string
	FloorSize     Size
	WallHeight    float64
	WallThickness float64
	Rooms         []Room
	Corridors     []Corridor
	Groups        []Group
}

// Config derives the shared world configuration
func (l *Layout) Config() WorldConfig {
	return WorldConfig{
		WallHeight:    l.WallHeight,
		WallThickness: l.WallThickness,
		FloorSize:     l.FloorSize,
	}
}

// Room returns a pointer into the room slice, nil when the key is absent
func (l *Layout) Room(key string) *Room {
	for i := range l.Rooms {
		if l.Rooms[i].Key == key {
			return &l.Rooms[i]
		}
	}
	return nil
}

// RoomsWithPrefix returns rooms whose key starts with prefix, in declaration order
func (l *Layout) RoomsWithPrefix(prefix string) []*Room {
	var out []*Room
	for i := range l.Rooms {
		if strings.HasPrefix(l.Rooms[i].Key, prefix) {
			out = append(out, &l.Rooms[i])
		}
	}
	return out
}

// Clone deep copies the layout so shuffling a copy never touches the original
func (l *Layout) Clone() Layout {
	out := *l
	out.Rooms = nil
	for _, r := range l.Rooms {
		r.Doors = append([]Door(nil), r.Doors...)
		r.Furniture = append([]Furniture(nil), r.Furniture...)
		out.Rooms = append(out.Rooms, r)
	}
	out.Corridors = append([]Corridor(nil), l.Corridors...)
	out.Groups = nil
	for _, g := range l.Groups {
		g.Rooms = append([]string(nil), g.Rooms...)
		out.Groups = append(out.Groups, g)
	}
	return out
}

// Contains is the closed AABB test: the point lies within [center-extent/2, center+extent/2] on both axes
func Contains(px, pz, x, z, w, h float64) bool {
	return px >= x-w/2 && px <= x+w/2 && pz >= z-h/2 && pz <= z+h/2
}
