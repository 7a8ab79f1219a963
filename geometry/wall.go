// Package geometry derives renderable primitives and collision volumes from a
// sanitized layout. Everything here is pure and is re-run after each shuffle.
package geometry

import (
	"math"

	"github.com/lixenwraith/clinic-walk/layout"
	"github.com/lixenwraith/clinic-walk/vmath"
)

const (
	// DoorEdgeStub is the solid wall kept at both ends of a wall with an opening
	DoorEdgeStub = 0.2
	// MinDoorHalfWidth floors the opening half-width regardless of door width
	MinDoorHalfWidth = 0.4
	// MinSegmentLength drops degenerate slivers
	MinSegmentLength = 0.01
)

// Span is a solid stretch of wall measured from the wall's origin corner
type Span struct {
	Start, End float64
}

func (s Span) Length() float64 { return s.End - s.Start }

func (s Span) Mid() float64 { return (s.Start + s.End) / 2 }

// Segments splits a wall of the given length around an optional door opening.
// No door yields the full wall; a door yields up to two flanking spans
func Segments(length float64, door *layout.Door) []Span {
	if door == nil {
		if length < MinSegmentLength {
			return nil
		}
		return []Span{{0, length}}
	}

	half := math.Max(door.Width/2, MinDoorHalfWidth)
	if maxHalf := math.Max(0, length/2-DoorEdgeStub); half > maxHalf {
		half = maxHalf
	}

	lo, hi := DoorEdgeStub+half, length-DoorEdgeStub-half
	center := vmath.Clamp(door.Offset, 0, length)
	if lo <= hi {
		center = vmath.Clamp(center, lo, hi)
	} else {
		center = length / 2
	}

	var spans []Span
	if left := math.Max(center-half, 0); left > MinSegmentLength {
		spans = append(spans, Span{0, left})
	}
	if right := math.Max(length-(center+half), 0); right > MinSegmentLength {
		spans = append(spans, Span{length - right, length})
	}
	return spans
}

// Wall is one derived solid piece with its matching collider
type Wall struct {
	Room     string
	Side     layout.Side
	Box      Box
	Collider Collider
}

// RoomWalls derives the solid wall pieces of a room. When a side carries more
// than one door the last one declared wins
func RoomWalls(r *layout.Room, cfg layout.WorldConfig) []Wall {
	bySide := make(map[layout.Side]*layout.Door, len(r.Doors))
	for i := range r.Doors {
		bySide[r.Doors[i].Side] = &r.Doors[i]
	}

	b := r.Bounds()
	wh, t := cfg.WallHeight, cfg.WallThickness

	var walls []Wall
	for _, side := range []layout.Side{layout.SideN, layout.SideS, layout.SideW, layout.SideE} {
		length := r.WallLength(side)
		for _, span := range Segments(length, bySide[side]) {
			var center, size vmath.Vec3F
			switch side {
			case layout.SideN, layout.SideS:
				z := b.MinZ
				if side == layout.SideS {
					z = b.MaxZ
				}
				center = vmath.Vec3F{X: b.MinX + span.Mid(), Y: wh / 2, Z: z}
				size = vmath.Vec3F{X: span.Length(), Y: wh, Z: t}
			default:
				x := b.MinX
				if side == layout.SideE {
					x = b.MaxX
				}
				center = vmath.Vec3F{X: x, Y: wh / 2, Z: b.MinZ + span.Mid()}
				size = vmath.Vec3F{X: t, Y: wh, Z: span.Length()}
			}
			walls = append(walls, Wall{
				Room:     r.Key,
				Side:     side,
				Box:      Box{Center: center, Size: size, Color: ColorWall, Tag: TagWall},
				Collider: BoxCollider(center, size),
			})
		}
	}
	return walls
}

// DoorPoint returns the world point on the door's wall line at the door offset,
// pushed outward by out meters along the wall normal
func DoorPoint(r *layout.Room, d layout.Door, out float64) (float64, float64) {
	b := r.Bounds()
	off := vmath.Clamp(d.Offset, 0, r.WallLength(d.Side))
	switch d.Side {
	case layout.SideS:
		return b.MinX + off, b.MaxZ + out
	case layout.SideW:
		return b.MinX - out, b.MinZ + off
	case layout.SideE:
		return b.MaxX + out, b.MinZ + off
	default:
		return b.MinX + off, b.MinZ - out
	}
}

// CheckReachable lists rooms that would be sealed: no door on any side
func CheckReachable(l *layout.Layout) []string {
	var keys []string
	for i := range l.Rooms {
		if len(l.Rooms[i].Doors) == 0 {
			keys = append(keys, l.Rooms[i].Key)
		}
	}
	return keys
}
