package geometry

import (
	"github.com/lixenwraith/clinic-walk/layout"
	"github.com/lixenwraith/clinic-walk/vmath"
)

// Tag classifies primitives so renderers can style or skip them
type Tag uint8

const (
	TagNone Tag = iota
	TagFloor
	TagBorder
	TagCorridor
	TagRoomFloor
	TagWall
	TagFurniture
	TagFallback
	TagNPC
	TagDoorSign
	TagSign
)

// Palette
const (
	ColorFloor     = "#f1f5fb"
	ColorBorder    = "#c6d6e6"
	ColorCorridor  = "#dfe6eb"
	ColorRoomFloor = "#f4f6f8"
	ColorWall      = "#cfd7df"
	ColorFallback  = "#ff6b6b"
	ColorNPCHead   = "#ffe1bd"
)

// Box is an axis-aligned solid at Center with full extents Size
type Box struct {
	Center vmath.Vec3F
	Size   vmath.Vec3F
	Color  string
	Tag    Tag
	Room   string
}

// Plane is a horizontal rectangle at height Center.Y
type Plane struct {
	Center vmath.Vec3F
	W, H   float64
	Color  string
	Tag    Tag
	Room   string
}

// Label is text anchored at a world point
type Label struct {
	At   vmath.Vec3F
	Text string
	Tag  Tag
	Room string
}

// Collider is a static box volume for the physics collaborator
type Collider struct {
	Center      vmath.Vec3F
	HalfExtents vmath.Vec3F
}

// BoxCollider matches a box of full size at center
func BoxCollider(center, size vmath.Vec3F) Collider {
	return Collider{Center: center, HalfExtents: vmath.V3FScale(size, 0.5)}
}

// Scene is the full primitive set for one layout state
type Scene struct {
	Boxes     []Box
	Planes    []Plane
	Labels    []Label
	Colliders []Collider
}

func (s *Scene) add(p Piece) {
	s.Boxes = append(s.Boxes, p.Boxes...)
	s.Planes = append(s.Planes, p.Planes...)
	s.Labels = append(s.Labels, p.Labels...)
	s.Colliders = append(s.Colliders, p.Colliders...)
}

// Piece is a fragment of a scene
type Piece = Scene

const (
	doorSignHeight = 1.6
	doorSignOut    = 0.14
	floorColliderH = 0.1
)

// BuildScene derives every primitive and static collider for a layout
func BuildScene(l *layout.Layout) Scene {
	cfg := l.Config()
	var s Scene

	s.add(worldBounds(cfg))

	for _, c := range l.Corridors {
		s.Planes = append(s.Planes, Plane{
			Center: vmath.Vec3F{X: c.X, Y: 0.01, Z: c.Z},
			W:      c.W,
			H:      c.H,
			Color:  ColorCorridor,
			Tag:    TagCorridor,
		})
	}

	for i := range l.Rooms {
		r := &l.Rooms[i]
		s.add(roomPiece(r, cfg))
		for _, f := range r.Furniture {
			s.add(FurniturePiece(r, f))
		}
	}

	s.add(npcPiece(l))

	return s
}

func worldBounds(cfg layout.WorldConfig) Piece {
	t, wh := cfg.WallThickness, cfg.WallHeight
	w, h := cfg.FloorSize.W, cfg.FloorSize.H

	p := Piece{
		Planes: []Plane{{Center: vmath.Vec3F{}, W: w, H: h, Color: ColorFloor, Tag: TagFloor}},
		Colliders: []Collider{
			BoxCollider(vmath.Vec3F{}, vmath.Vec3F{X: w, Y: floorColliderH, Z: h}),
		},
	}

	borders := []struct{ center, size vmath.Vec3F }{
		{vmath.Vec3F{Y: wh / 2, Z: -h / 2}, vmath.Vec3F{X: w, Y: wh, Z: t}},
		{vmath.Vec3F{Y: wh / 2, Z: h / 2}, vmath.Vec3F{X: w, Y: wh, Z: t}},
		{vmath.Vec3F{X: -w / 2, Y: wh / 2}, vmath.Vec3F{X: t, Y: wh, Z: h}},
		{vmath.Vec3F{X: w / 2, Y: wh / 2}, vmath.Vec3F{X: t, Y: wh, Z: h}},
	}
	for _, b := range borders {
		p.Boxes = append(p.Boxes, Box{Center: b.center, Size: b.size, Color: ColorBorder, Tag: TagBorder})
		p.Colliders = append(p.Colliders, BoxCollider(b.center, b.size))
	}
	return p
}

func roomPiece(r *layout.Room, cfg layout.WorldConfig) Piece {
	t := cfg.WallThickness
	p := Piece{
		Planes: []Plane{{
			Center: vmath.Vec3F{X: r.X, Y: 0.005, Z: r.Z},
			W:      r.W - t*1.5,
			H:      r.H - t*1.5,
			Color:  ColorRoomFloor,
			Tag:    TagRoomFloor,
			Room:   r.Key,
		}},
	}

	for _, w := range RoomWalls(r, cfg) {
		box := w.Box
		box.Room = r.Key
		p.Boxes = append(p.Boxes, box)
		p.Colliders = append(p.Colliders, w.Collider)
	}

	for _, d := range r.Doors {
		x, z := DoorPoint(r, d, doorSignOut+t/2)
		p.Labels = append(p.Labels, Label{
			At:   vmath.Vec3F{X: x, Y: doorSignHeight, Z: z},
			Text: r.Name,
			Tag:  TagDoorSign,
			Room: r.Key,
		})
	}
	return p
}
