package geometry

import (
	"math"

	"github.com/lixenwraith/clinic-walk/layout"
	"github.com/lixenwraith/clinic-walk/vmath"
)

// FurniturePiece places one furniture item of a room in world space.
// Every layout.FurnitureKind has a case; KindUnknown renders as a red block
func FurniturePiece(r *layout.Room, f layout.Furniture) Piece {
	px, pz := r.X+f.X, r.Z+f.Z
	w, h := extent(f.W), extent(f.H)

	// solid builds a visible box at (y, height) with a collider at (cy, ch)
	solid := func(y, height float64, color string, cy, ch float64) Piece {
		return Piece{
			Boxes: []Box{{
				Center: vmath.Vec3F{X: px, Y: y, Z: pz},
				Size:   vmath.Vec3F{X: w, Y: height, Z: h},
				Color:  color,
				Tag:    TagFurniture,
				Room:   r.Key,
			}},
			Colliders: []Collider{{
				Center:      vmath.Vec3F{X: px, Y: cy, Z: pz},
				HalfExtents: vmath.Vec3F{X: w / 2, Y: ch / 2, Z: h / 2},
			}},
		}
	}

	switch f.Kind {
	case layout.KindBench:
		return solid(0.45, 0.4, "#9fb3c8", 0.45, 0.4)
	case layout.KindCounter:
		return solid(1, 1.2, "#b6c2cf", 0.6, 1.2)
	case layout.KindKiosk:
		return solid(0.8, 1.0, "#a9b8c7", 0.5, 1.0)
	case layout.KindShelf, layout.KindCabinet:
		return solid(1.1, 1.8, "#aab7c4", 0.9, 1.8)
	case layout.KindTable:
		// Top only is drawn; the collider covers the legs as one block
		return solid(0.78, 0.06, "#d0d7de", 0.4, 1.6)
	case layout.KindDesk:
		return solid(0.375, 0.75, "#c9b79c", 0.375, 0.75)
	case layout.KindChair:
		return solid(0.45, 0.9, "#8fa3b8", 0.45, 0.9)
	case layout.KindBenchLab:
		return solid(0.45, 0.9, "#b0bec5", 0.45, 0.9)
	case layout.KindBed:
		return solid(0.6, 0.5, "#dfe7ee", 0.25, 0.5)
	case layout.KindPartition, layout.KindScreen:
		color, depth := "#c7d0d9", 0.08
		if f.Kind == layout.KindScreen {
			color, depth = "#d5dde5", 0.05
		}
		return Piece{
			Boxes: []Box{{
				Center: vmath.Vec3F{X: px, Y: 1.0, Z: pz},
				Size:   vmath.Vec3F{X: w, Y: 2.0, Z: depth},
				Color:  color,
				Tag:    TagFurniture,
				Room:   r.Key,
			}},
			Colliders: []Collider{{
				Center:      vmath.Vec3F{X: px, Y: 1.0, Z: pz},
				HalfExtents: vmath.Vec3F{X: w / 2, Y: 1.0, Z: depth / 2},
			}},
		}
	case layout.KindCarpet:
		return Piece{Planes: []Plane{{
			Center: vmath.Vec3F{X: px, Y: 0.011, Z: pz},
			W:      w,
			H:      h,
			Color:  "#e9eef2",
			Tag:    TagFurniture,
			Room:   r.Key,
		}}}
	case layout.KindSign:
		text := f.Label
		if text == "" {
			text = "Signage"
		}
		return Piece{Labels: []Label{{
			At:   vmath.Vec3F{X: px, Y: 1.7, Z: pz},
			Text: text,
			Tag:  TagSign,
			Room: r.Key,
		}}}
	case layout.KindUnknown:
		p := solid(0.6, 1.2, ColorFallback, 0.6, 1.2)
		p.Boxes[0].Tag = TagFallback
		return p
	}

	// Unreachable while the switch covers every kind; keeps data errors visible
	p := solid(0.6, 1.2, ColorFallback, 0.6, 1.2)
	p.Boxes[0].Tag = TagFallback
	return p
}

// extent treats zero as unset, matching how furniture data omits sizes
func extent(v float64) float64 {
	v = math.Abs(v)
	if v == 0 {
		return 1
	}
	return v
}
