package geometry

import (
	"testing"

	"github.com/lixenwraith/clinic-walk/layout"
)

func TestBuildSceneDefault(t *testing.T) {
	l, _ := layout.Default()
	s := BuildScene(&l)

	if len(s.Colliders) == 0 || len(s.Boxes) == 0 {
		t.Fatal("empty scene")
	}

	var floor, corridors, signs, npcs int
	for _, p := range s.Planes {
		switch p.Tag {
		case TagFloor:
			floor++
			if p.W != l.FloorSize.W || p.H != l.FloorSize.H {
				t.Errorf("floor %vx%v, want %vx%v", p.W, p.H, l.FloorSize.W, l.FloorSize.H)
			}
		case TagCorridor:
			corridors++
		}
	}
	for _, lb := range s.Labels {
		if lb.Tag == TagDoorSign {
			signs++
		}
	}
	for _, b := range s.Boxes {
		if b.Tag == TagNPC {
			npcs++
		}
		if b.Tag == TagFallback {
			t.Errorf("default layout produced a fallback box in %q", b.Room)
		}
	}

	if floor != 1 {
		t.Errorf("floor planes = %d, want 1", floor)
	}
	if corridors != len(l.Corridors) {
		t.Errorf("corridor planes = %d, want %d", corridors, len(l.Corridors))
	}

	var doors int
	for _, r := range l.Rooms {
		doors += len(r.Doors)
	}
	if signs != doors {
		t.Errorf("door signs = %d, want %d", signs, doors)
	}
	// registration, pharmacy and four consult rooms, body plus head each
	if npcs != 12 {
		t.Errorf("npc boxes = %d, want 12", npcs)
	}
}

func TestFurnitureEveryKind(t *testing.T) {
	r := &layout.Room{Key: "r", X: 1, Z: 2, W: 6, H: 6}
	for _, k := range layout.Kinds() {
		p := FurniturePiece(r, layout.Furniture{Kind: k, X: 0.5, Z: -0.5})
		if len(p.Boxes)+len(p.Planes)+len(p.Labels) == 0 {
			t.Errorf("%v produced nothing", k)
		}
		for _, b := range p.Boxes {
			if b.Center.X != 1.5 || b.Center.Z != 1.5 {
				t.Errorf("%v placed at (%v,%v), want room-relative (1.5,1.5)", k, b.Center.X, b.Center.Z)
			}
			if b.Size.X <= 0 || b.Size.Z <= 0 {
				t.Errorf("%v has non-positive footprint %+v", k, b.Size)
			}
		}
	}
}

func TestFurnitureUnknownIsFallback(t *testing.T) {
	p := FurniturePiece(&layout.Room{}, layout.Furniture{Kind: layout.KindUnknown})
	if len(p.Boxes) != 1 || p.Boxes[0].Color != ColorFallback || p.Boxes[0].Tag != TagFallback {
		t.Errorf("unknown kind: %+v", p.Boxes)
	}
}

func TestSignUsesLabel(t *testing.T) {
	p := FurniturePiece(&layout.Room{}, layout.Furniture{Kind: layout.KindSign, Label: "Farmasi"})
	if len(p.Labels) != 1 || p.Labels[0].Text != "Farmasi" {
		t.Errorf("sign label: %+v", p.Labels)
	}
	if len(p.Colliders) != 0 {
		t.Error("signs must not collide")
	}
}
