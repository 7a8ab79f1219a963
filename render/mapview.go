package render

import (
	"github.com/lixenwraith/clinic-walk/layout"
	"github.com/lixenwraith/clinic-walk/minimap"
)

var (
	rgbMapBg   = RGB{15, 17, 26}
	rgbMapRoom = RGB{65, 72, 104}
)

// MinimapState is the per-frame minimap model
type MinimapState struct {
	Layout        *layout.Layout
	X, Z, Yaw     float64
	HeadingLocked bool
	// TargetKey is highlighted, typically the assigned consult room
	TargetKey string
}

// DrawMinimap draws room footprints and the player into the w x h panel at (x, y)
func DrawMinimap(buf *Buffer, x, y, w, h int, s MinimapState) {
	buf.Fill(x, y, x+w-1, y+h-1, rgbMapBg)
	if s.Layout == nil || w < 3 || h < 3 {
		return
	}
	proj := minimap.New(s.Layout.FloorSize, float64(w-2), float64(h-2), 1)

	plot := func(p minimap.Point, r rune, fg, bg RGB) {
		if !proj.Contains(p) {
			return
		}
		px, py := x+int(p.X), y+int(p.Y)
		if px >= x+w-1 || py >= y+h-1 {
			return
		}
		buf.Set(px, py, r, fg, bg)
	}

	for i := range s.Layout.Rooms {
		room := &s.Layout.Rooms[i]
		c := rgbMapRoom
		if room.Key == s.TargetKey {
			c = RGBTarget
		}

		if !s.HeadingLocked {
			rr := proj.RoomRect(room)
			x0, y0 := x+int(rr.X), y+int(rr.Y)
			x1, y1 := max(x+int(rr.X+rr.W)-1, x0), max(y+int(rr.Y+rr.H)-1, y0)
			buf.Fill(max(x0, x+1), max(y0, y+1), min(x1, x+w-2), min(y1, y+h-2), c)
			continue
		}

		// Rotated footprints are sampled at sub-cell spacing
		b := room.Bounds()
		stepW := 0.5 / proj.UniformScale()
		for wz := b.MinZ; wz <= b.MaxZ; wz += stepW {
			for wx := b.MinX; wx <= b.MaxX; wx += stepW {
				plot(proj.HeadingLocked(wx, wz, s.X, s.Z, s.Yaw), ' ', RGBWhite, c)
			}
		}
	}

	if s.HeadingLocked {
		c := proj.Center()
		buf.SetRune(x+int(c.X), y+int(c.Y), '▲', RGBPlayer)
		return
	}
	p := proj.Project(s.X, s.Z)
	if proj.Contains(p) {
		buf.SetRune(x+int(p.X), y+int(p.Y), '●', RGBPlayer)
	}
}
