package geometry

import (
	"strings"

	"github.com/lixenwraith/clinic-walk/layout"
	"github.com/lixenwraith/clinic-walk/vmath"
)

// Staff figures stand behind the counters and inside each consult room
var npcSpots = []struct {
	key    string
	prefix bool
	dx, dz float64
	color  string
}{
	{"registration", false, 0.5, 1.6, "#7db4ff"},
	{"pharmacy", false, 0.5, 1.6, "#7de0a6"},
	{"consult", true, 0.2, 0.2, "#ffb3bf"},
}

func npcPiece(l *layout.Layout) Piece {
	var p Piece
	for _, spot := range npcSpots {
		for i := range l.Rooms {
			r := &l.Rooms[i]
			if spot.prefix && !strings.HasPrefix(r.Key, spot.key) || !spot.prefix && r.Key != spot.key {
				continue
			}
			x, z := r.X+spot.dx, r.Z+spot.dz
			p.Boxes = append(p.Boxes,
				Box{Center: vmath.Vec3F{X: x, Y: 0.9, Z: z}, Size: vmath.Vec3F{X: 0.6, Y: 1.2, Z: 0.4}, Color: spot.color, Tag: TagNPC, Room: r.Key},
				Box{Center: vmath.Vec3F{X: x, Y: 1.7, Z: z}, Size: vmath.Vec3F{X: 0.45, Y: 0.45, Z: 0.45}, Color: ColorNPCHead, Tag: TagNPC, Room: r.Key},
			)
		}
	}
	return p
}
