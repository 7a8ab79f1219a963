package shuffle

import (
	"math"

	"github.com/lixenwraith/clinic-walk/layout"
	"github.com/lixenwraith/clinic-walk/vmath"
)

const (
	minRepairWidth   = 1.2
	maxRepairWidth   = 2.2
	repairWidthRatio = 0.04
)

// RepairWidth is the single door width a repaired room receives
func RepairWidth(r *layout.Room) float64 {
	return vmath.Clamp((r.W+r.H)*repairWidthRatio, minRepairWidth, maxRepairWidth)
}

// EnsureDoorsTowardCorridors replaces the doors of every room with one door on
// the wall whose midpoint lies nearest to any corridor. Ties keep the first
// side in N, S, W, E order. Without corridors nothing changes
func EnsureDoorsTowardCorridors(l *layout.Layout) {
	if len(l.Corridors) == 0 {
		return
	}

	boxes := make([]vmath.Rect, len(l.Corridors))
	for i, c := range l.Corridors {
		boxes[i] = c.Bounds()
	}

	for i := range l.Rooms {
		r := &l.Rooms[i]
		b := r.Bounds()

		mids := []struct {
			side   layout.Side
			px, pz float64
		}{
			{layout.SideN, r.X, b.MinZ},
			{layout.SideS, r.X, b.MaxZ},
			{layout.SideW, b.MinX, r.Z},
			{layout.SideE, b.MaxX, r.Z},
		}

		best := math.Inf(1)
		door := layout.Door{Side: layout.SideN}
		for _, m := range mids {
			length := r.WallLength(m.side)
			for _, c := range boxes {
				nx, nz := c.ClosestPoint(m.px, m.pz)
				d := math.Hypot(nx-m.px, nz-m.pz)
				if d >= best {
					continue
				}
				off := nz - b.MinZ
				if m.side.Horizontal() {
					off = nx - b.MinX
				}
				best = d
				door = layout.Door{Side: m.side, Offset: vmath.Clamp(off, 0, length)}
			}
		}
		door.Width = RepairWidth(r)
		r.Doors = []layout.Door{door}
	}
}
