package player

import (
	"github.com/lixenwraith/clinic-walk/geometry"
	"github.com/lixenwraith/clinic-walk/layout"
)

const (
	// AnchorRoom is the room whose door the walker spawns outside of
	AnchorRoom = "cafeteria"

	spawnStandoff    = 0.75
	fallbackStandoff = 0.8
)

// DefaultSpawn is used when the layout has no anchor room
var DefaultSpawn = [2]float64{0, 6}

// SpawnPoint stands outside the anchor room's first door, spawnStandoff beyond
// the wall face along the door side's outward normal. A doorless anchor falls
// back to just north of its north wall
func SpawnPoint(l *layout.Layout, anchor string) (float64, float64) {
	r := l.Room(anchor)
	if r == nil {
		return DefaultSpawn[0], DefaultSpawn[1]
	}
	if len(r.Doors) == 0 {
		return r.X, r.Bounds().MinZ - fallbackStandoff
	}
	return geometry.DoorPoint(r, r.Doors[0], spawnStandoff+l.WallThickness/2)
}
