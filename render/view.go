package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/clinic-walk/geometry"
	"github.com/lixenwraith/clinic-walk/layout"
	"github.com/lixenwraith/clinic-walk/status"
)

// Pane sizes in cells
const (
	HUDWidth      = 46
	MinimapWidth  = 30
	MinimapHeight = 12
	// MinMapWidth is the narrowest plan area worth drawing
	MinMapWidth = 20
)

// Frame is everything one screen refresh shows
type Frame struct {
	Layout *layout.Layout
	Scene  *geometry.Scene

	X, Z, Yaw float64
	// TargetKey is the room to highlight on the minimap
	TargetKey string

	HUD           HUDState
	ShowMinimap   bool
	HeadingLocked bool
	ShowDebug     bool
	Debug         []status.Line
}

// View composes the plan, HUD, minimap and overlay onto a tcell screen
type View struct {
	screen tcell.Screen
	buf    *Buffer
}

func NewView(screen tcell.Screen) *View {
	w, h := screen.Size()
	return &View{screen: screen, buf: NewBuffer(w, h)}
}

// Buffer exposes the composed cells of the last Draw
func (v *View) Buffer() *Buffer { return v.buf }

// Draw renders f and shows the screen
func (v *View) Draw(f Frame) {
	w, h := v.screen.Size()
	if bw, bh := v.buf.Size(); bw != w || bh != h {
		v.buf.Resize(w, h)
	}
	v.buf.Clear(RGBPanel)

	hudW := min(HUDWidth, w)
	mapW := w - hudW
	if mapW < MinMapWidth {
		hudW, mapW = w, 0
	}

	if mapW > 0 && f.Layout != nil && f.Scene != nil {
		td := NewTopDown(v.buf, f.Layout.FloorSize, 0, 0, mapW, h)
		td.ShowDoorSigns(mapW >= 120)
		Draw(f.Scene, td)
		td.Player(f.X, f.Z, f.Yaw)

		if f.ShowMinimap && mapW >= MinimapWidth+2 && h >= MinimapHeight+2 {
			DrawMinimap(v.buf, mapW-MinimapWidth-1, h-MinimapHeight-1, MinimapWidth, MinimapHeight, MinimapState{
				Layout:        f.Layout,
				X:             f.X,
				Z:             f.Z,
				Yaw:           f.Yaw,
				HeadingLocked: f.HeadingLocked,
				TargetKey:     f.TargetKey,
			})
		}
		if f.ShowDebug {
			DrawDebug(v.buf, 0, 0, h, f.Debug)
		}
	}

	DrawHUD(v.buf, mapW, 0, hudW, h, f.HUD)
	v.buf.Flush(v.screen)
	v.screen.Show()
}
