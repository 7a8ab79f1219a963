// Package render draws scene primitives and the HUD onto a terminal.
package render

import (
	"math"

	"github.com/lixenwraith/clinic-walk/geometry"
	"github.com/lixenwraith/clinic-walk/layout"
	"github.com/lixenwraith/clinic-walk/minimap"
)

// Renderer consumes primitive draw requests
type Renderer interface {
	Box(b geometry.Box)
	Plane(p geometry.Plane)
	Label(l geometry.Label)
}

// Draw submits a scene in painter's order: planes, solids, figures, text
func Draw(s *geometry.Scene, r Renderer) {
	for _, p := range s.Planes {
		r.Plane(p)
	}
	for _, b := range s.Boxes {
		if b.Tag != geometry.TagNPC {
			r.Box(b)
		}
	}
	for _, b := range s.Boxes {
		if b.Tag == geometry.TagNPC {
			r.Box(b)
		}
	}
	for _, l := range s.Labels {
		r.Label(l)
	}
}

// Glyphs
const (
	glyphNPC      = '☺'
	glyphFallback = '?'
)

// TopDown renders the floor plan north-up into a region of a buffer
type TopDown struct {
	buf        *Buffer
	proj       *minimap.Projector
	x, y, w, h int
	signs      bool
}

// NewTopDown maps the whole floor onto the w x h region at (x, y)
func NewTopDown(buf *Buffer, floor layout.Size, x, y, w, h int) *TopDown {
	return &TopDown{
		buf:  buf,
		proj: minimap.New(floor, float64(w), float64(h), 0),
		x:    x,
		y:    y,
		w:    w,
		h:    h,
	}
}

// ShowDoorSigns enables door sign labels, which crowd small terminals
func (t *TopDown) ShowDoorSigns(on bool) { t.signs = on }

// Cell maps a world point to a buffer cell
func (t *TopDown) Cell(x, z float64) (int, int) {
	p := t.proj.Project(x, z)
	return t.x + int(math.Floor(p.X)), t.y + int(math.Floor(p.Y))
}

// footprint returns the inclusive, region-clipped cell span of an XZ rectangle
func (t *TopDown) footprint(cx, cz, w, h float64) (x0, y0, x1, y1 int) {
	tl := t.proj.Project(cx-w/2, cz-h/2)
	br := t.proj.Project(cx+w/2, cz+h/2)
	x0 = t.x + int(math.Floor(tl.X))
	y0 = t.y + int(math.Floor(tl.Y))
	x1 = max(t.x+int(math.Ceil(br.X))-1, x0)
	y1 = max(t.y+int(math.Ceil(br.Y))-1, y0)
	return max(x0, t.x), max(y0, t.y), min(x1, t.x+t.w-1), min(y1, t.y+t.h-1)
}

func (t *TopDown) Plane(p geometry.Plane) {
	x0, y0, x1, y1 := t.footprint(p.Center.X, p.Center.Z, p.W, p.H)
	t.buf.Fill(x0, y0, x1, y1, MustHex(p.Color))
}

func (t *TopDown) Box(b geometry.Box) {
	switch b.Tag {
	case geometry.TagNPC:
		// Head and body overlap; one glyph on the shared cell
		cx, cy := t.Cell(b.Center.X, b.Center.Z)
		if t.inside(cx, cy) {
			t.buf.SetRune(cx, cy, glyphNPC, RGBInk)
		}
		return
	case geometry.TagFloor:
		return
	}

	x0, y0, x1, y1 := t.footprint(b.Center.X, b.Center.Z, b.Size.X, b.Size.Z)
	c := MustHex(b.Color)
	if b.Tag == geometry.TagWall || b.Tag == geometry.TagBorder {
		c = c.Blend(RGBInk, 0.35)
	}
	t.buf.Fill(x0, y0, x1, y1, c)
	if b.Tag == geometry.TagFallback {
		cx, cy := t.Cell(b.Center.X, b.Center.Z)
		if t.inside(cx, cy) {
			t.buf.SetRune(cx, cy, glyphFallback, RGBWhite)
		}
	}
}

func (t *TopDown) Label(l geometry.Label) {
	if l.Tag == geometry.TagDoorSign && !t.signs {
		return
	}
	cx, cy := t.Cell(l.At.X, l.At.Z)
	if cy < t.y || cy >= t.y+t.h {
		return
	}
	n := len([]rune(l.Text))
	x := max(cx-n/2, t.x)
	t.buf.Text(x, cy, l.Text, RGBInk, t.x+t.w-x)
}

// Player draws the walker as a heading arrow
func (t *TopDown) Player(x, z, yaw float64) {
	cx, cy := t.Cell(x, z)
	if t.inside(cx, cy) {
		t.buf.SetRune(cx, cy, arrow(yaw), RGBPlayer)
	}
}

func (t *TopDown) inside(x, y int) bool {
	return x >= t.x && x < t.x+t.w && y >= t.y && y < t.y+t.h
}

// arrow picks the glyph nearest the panel direction of yaw; panel +Y is world +Z
func arrow(yaw float64) rune {
	dx, dy := -math.Sin(yaw), -math.Cos(yaw)
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return '▶'
		}
		return '◀'
	}
	if dy < 0 {
		return '▲'
	}
	return '▼'
}
