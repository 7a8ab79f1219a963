// Package minimap projects world XZ coordinates onto a small 2D panel.
package minimap

import (
	"math"

	"github.com/lixenwraith/clinic-walk/layout"
	"github.com/lixenwraith/clinic-walk/vmath"
)

// Default panel geometry in panel units
const (
	DefaultWidth   = 200
	DefaultHeight  = 140
	DefaultPadding = 10
)

// Point is a panel coordinate; +Y is down the panel
type Point struct {
	X, Y float64
}

// Projector maps the floor onto the panel. Scales are per axis so the whole
// floor fills the panel
type Projector struct {
	Width, Height float64
	Padding       float64

	floorW, floorH float64
	scaleX, scaleY float64
}

// New builds a projector for a floor of the given size
func New(floor layout.Size, width, height, padding float64) *Projector {
	return &Projector{
		Width:   width,
		Height:  height,
		Padding: padding,
		floorW:  floor.W,
		floorH:  floor.H,
		scaleX:  width / floor.W,
		scaleY:  height / floor.H,
	}
}

// NewDefault uses the stock panel size
func NewDefault(floor layout.Size) *Projector {
	return New(floor, DefaultWidth, DefaultHeight, DefaultPadding)
}

// Scale returns the per-axis world-to-panel scale
func (p *Projector) Scale() (float64, float64) { return p.scaleX, p.scaleY }

// Project maps a world point, north-up
func (p *Projector) Project(x, z float64) Point {
	return Point{
		X: p.Padding + (x+p.floorW/2)*p.scaleX,
		Y: p.Padding + (z+p.floorH/2)*p.scaleY,
	}
}

// Rect is a projected rectangle
type Rect struct {
	X, Y, W, H float64
}

// RoomRect projects a room footprint, north-up
func (p *Projector) RoomRect(r *layout.Room) Rect {
	b := r.Bounds()
	tl := p.Project(b.MinX, b.MinZ)
	return Rect{X: tl.X, Y: tl.Y, W: r.W * p.scaleX, H: r.H * p.scaleY}
}

// UniformScale is the single scale used when rotating, so shapes keep their
// proportions under any heading
func (p *Projector) UniformScale() float64 {
	return math.Min(p.scaleX, p.scaleY)
}

// Center is the panel point the player occupies in heading-locked mode
func (p *Projector) Center() Point {
	return Point{X: p.Padding + p.Width/2, Y: p.Padding + p.Height/2}
}

// HeadingLocked maps a world point relative to the player at (px, pz) facing
// yaw, rotated so the heading points up the panel
func (p *Projector) HeadingLocked(x, z, px, pz, yaw float64) Point {
	dx, dz := vmath.RotateXZ(x-px, z-pz, yaw)
	s := p.UniformScale()
	c := p.Center()
	return Point{X: c.X + dx*s, Y: c.Y + dz*s}
}

// Contains reports whether a panel point lies inside the padded panel
func (p *Projector) Contains(pt Point) bool {
	return pt.X >= p.Padding && pt.X <= p.Padding+p.Width &&
		pt.Y >= p.Padding && pt.Y <= p.Padding+p.Height
}
