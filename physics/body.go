// Package physics is a small kinematic world: static axis-aligned boxes, a
// floor, gravity and a single upright capsule body.
package physics

import (
	"github.com/lixenwraith/clinic-walk/vmath"
)

// Body is the surface the player controller drives
type Body interface {
	SetLinearVelocity(v vmath.Vec3F)
	LinearVelocity() vmath.Vec3F
	SetTranslation(p vmath.Vec3F)
	Translation() vmath.Vec3F
}

// Capsule dimensions of the walker
const (
	CapsuleHalfHeight = 0.6
	CapsuleRadius     = 0.35
)

// Capsule is an upright capsule positioned by its center
type Capsule struct {
	HalfHeight float64
	Radius     float64

	pos      vmath.Vec3F
	vel      vmath.Vec3F
	grounded bool
}

// NewCapsule creates a capsule with its lowest point resting at y = 0
func NewCapsule(x, z float64) *Capsule {
	c := &Capsule{HalfHeight: CapsuleHalfHeight, Radius: CapsuleRadius}
	c.pos = vmath.Vec3F{X: x, Y: c.bottomOffset(), Z: z}
	return c
}

func (c *Capsule) SetLinearVelocity(v vmath.Vec3F) { c.vel = v }

func (c *Capsule) LinearVelocity() vmath.Vec3F { return c.vel }

func (c *Capsule) SetTranslation(p vmath.Vec3F) { c.pos = p }

func (c *Capsule) Translation() vmath.Vec3F { return c.pos }

// Grounded reports whether the last step ended resting on the floor
func (c *Capsule) Grounded() bool { return c.grounded }

// bottomOffset is the distance from center to the lowest point
func (c *Capsule) bottomOffset() float64 { return c.HalfHeight + c.Radius }

// Bottom and Top bound the capsule vertically
func (c *Capsule) Bottom() float64 { return c.pos.Y - c.bottomOffset() }

func (c *Capsule) Top() float64 { return c.pos.Y + c.bottomOffset() }
