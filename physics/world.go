package physics

import (
	"math"

	"github.com/lixenwraith/clinic-walk/vmath"
)

const (
	// Gravity along -Y in m/s²
	Gravity = 9.81
	// maxSubstep bounds one integration step so fast frames cannot tunnel walls
	maxSubstep = 1.0 / 120
	// groundSlack lets statics this close to the feet count as floor
	groundSlack = 0.02
	// groundTop is the highest top a box may have and still be treated as floor
	groundTop = 0.1
	// resolvePasses is how many push-out sweeps run per substep
	resolvePasses = 3
)

// Static is a fixed box collider
type Static struct {
	Center vmath.Vec3F
	Half   vmath.Vec3F
}

func (s Static) top() float64    { return s.Center.Y + s.Half.Y }
func (s Static) bottom() float64 { return s.Center.Y - s.Half.Y }

// footprint is the XZ rectangle of the box
func (s Static) footprint() vmath.Rect {
	return vmath.RectCentered(s.Center.X, s.Center.Z, s.Half.X*2, s.Half.Z*2)
}

// World steps one capsule against static boxes. Not safe for concurrent use;
// the frame loop owns it
type World struct {
	statics []Static
	floor   float64
	body    *Capsule
}

// NewWorld creates an empty world whose ground plane is y = 0
func NewWorld(body *Capsule) *World {
	return &World{body: body}
}

// Body returns the simulated capsule
func (w *World) Body() *Capsule { return w.body }

// AddStatic registers a box collider. A box lying flat at ground level raises
// the floor to its top instead of blocking sideways motion
func (w *World) AddStatic(center, half vmath.Vec3F) {
	s := Static{Center: center, Half: half}
	if s.top() <= groundTop && s.bottom() <= 0 {
		w.floor = math.Max(w.floor, s.top())
		return
	}
	w.statics = append(w.statics, s)
}

// ResetStatics removes every collider and restores the ground plane
func (w *World) ResetStatics() {
	w.statics = w.statics[:0]
	w.floor = 0
}

// Statics returns the number of lateral blockers
func (w *World) Statics() int { return len(w.statics) }

// Floor returns the current ground height
func (w *World) Floor() float64 { return w.floor }

// Step integrates dt seconds: gravity, then movement, then push-out
func (w *World) Step(dt float64) {
	if dt <= 0 || w.body == nil {
		return
	}
	for dt > 0 {
		h := math.Min(dt, maxSubstep)
		w.substep(h)
		dt -= h
	}
}

func (w *World) substep(dt float64) {
	b := w.body
	b.vel.Y -= Gravity * dt
	b.pos = vmath.V3FAdd(b.pos, vmath.V3FScale(b.vel, dt))

	b.grounded = false
	if bottom := b.Bottom(); bottom <= w.floor {
		b.pos.Y += w.floor - bottom
		if b.vel.Y < 0 {
			b.vel.Y = 0
		}
		b.grounded = true
	}

	for pass := 0; pass < resolvePasses; pass++ {
		moved := false
		for _, s := range w.statics {
			if s.top() <= b.Bottom()+groundSlack || s.bottom() >= b.Top() {
				continue
			}
			if w.pushOut(s) {
				moved = true
			}
		}
		if !moved {
			break
		}
	}
}

// pushOut separates the capsule from s on the XZ plane and strips the velocity
// component pointing into the box
func (w *World) pushOut(s Static) bool {
	b := w.body
	r := s.footprint()
	px, pz := b.pos.X, b.pos.Z

	var nx, nz, depth float64
	if r.Contains(px, pz) {
		// Center inside: leave through the nearest face
		faces := [4]struct{ d, nx, nz float64 }{
			{px - r.MinX, -1, 0},
			{r.MaxX - px, 1, 0},
			{pz - r.MinZ, 0, -1},
			{r.MaxZ - pz, 0, 1},
		}
		best := faces[0]
		for _, f := range faces[1:] {
			if f.d < best.d {
				best = f
			}
		}
		nx, nz, depth = best.nx, best.nz, best.d+b.Radius
	} else {
		cx, cz := r.ClosestPoint(px, pz)
		dx, dz := px-cx, pz-cz
		dist := math.Hypot(dx, dz)
		if dist >= b.Radius {
			return false
		}
		nx, nz, depth = dx/dist, dz/dist, b.Radius-dist
	}

	b.pos.X += nx * depth
	b.pos.Z += nz * depth
	if into := b.vel.X*nx + b.vel.Z*nz; into < 0 {
		b.vel.X -= into * nx
		b.vel.Z -= into * nz
	}
	return true
}
