// Package player drives the walker body from input and advances the errand
// checkpoints as the walker reaches each service point.
package player

import (
	"math"

	"github.com/lixenwraith/clinic-walk/layout"
	"github.com/lixenwraith/clinic-walk/physics"
	"github.com/lixenwraith/clinic-walk/progress"
	"github.com/lixenwraith/clinic-walk/vmath"
)

const (
	WalkSpeed = 3.0 // m/s
	RunSpeed  = 5.2
	TurnRate  = 2.2 // rad/s
	EyeHeight = 1.6

	// InteractRadius is the reach to a service counter
	InteractRadius = 2.0

	// SpawnHeight places the body center just above a resting capsule
	SpawnHeight = 1.0
)

// Room keys the errand is bound to
const (
	RoomRegistration = "registration"
	RoomPharmacy     = "pharmacy"
	ConsultPrefix    = "consult"
)

// Hints shown at each service point
const (
	HintCheckIn = "Tekan E untuk daftar di kaunter"
	HintConsult = "Tekan E untuk jumpa doktor"
	HintMeds    = "Tekan E untuk ambil ubat"
)

// Intent is the sampled control state for one frame. Interact is a rising edge
type Intent struct {
	Forward, Back           bool
	StrafeLeft, StrafeRight bool
	TurnLeft, TurnRight     bool
	Run                     bool
	Interact                bool
}

// Pose is the camera view derived from position and yaw
type Pose struct {
	Eye vmath.Vec3F
	Yaw float64
}

// Heading returns the horizontal forward and right unit vectors for yaw.
// Yaw 0 faces -Z; positive yaw turns left
func Heading(yaw float64) (forward, right vmath.Vec3F) {
	s, c := math.Sincos(yaw)
	return vmath.Vec3F{X: -s, Z: -c}, vmath.Vec3F{X: c, Z: -s}
}

// Controller couples the physics body to progress. One per session, owned by
// the frame loop
type Controller struct {
	body     physics.Body
	progress *progress.Progress
	layout   *layout.Layout

	yaw    float64
	pos    vmath.Vec3F
	pose   Pose
	hint   string
	spawnX float64
	spawnZ float64
}

// New creates a controller; SetLayout must be called before the first frame
func New(body physics.Body, p *progress.Progress) *Controller {
	return &Controller{body: body, progress: p}
}

// SetLayout switches to the layout of a new game and recomputes the spawn point
func (c *Controller) SetLayout(l *layout.Layout) {
	c.layout = l
	c.spawnX, c.spawnZ = SpawnPoint(l, AnchorRoom)
}

// Drive advances yaw and submits the desired horizontal velocity, preserving
// the body's vertical component
func (c *Controller) Drive(in Intent, dt float64) {
	if in.TurnLeft {
		c.yaw += TurnRate * dt
	}
	if in.TurnRight {
		c.yaw -= TurnRate * dt
	}

	forward, right := Heading(c.yaw)
	var move vmath.Vec3F
	if in.Forward {
		move = vmath.V3FAdd(move, forward)
	}
	if in.Back {
		move = vmath.V3FSub(move, forward)
	}
	if in.StrafeRight {
		move = vmath.V3FAdd(move, right)
	}
	if in.StrafeLeft {
		move = vmath.V3FSub(move, right)
	}

	speed := WalkSpeed
	if in.Run {
		speed = RunSpeed
	}
	move = vmath.V3FScale(vmath.V3FNormalize(move), speed)

	v := c.body.LinearVelocity()
	c.body.SetLinearVelocity(vmath.Vec3F{X: move.X, Y: v.Y, Z: move.Z})
}

// Settle reads the resolved position back, updates the camera pose and runs
// zone evaluation. It returns the stage reached and whether it changed this frame
func (c *Controller) Settle(in Intent) (progress.Stage, bool) {
	c.pos = c.body.Translation()
	c.pose = Pose{Eye: vmath.Vec3F{X: c.pos.X, Y: EyeHeight, Z: c.pos.Z}, Yaw: c.yaw}
	return c.evaluateZones(in.Interact)
}

// Update runs one full frame: drive, step the physics collaborator, settle
func (c *Controller) Update(in Intent, dt float64, step func(dt float64)) (progress.Stage, bool) {
	c.Drive(in, dt)
	if step != nil {
		step(dt)
	}
	return c.Settle(in)
}

func (c *Controller) evaluateZones(interact bool) (progress.Stage, bool) {
	c.hint = ""
	p := c.progress
	if c.layout == nil {
		return p.Stage(), false
	}
	px, pz := c.pos.X, c.pos.Z

	switch {
	case !p.CheckedIn:
		if c.nearCounter(RoomRegistration, px, pz) {
			c.hint = HintCheckIn
			if interact && p.CheckIn() {
				c.hint = ""
				return p.Stage(), true
			}
		}
	case !p.Consulted:
		if c.inConsultRoom(px, pz) {
			c.hint = HintConsult
			if interact && p.Consult() {
				c.hint = ""
				return p.Stage(), true
			}
		}
	case !p.GotMeds:
		if c.nearCounter(RoomPharmacy, px, pz) {
			c.hint = HintMeds
			if interact && p.CollectMeds() {
				c.hint = ""
				return p.Stage(), true
			}
		}
	}
	return p.Stage(), false
}

// nearCounter is the room containment test plus the squared-distance test to
// the room's counter, or to its center when it has none
func (c *Controller) nearCounter(key string, px, pz float64) bool {
	r := c.layout.Room(key)
	if r == nil || !r.Contains(px, pz) {
		return false
	}
	cx, cz := r.X, r.Z
	if f, ok := r.FirstFurniture(layout.KindCounter); ok {
		cx, cz = r.X+f.X, r.Z+f.Z
	}
	return vmath.DistSqXZ(px, pz, cx, cz) <= InteractRadius*InteractRadius
}

// inConsultRoom tests the assigned consult room, or any consult room while
// no target is assigned
func (c *Controller) inConsultRoom(px, pz float64) bool {
	if key := c.progress.ConsultKey(); key != "" {
		r := c.layout.Room(key)
		return r != nil && r.Contains(px, pz)
	}
	for _, r := range c.layout.RoomsWithPrefix(ConsultPrefix) {
		if r.Contains(px, pz) {
			return true
		}
	}
	return false
}

// Reset teleports the body to spawn with zero velocity and yaw, resets the
// camera pose and clears the hint, all within the calling frame
func (c *Controller) Reset() {
	c.pos = vmath.Vec3F{X: c.spawnX, Y: SpawnHeight, Z: c.spawnZ}
	c.body.SetTranslation(c.pos)
	c.body.SetLinearVelocity(vmath.Vec3F{})
	c.yaw = 0
	c.pose = Pose{Eye: vmath.Vec3F{X: c.pos.X, Y: EyeHeight, Z: c.pos.Z}}
	c.hint = ""
}

func (c *Controller) Hint() string { return c.hint }

func (c *Controller) Yaw() float64 { return c.yaw }

func (c *Controller) Position() vmath.Vec3F { return c.pos }

func (c *Controller) Pose() Pose { return c.pose }

// Spawn returns the current spawn point
func (c *Controller) Spawn() (float64, float64) { return c.spawnX, c.spawnZ }
