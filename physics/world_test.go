package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/clinic-walk/vmath"
)

func newTestWorld() *World {
	w := NewWorld(NewCapsule(0, 0))
	w.AddStatic(vmath.Vec3F{}, vmath.Vec3F{X: 30, Y: 0.05, Z: 20})
	return w
}

func TestFloorColliderRaisesGround(t *testing.T) {
	w := newTestWorld()
	if w.Statics() != 0 {
		t.Errorf("floor registered as lateral blocker")
	}
	if w.Floor() != 0.05 {
		t.Errorf("floor = %v, want 0.05", w.Floor())
	}
}

func TestGravitySettlesOnFloor(t *testing.T) {
	w := newTestWorld()
	b := w.Body()
	b.SetTranslation(vmath.Vec3F{Y: 5})

	for i := 0; i < 240; i++ {
		w.Step(1.0 / 60)
	}

	if !b.Grounded() {
		t.Fatal("body never landed")
	}
	if got := b.Bottom(); math.Abs(got-0.05) > 1e-9 {
		t.Errorf("resting bottom = %v, want 0.05", got)
	}
	if b.LinearVelocity().Y != 0 {
		t.Errorf("vertical velocity after landing = %v", b.LinearVelocity().Y)
	}
}

func TestFreeMotion(t *testing.T) {
	w := newTestWorld()
	b := w.Body()
	b.SetLinearVelocity(vmath.Vec3F{X: 3})
	w.Step(1)

	if got := b.Translation().X; math.Abs(got-3) > 1e-9 {
		t.Errorf("x after 1s at 3 m/s = %v, want 3", got)
	}
}

func TestWallBlocksMotion(t *testing.T) {
	w := newTestWorld()
	w.AddStatic(vmath.Vec3F{X: 2, Y: 1.5}, vmath.Vec3F{X: 0.1, Y: 1.5, Z: 5})
	b := w.Body()

	for i := 0; i < 120; i++ {
		b.SetLinearVelocity(vmath.Vec3F{X: 5.2, Y: b.LinearVelocity().Y})
		w.Step(1.0 / 60)
	}

	limit := 2 - 0.1 - CapsuleRadius
	if x := b.Translation().X; x > limit+1e-6 {
		t.Errorf("capsule passed the wall: x = %v, limit %v", x, limit)
	}
	if vx := b.LinearVelocity().X; vx != 0 {
		t.Errorf("velocity into the wall not removed: %v", vx)
	}
}

func TestWallSlide(t *testing.T) {
	w := newTestWorld()
	w.AddStatic(vmath.Vec3F{X: 0.5, Y: 1.5}, vmath.Vec3F{X: 0.1, Y: 1.5, Z: 10})
	b := w.Body()

	b.SetLinearVelocity(vmath.Vec3F{X: 2, Z: 2})
	w.Step(0.5)

	p := b.Translation()
	if p.X > 0.4-CapsuleRadius+1e-6 {
		t.Errorf("x = %v went through the wall", p.X)
	}
	if p.Z < 0.9 {
		t.Errorf("z = %v, expected sliding along the wall", p.Z)
	}
}

func TestOverheadStaticIgnored(t *testing.T) {
	w := newTestWorld()
	w.AddStatic(vmath.Vec3F{X: 1, Y: 5}, vmath.Vec3F{X: 1, Y: 0.1, Z: 1})
	b := w.Body()
	b.SetLinearVelocity(vmath.Vec3F{X: 2})
	w.Step(1)

	if got := b.Translation().X; math.Abs(got-2) > 1e-9 {
		t.Errorf("overhead box blocked motion, x = %v", got)
	}
}

func TestResetStatics(t *testing.T) {
	w := newTestWorld()
	w.AddStatic(vmath.Vec3F{X: 2, Y: 1.5}, vmath.Vec3F{X: 0.1, Y: 1.5, Z: 5})
	w.ResetStatics()

	if w.Statics() != 0 || w.Floor() != 0 {
		t.Errorf("reset left %d statics, floor %v", w.Statics(), w.Floor())
	}
}

func TestStepIgnoresNonPositive(t *testing.T) {
	w := newTestWorld()
	b := w.Body()
	before := b.Translation()
	b.SetLinearVelocity(vmath.Vec3F{X: 1})
	w.Step(0)
	w.Step(-1)
	if b.Translation() != before {
		t.Error("non-positive dt moved the body")
	}
}
