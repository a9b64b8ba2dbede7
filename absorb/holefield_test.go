package absorb

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sinkhole/config"
	"github.com/lixenwraith/sinkhole/physics"
)

func newFieldObject(pos mgl64.Vec3) *Object {
	body := &physics.Body{
		ID:          1,
		Position:    pos,
		Scale:       mgl64.Vec3{1, 1, 1},
		HalfExtents: mgl64.Vec3{0.2, 0.2, 0.2},
		Orientation: mgl64.QuatIdent(),
	}
	return NewObject(body, ObjectSpec{})
}

func newField(radius float64) *HoleField {
	return NewHoleField(config.Default().HoleField, NewHole(mgl64.Vec3{}, FixedRadius(radius)))
}

func vecNear(a, b mgl64.Vec3, eps float64) bool {
	return a.Sub(b).Len() <= eps
}

func TestHoleFieldPullDirection(t *testing.T) {
	f := newField(1)

	obj := newFieldObject(mgl64.Vec3{0.5, 0.2, 0})
	f.ApplyForce(obj, tickDt)

	// t = 0.5: pull lerp(2, 8) * 1.2 = 6, down lerp(3, 14) * 1.2 = 10.2
	want := mgl64.Vec3{-6, -10.2, 0}
	if got := obj.Body().PendingAcceleration(); !vecNear(got, want, 1e-9) {
		t.Errorf("Expected accel %v, got %v", want, got)
	}

	centered := newFieldObject(mgl64.Vec3{0, 0.2, 0})
	f.ApplyForce(centered, tickDt)
	want = mgl64.Vec3{0, -16.8, 0}
	if got := centered.Body().PendingAcceleration(); !vecNear(got, want, 1e-9) {
		t.Errorf("Expected pure downward accel %v at the center, got %v", want, got)
	}
}

func TestHoleFieldSpeedClamp(t *testing.T) {
	f := newField(1)
	obj := newFieldObject(mgl64.Vec3{0.5, 0.2, 0})
	obj.Body().Velocity = mgl64.Vec3{10, 0, 0}

	f.ApplyForce(obj, tickDt)

	if got := obj.Body().Speed(); math.Abs(got-5.4) > 1e-9 {
		t.Errorf("Expected speed clamped to 5.4, got %v", got)
	}
	if obj.Body().Velocity[0] <= 0 {
		t.Error("Expected clamp to preserve direction")
	}
}

func TestHoleFieldAngularLimit(t *testing.T) {
	f := newField(1)
	for _, x := range []float64{0, 0.25, 0.5, 0.75, 0.99, 1.0, 1.5} {
		for _, w := range []float64{0.5, 2.4, 3, 4, 10, 100} {
			obj := newFieldObject(mgl64.Vec3{x, 0.2, 0})
			obj.Body().AngularVelocity = mgl64.Vec3{w, w / 2, -w}

			f.ApplyForce(obj, tickDt)

			limit := f.AngularLimit(f.Proximity(x))
			if got := obj.Body().AngularVelocity.Len(); got > limit+1e-9 {
				t.Errorf("x=%v w=%v: angular speed %v exceeds %v", x, w, got, limit)
			}
		}
	}
}

func TestHoleFieldTangentialDamping(t *testing.T) {
	f := newField(1)
	obj := newFieldObject(mgl64.Vec3{0.5, 0.2, 0})
	obj.Body().Velocity = mgl64.Vec3{0, 0, 2}

	f.ApplyForce(obj, tickDt)

	// damp = 6 * lerp(0.3, 1, 0.5) = 3.9 per second
	want := 2 * (1 - tickDt*3.9)
	if got := obj.Body().Velocity[2]; math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected tangential speed %v, got %v", want, got)
	}
	if got := obj.Body().Velocity[0]; got != 0 {
		t.Errorf("Radial component should be untouched, got %v", got)
	}
}

func TestHoleFieldDampingAndRiseCap(t *testing.T) {
	f := newField(1)
	obj := newFieldObject(mgl64.Vec3{0.5, 0.2, 0})
	obj.Body().Velocity = mgl64.Vec3{0, 4, 0}

	f.ApplyForce(obj, tickDt)

	b := obj.Body()
	if b.LinearDamping != 0.6 {
		t.Errorf("Expected soft linear damping 0.6, got %v", b.LinearDamping)
	}
	// floor lerp(1.5, 3 + 2, 0.5) = 3.25 beats the soft 1.2
	if math.Abs(b.AngularDamping-3.25) > 1e-12 {
		t.Errorf("Expected angular damping floor 3.25, got %v", b.AngularDamping)
	}
	if b.Velocity[1] != 1.5 {
		t.Errorf("Expected rise capped at 1.5, got %v", b.Velocity[1])
	}
}

func TestHoleFieldWithoutStabilization(t *testing.T) {
	cfg := config.Default().HoleField
	cfg.Stabilize = false
	f := NewHoleField(cfg, NewHole(mgl64.Vec3{}, FixedRadius(1)))

	obj := newFieldObject(mgl64.Vec3{0.5, 0.2, 0})
	obj.Body().AngularVelocity = mgl64.Vec3{0, 50, 0}
	f.ApplyForce(obj, tickDt)

	if obj.Body().AngularVelocity[1] != 50 {
		t.Errorf("Expected spin untouched without stabilization, got %v", obj.Body().AngularVelocity)
	}
	if obj.Body().AngularDamping != 1.2 {
		t.Errorf("Expected soft angular damping only, got %v", obj.Body().AngularDamping)
	}
}

func TestHoleFieldDegenerateRadius(t *testing.T) {
	f := newField(0)
	for _, pos := range []mgl64.Vec3{{0, 0.2, 0}, {0.0005, 0.2, 0}, {3, 0.2, 0}} {
		obj := newFieldObject(pos)
		obj.Body().Velocity = mgl64.Vec3{1, 1, 1}
		obj.Body().AngularVelocity = mgl64.Vec3{1, 1, 1}
		f.ApplyForce(obj, tickDt)

		b := obj.Body()
		for _, v := range []mgl64.Vec3{b.PendingAcceleration(), b.Velocity, b.AngularVelocity} {
			for _, c := range v {
				if math.IsNaN(c) || math.IsInf(c, 0) {
					t.Fatalf("Non-finite state at %v: %v", pos, v)
				}
			}
		}
	}
}
