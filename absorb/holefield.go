package absorb

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sinkhole/config"
	"github.com/lixenwraith/sinkhole/parameter"
	"github.com/lixenwraith/sinkhole/physics"
	"github.com/lixenwraith/sinkhole/vmath"
)

// HoleField pulls objects toward the mouth and bleeds off the spin and orbiting the pull induces
type HoleField struct {
	cfg  config.HoleFieldConfig
	hole *Hole
}

func NewHoleField(cfg config.HoleFieldConfig, hole *Hole) *HoleField {
	return &HoleField{cfg: cfg, hole: hole}
}

// PullRadius is the horizontal reach of the field
func (f *HoleField) PullRadius() float64 {
	return f.hole.Radius() * f.cfg.PullRadiusScale
}

// Proximity maps a ground-plane distance to 0 at the rim and 1 at the center
func (f *HoleField) Proximity(dist float64) float64 {
	return vmath.Proximity(dist, f.hole.Radius())
}

// AngularLimit is the largest angular speed stabilization allows at proximity t
func (f *HoleField) AngularLimit(t float64) float64 {
	return vmath.Lerp(f.cfg.MaxAngularSpeed*parameter.AngularLimitRimFactor, f.cfg.MaxAngularSpeed, t)
}

// SpeedLimit is the linear speed cap at proximity t
func (f *HoleField) SpeedLimit(t float64) float64 {
	return vmath.Lerp(f.cfg.MaxSpeedNearEdge, f.cfg.MaxSpeedNearCenter, t) * f.cfg.AbsorbSpeed
}

// ApplyForce adds one tick of pull to obj; callers skip objects without a body
func (f *HoleField) ApplyForce(obj *Object, dt float64) {
	b := obj.Body()
	center := f.hole.Position

	toCenter := vmath.Flatten(center.Sub(b.Position))
	dist := toCenter.Len()
	t := f.Proximity(dist)

	pull := vmath.Lerp(f.cfg.PullCenterMin, f.cfg.PullCenterMax, t) * f.cfg.AbsorbSpeed
	down := vmath.Lerp(f.cfg.PullDownMin, f.cfg.PullDownMax, t) * f.cfg.AbsorbSpeed

	accel := vmath.Down.Mul(down)
	if dist > vmath.DistEpsilon {
		accel = accel.Add(toCenter.Mul(pull / dist))
	}
	b.AddAcceleration(accel)

	physics.CapSpeed(b, f.SpeedLimit(t))
	if f.cfg.MaxUpVelocity > 0 {
		physics.CapRiseSpeed(b, f.cfg.MaxUpVelocity)
	}

	b.LinearDamping = f.cfg.SoftLinearDamping
	b.AngularDamping = f.cfg.SoftAngularDamping

	if f.cfg.Stabilize {
		f.stabilize(b, t, dt)
	}
}

func (f *HoleField) stabilize(b *physics.Body, t, dt float64) {
	physics.CapAngularSpeed(b, f.AngularLimit(t))

	r := vmath.Flatten(b.Position.Sub(f.hole.Position))
	if r.LenSqr() > vmath.DistSqEpsilon {
		radial := r.Normalize()
		vRadial, vTangential := vmath.SplitRadial(b.Velocity, radial)

		damp := f.cfg.TangentialDamp * vmath.Lerp(parameter.TangentialDampRim, parameter.TangentialDampCenter, t)
		vTangential = vmath.LerpVec(vTangential, mgl64.Vec3{}, dt*damp)

		flat := vRadial.Add(vTangential)
		b.Velocity = mgl64.Vec3{flat[0], b.Velocity[1], flat[2]}
	}

	floor := vmath.Lerp(parameter.AngularDampFloorRim, parameter.AngularDampFloorBase+f.cfg.AngularDampBoost, t)
	b.AngularDamping = math.Max(b.AngularDamping, floor)
}
