package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/sinkhole/core"
)

// Body is a rigid box simulated by World
// Position is the center of mass; bounds are axis-aligned HalfExtents scaled by Scale
type Body struct {
	ID core.Entity

	Position        mgl64.Vec3
	Velocity        mgl64.Vec3 // units/sec
	AngularVelocity mgl64.Vec3 // rad/sec
	Orientation     mgl64.Quat
	Scale           mgl64.Vec3
	HalfExtents     mgl64.Vec3 // unscaled

	Mass           float64
	LinearDamping  float64 // 1/sec
	AngularDamping float64 // 1/sec
	UseGravity     bool

	// Frozen bodies are held in place by the integrator and ignored by the absorption engine
	Frozen bool

	Layer Layer

	accel        mgl64.Vec3 // accumulated acceleration, cleared each step
	defaultLayer Layer
	passThrough  bool
}

// BodySpec describes a body to create
type BodySpec struct {
	Position    mgl64.Vec3
	HalfExtents mgl64.Vec3
	Scale       mgl64.Vec3 // zero value means unit scale
	Mass        float64
	Frozen      bool
	Layer       Layer // zero value means an item layer
}

// AddAcceleration accumulates a mass-independent acceleration for the next step
func (b *Body) AddAcceleration(a mgl64.Vec3) {
	b.accel = b.accel.Add(a)
}

// PendingAcceleration returns the acceleration accumulated since the last step
func (b *Body) PendingAcceleration() mgl64.Vec3 {
	return b.accel
}

// ScaledHalfExtents returns half extents after scale
func (b *Body) ScaledHalfExtents() mgl64.Vec3 {
	return mgl64.Vec3{
		abs(b.HalfExtents[0] * b.Scale[0]),
		abs(b.HalfExtents[1] * b.Scale[1]),
		abs(b.HalfExtents[2] * b.Scale[2]),
	}
}

// Bounds returns the world-space AABB
func (b *Body) Bounds() (min, max mgl64.Vec3) {
	h := b.ScaledHalfExtents()
	return b.Position.Sub(h), b.Position.Add(h)
}

// Bottom is the lowest point of the bounds
func (b *Body) Bottom() float64 {
	return b.Position[1] - b.ScaledHalfExtents()[1]
}

// Top is the highest point of the bounds
func (b *Body) Top() float64 {
	return b.Position[1] + b.ScaledHalfExtents()[1]
}

// Speed is the linear velocity magnitude
func (b *Body) Speed() float64 {
	return b.Velocity.Len()
}

// SetPassThrough swaps the body between its default layer and the ground pass-through layer
// The category swap is the only permeability mechanism the world understands
func (b *Body) SetPassThrough(enabled bool) {
	if enabled == b.passThrough {
		return
	}
	b.passThrough = enabled
	if enabled {
		b.Layer = Layer{Category: CategoryItemPassThrough, Mask: b.defaultLayer.Mask}
	} else {
		b.Layer = b.defaultLayer
	}
}

// PassThrough reports whether the body currently ignores ground surfaces
func (b *Body) PassThrough() bool {
	return b.passThrough
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
