package physics

import (
	"github.com/lixenwraith/sinkhole/vmath"
)

// CapSpeed limits the linear velocity magnitude to maxSpeed preserving direction
// Returns true if velocity was clamped
func CapSpeed(b *Body, maxSpeed float64) bool {
	v, clamped := vmath.ClampMagnitude(b.Velocity, maxSpeed)
	if clamped {
		b.Velocity = v
	}
	return clamped
}

// CapAngularSpeed limits the angular velocity magnitude to maxSpeed preserving axis
// Returns true if angular velocity was clamped
func CapAngularSpeed(b *Body, maxSpeed float64) bool {
	w, clamped := vmath.ClampMagnitude(b.AngularVelocity, maxSpeed)
	if clamped {
		b.AngularVelocity = w
	}
	return clamped
}

// CapRiseSpeed limits upward vertical velocity, leaving falling and horizontal motion alone
// Returns true if velocity was clamped
func CapRiseSpeed(b *Body, maxUp float64) bool {
	if b.Velocity[1] > maxUp {
		b.Velocity[1] = maxUp
		return true
	}
	return false
}
