package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Integrate performs semi-implicit Euler integration of one body: v += (g + a)*dt, damping, p += v*dt
// Accumulated acceleration is consumed. Frozen bodies only drop their accumulator
func Integrate(b *Body, gravity mgl64.Vec3, dt float64) {
	if b.Frozen {
		b.accel = mgl64.Vec3{}
		return
	}

	accel := b.accel
	if b.UseGravity {
		accel = accel.Add(gravity)
	}
	b.accel = mgl64.Vec3{}

	b.Velocity = b.Velocity.Add(accel.Mul(dt))
	if b.LinearDamping > 0 {
		b.Velocity = b.Velocity.Mul(1 / (1 + dt*b.LinearDamping))
	}
	if b.AngularDamping > 0 {
		b.AngularVelocity = b.AngularVelocity.Mul(1 / (1 + dt*b.AngularDamping))
	}

	b.Position = b.Position.Add(b.Velocity.Mul(dt))
	b.Orientation = integrateOrientation(b.Orientation, b.AngularVelocity, dt)
}

// integrateOrientation advances q by angular velocity w: q' = q + 0.5*(w*q)*dt, renormalized
func integrateOrientation(q mgl64.Quat, w mgl64.Vec3, dt float64) mgl64.Quat {
	if w.LenSqr() == 0 {
		return q
	}
	spin := mgl64.Quat{W: 0, V: w}.Mul(q).Scale(0.5 * dt)
	return q.Add(spin).Normalize()
}

// ApplyImpulse adds a velocity delta (momentum transfer)
func ApplyImpulse(b *Body, dv mgl64.Vec3) {
	b.Velocity = b.Velocity.Add(dv)
}
