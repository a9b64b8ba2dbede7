package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	Up   = mgl64.Vec3{0, 1, 0}
	Down = mgl64.Vec3{0, -1, 0}
)

// Flatten drops the vertical component, projecting v onto the ground plane
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// HorizontalDist is the ground-plane distance between a and b
func HorizontalDist(a, b mgl64.Vec3) float64 {
	dx := b[0] - a[0]
	dz := b[2] - a[2]
	return math.Sqrt(dx*dx + dz*dz)
}

// LerpVec interpolates component-wise with t clamped to [0, 1]
func LerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(Clamp01(t)))
}

// ClampMagnitude scales v down to max length preserving direction
// Returns true if v was clamped
func ClampMagnitude(v mgl64.Vec3, max float64) (mgl64.Vec3, bool) {
	if max < 0 {
		max = 0
	}
	magSq := v.LenSqr()
	if magSq <= max*max {
		return v, false
	}
	mag := math.Sqrt(magSq)
	if mag == 0 {
		return v, false
	}
	return v.Mul(max / mag), true
}

// SplitRadial decomposes the horizontal part of vel relative to a radial unit axis
// Returns (radial, tangential); both lie in the ground plane
func SplitRadial(vel, radialAxis mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	flat := Flatten(vel)
	radial := radialAxis.Mul(flat.Dot(radialAxis))
	return radial, flat.Sub(radial)
}
