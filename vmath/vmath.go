package vmath

import "math"

// Epsilon guards used where a distance or radius becomes a divisor
const (
	// DistEpsilon is the smallest horizontal distance treated as a usable direction
	DistEpsilon = 0.001
	// DistSqEpsilon is the squared-distance counterpart for radial decomposition
	DistSqEpsilon = 0.0001
	// DirEpsilon is the floor applied before normalizing short 3D offsets
	DirEpsilon = 0.0001
)

// Clamp01 clamps x into [0, 1]
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Clamp clamps x into [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp interpolates between a and b with t clamped to [0, 1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// Proximity maps a distance inside radius to 0 at the rim and 1 at the center
// A non-positive radius is replaced by DistEpsilon so the ratio stays finite
func Proximity(dist, radius float64) float64 {
	return Clamp01(1 - dist/math.Max(DistEpsilon, radius))
}
