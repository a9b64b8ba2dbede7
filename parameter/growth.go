package parameter

// Hole growth
const (
	StartSize      = 1
	StartScale     = 1.0
	ScalePerSize   = 0.12
	BaseHoleRadius = 1.2

	TempMultiplierMin = 0.01
	TempMultiplierMax = 10.0

	GrowBoostDuration   = 6.0
	GrowBoostMultiplier = 1.35
	BoostExpiryEpsilon  = 1e-9
)

// XPToNextSize is the experience needed to leave each size; index is size-1
var XPToNextSize = []int{10, 25, 45, 70, 100}

// World
const (
	Gravity         = -20.0
	GroundHeight    = 0.0
	GroundHalfSize  = 20.0
	ContactFriction = 0.1
	HoleMoveSpeed   = 6.0 // units/sec while a direction key is held
)

// Spawning
const (
	SpawnCount          = 80
	SpawnUnfreezeDelay  = 0.25 // seconds
	SpawnClearance      = 1.5  // extra distance kept from the hole's starting rim
	SpawnDropHeight     = 0.05 // gap between the ground and a fresh object's bottom
	SpawnAttempts       = 32   // placement tries per object before it is skipped
	SpawnReleaseEpsilon = 1e-9
)

// Level goals
const (
	GoalApples = 8
	GoalCoins  = 5
	GoalGems   = 2
)
