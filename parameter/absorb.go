package parameter

// Hole force field
const (
	AbsorbSpeed        = 1.2
	PullCenterMin      = 2.0
	PullCenterMax      = 8.0
	PullDownMin        = 3.0
	PullDownMax        = 14.0
	MaxSpeedNearEdge   = 2.5
	MaxSpeedNearCenter = 6.5

	// Stabilization
	MaxAngularSpeed  = 4.0
	TangentialDamp   = 6.0
	AngularDampBoost = 2.0

	// Soft damping written to every pulled body
	SoftLinearDamping  = 0.6
	SoftAngularDamping = 1.2

	// PullRadiusScale sizes the pull scan cylinder relative to the hole radius
	PullRadiusScale = 1.0

	// MaxUpVelocity caps upward speed of pulled objects so they cannot pop out of the mouth
	MaxUpVelocity = 1.5
)

// Angular and tangential stabilization curve endpoints, interpolated by proximity
const (
	AngularLimitRimFactor = 0.6
	TangentialDampRim     = 0.3
	TangentialDampCenter  = 1.0
	AngularDampFloorRim   = 1.5
	AngularDampFloorBase  = 3.0
)

// Admission gate
const (
	MinDwell          = 0.12 // seconds
	CenterGateFactor  = 0.55
	FitTolerance      = 1.02
	GateRadiusScale   = 1.0
	GateVolumeHeight  = 1.0 // above ground
	GateVolumeDepth   = 3.0 // below ground
	FitToleranceMin   = 1.0
	FitToleranceMax   = 1.2
	CenterFactorMin   = 0.2
	CenterFactorMax   = 0.95
	DefaultItemRadius = 0.25 // used when an object has neither override nor bounds
)

// Ground recovery
const (
	RecoverRayUp       = 1.0
	RecoverRayDown     = 4.0
	RecoverOffset      = 0.02
	RecoverAngularKeep = 0.2
)

// Swallow detector
const (
	SwallowDepth        = 1.0 // detector height below ground
	SwallowOffset       = 0.05
	SwallowVolumeHeight = 0.5
	SwallowVolumeDepth  = 4.0
)

// Magnet boost
const (
	MagnetDuration        = 6.0
	MagnetRadius          = 10.0
	MagnetForce           = 45.0
	MagnetMaxPullSpeed    = 12.0
	MagnetMinDistanceStop = 0.35
	MagnetShrink          = 0.75
	MagnetShrinkSpeed     = 8.0
	MagnetScanInterval    = 0.0 // seconds; zero rescans every tick
	MagnetMaxItemsPerScan = 60
	MagnetQueryLimit      = 128 // raw sphere hits per scan, before filtering

	MagnetShrinkFloor      = 0.01
	MagnetShrinkSpeedFloor = 0.01
	MagnetFalloffMin       = 0.35 // force fraction at the rim
	MagnetShrinkMin        = 0.3
	MagnetShrinkMax        = 1.0

	// MagnetExpiryEpsilon absorbs float drift so a duration that is a whole number of ticks expires on its last tick
	MagnetExpiryEpsilon = 1e-9
)
