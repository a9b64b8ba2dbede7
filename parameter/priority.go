package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityInput   = 0
	PriorityBoost   = 10 // Radius multiplier settles before the engine reads it
	PriorityHole    = 20 // Hole movement and bounds clamp
	PrioritySpawn   = 30 // Unfreeze pending objects
	PriorityAbsorb  = 40
	PriorityPhysics = 50 // Integration always follows the absorption phases
	PriorityEvents  = 60 // Route events produced this tick once the world has settled
	PriorityFrame   = 70 // Renderer snapshot sees the finished tick
)
