package core

// Entity is a stable identifier for a simulated body
// Ids are arena indices handed out monotonically and never reused, so a stale id can only miss, never alias
type Entity uint64

// InvalidEntity is the zero id, never assigned to a body
const InvalidEntity Entity = 0
