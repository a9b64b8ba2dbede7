package parameter

import "time"

// Simulation Loop
const (
	// DefaultTickRate is the fixed simulation rate in ticks per second
	DefaultTickRate = 60

	// FrameUpdateInterval is the terminal redraw interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// InputBufferSize is the capacity of the channel carrying key commands into the sim loop
	InputBufferSize = 64

	// InputHoldDuration keeps the hole moving between key repeats
	InputHoldDuration = 0.2
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Event Feed
const (
	// FeedWriteTimeout bounds a single websocket write
	FeedWriteTimeout = 2 * time.Second

	// FeedClientBuffer is the per-client outbound message backlog; slow clients drop messages beyond it
	FeedClientBuffer = 128

	// FeedPath is the websocket endpoint served on the -listen address
	FeedPath = "/feed"

	// FeedReadHeaderTimeout bounds the upgrade request headers
	FeedReadHeaderTimeout = 5 * time.Second
)
