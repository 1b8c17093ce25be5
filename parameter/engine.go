package parameter

import "time"

// Frame Loop Timing
const (
	// DefaultFPS is the frame rate used when config leaves it unset
	DefaultFPS = 60

	// MaxFrameDelta caps the per-frame delta after a stall (suspend, slow terminal)
	// Larger gaps are treated as a single short frame instead of a jump
	MaxFrameDelta = 100 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256
)
