package parameter

// Camera zoom bounds and wheel step
const (
	// ZoomMin is the smallest zoom factor reachable by wheel input
	ZoomMin = 0.5

	// ZoomMax is the largest zoom factor reachable by wheel input
	ZoomMax = 3.0

	// ZoomStep is the zoom change per wheel notch or +/- key
	ZoomStep = 0.15

	// ZoomDefault is the zoom factor on every open
	ZoomDefault = 1.0
)

// Camera rotation (drag-to-rotate view)
const (
	// DragSensitivity is view rotation in radians per pixel of horizontal drag
	DragSensitivity = 0.01

	// CoastDecay is the exponential decay rate (1/s) of release velocity
	// Velocity halves roughly every ln(2)/CoastDecay seconds
	CoastDecay = 3.5

	// CoastStopVelocity snaps residual coast velocity (rad/s) to zero
	CoastStopVelocity = 1e-4
)
