package render

// Priority determines render order. Lower values render first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityOrbits
	PriorityBehind
	PriorityAnchor
	PriorityFront
	PriorityLabels
	PriorityHUD
)
