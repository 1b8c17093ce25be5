package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ModeKind discriminates per-body animation modes
type ModeKind uint8

const (
	ModeOrbiting ModeKind = iota // constant angular speed
	ModeFrozen                   // hovered, angle held
	ModeEasing                   // focused, eased toward Target
)

// Mode is the per-body animation mode; Target is only meaningful for ModeEasing
type Mode struct {
	Kind   ModeKind
	Target float64
}

func (k ModeKind) String() string {
	switch k {
	case ModeOrbiting:
		return "orbiting"
	case ModeFrozen:
		return "frozen"
	case ModeEasing:
		return "easing"
	default:
		return "unknown"
	}
}

// Step advances one body angle by dt seconds under mode m
// rate is the per-60Hz-frame easing factor used by ModeEasing
func Step(angle float64, b Body, m Mode, dt, rate float64) float64 {
	if dt <= 0 {
		return angle
	}
	switch m.Kind {
	case ModeFrozen:
		return angle
	case ModeEasing:
		// Nearest equivalent of target keeps angles unwrapped and easing on the short arc
		d := math.Remainder(m.Target-angle, 2*math.Pi)
		k := 1 - math.Pow(1-rate, dt*60)
		return angle + d*k
	default:
		return angle + mgl64.DegToRad(b.Speed)*dt
	}
}

// wobbledOrbit returns the effective orbital radius at elapsed seconds
func wobbledOrbit(b Body, elapsed float64) float64 {
	return b.Orbit + b.WobbleAmp*math.Sin(elapsed*b.WobbleFreq+b.Phase)
}
