package scene

import "github.com/spaceclub/spaceclub/parameter"

// StarfieldMode selects how background stars move
type StarfieldMode string

const (
	// StarfieldTwinkle keeps stars fixed in screen space and varies brightness
	StarfieldTwinkle StarfieldMode = "twinkle"
	// StarfieldDrift places stars in world space so they slide with view rotation
	StarfieldDrift StarfieldMode = "drift"
)

// Config holds scene tuning; zero values are not meaningful, start from DefaultConfig
type Config struct {
	ZoomMin  float64
	ZoomMax  float64
	ZoomStep float64

	DragSensitivity float64
	Inertia         bool
	CoastDecay      float64

	FocusEase bool
	FocusRate float64

	HitMargin float64
	TiltDeg   float64

	Starfield StarfieldMode
	StarCount int
}

// DefaultConfig returns tuning from parameter constants
func DefaultConfig() Config {
	return Config{
		ZoomMin:         parameter.ZoomMin,
		ZoomMax:         parameter.ZoomMax,
		ZoomStep:        parameter.ZoomStep,
		DragSensitivity: parameter.DragSensitivity,
		Inertia:         true,
		CoastDecay:      parameter.CoastDecay,
		FocusEase:       true,
		FocusRate:       parameter.FocusRate,
		HitMargin:       parameter.HitMargin,
		TiltDeg:         parameter.TiltDeg,
		Starfield:       StarfieldTwinkle,
		StarCount:       parameter.StarCount,
	}
}
