package scene

import "image/color"

// Body is the immutable configuration of one orbiting body
// Angles are radians except Speed, which is degrees per second
type Body struct {
	Name        string
	Role        string
	Description string

	Radius     float64 // visual radius, world units
	Orbit      float64 // base orbital radius, world units
	Speed      float64 // degrees per second
	Phase      float64 // initial angle and wobble phase
	WobbleAmp  float64 // orbital radius perturbation, world units
	WobbleFreq float64 // wobble angular rate, rad/s

	Color color.RGBA
	Ring  bool
}

// DefaultBodies returns the club divisions as a fresh slice
// Callers may mutate the result; every open builds its own copy
func DefaultBodies() []Body {
	return []Body{
		{
			Name:        "Propulsion",
			Role:        "Rocketry division",
			Description: "Designs, static-fires and flies the club's high-power rockets.",
			Radius:      6,
			Orbit:       36,
			Speed:       24,
			Phase:       0,
			WobbleAmp:   1.5,
			WobbleFreq:  1.1,
			Color:       color.RGBA{R: 0xFF, G: 0x8C, B: 0x42, A: 0xFF},
		},
		{
			Name:        "Orbiter",
			Role:        "CubeSat and satellite systems",
			Description: "Builds flight-ready CubeSat subsystems and ground station software.",
			Radius:      7.5,
			Orbit:       54,
			Speed:       16,
			Phase:       1.3,
			WobbleAmp:   2,
			WobbleFreq:  0.8,
			Color:       color.RGBA{R: 0x3C, G: 0xD6, B: 0xC8, A: 0xFF},
		},
		{
			Name:        "Rover",
			Role:        "Robotics and planetary rovers",
			Description: "Competes in rover challenges with autonomous navigation and sample handling.",
			Radius:      8,
			Orbit:       72,
			Speed:       11,
			Phase:       2.6,
			WobbleAmp:   2.5,
			WobbleFreq:  0.6,
			Color:       color.RGBA{R: 0xE0, G: 0x4F, B: 0x3A, A: 0xFF},
		},
		{
			Name:        "Skywatch",
			Role:        "Astronomy and observation",
			Description: "Runs observing nights, astrophotography sessions and the campus telescope.",
			Radius:      10,
			Orbit:       90,
			Speed:       7.5,
			Phase:       3.9,
			WobbleAmp:   3,
			WobbleFreq:  0.45,
			Color:       color.RGBA{R: 0xF2, G: 0xC9, B: 0x4C, A: 0xFF},
			Ring:        true,
		},
		{
			Name:        "Launchpad",
			Role:        "Outreach and education",
			Description: "Takes space technology to schools with workshops, talks and build kits.",
			Radius:      6.5,
			Orbit:       106,
			Speed:       5,
			Phase:       5.1,
			WobbleAmp:   2,
			WobbleFreq:  0.35,
			Color:       color.RGBA{R: 0xA8, G: 0x7B, B: 0xF0, A: 0xFF},
		},
	}
}
