package parameter

import "math"

// Projection
const (
	// TiltDeg is the fixed view tilt; vertical offset is z*sin(tilt)
	TiltDeg = 25.0

	// FitMargin leaves a border between the outermost orbit and the viewport edge
	FitMargin = 0.9

	// DepthScaleMin is the size factor of the farthest body
	DepthScaleMin = 0.65

	// DepthScaleRange is added to DepthScaleMin for the nearest body
	DepthScaleRange = 0.5

	// OrbitGuideSegments is the sample count of each orbit guide ellipse
	OrbitGuideSegments = 96
)

// Anchor (central star)
const (
	// AnchorRadius is the anchor radius in world units
	AnchorRadius = 14.0

	// AnchorPulseAmp is the relative radius pulse amplitude
	AnchorPulseAmp = 0.06

	// AnchorPulseRate is the pulse angular rate in rad/s
	AnchorPulseRate = 2.2

	// AnchorGlowFactor is the glow radius as a multiple of the anchor radius
	AnchorGlowFactor = 2.2
)

// Interaction
const (
	// HitMargin is added to a body's projected radius for pointer hit tests (pixels)
	HitMargin = 3.0

	// ClickSlop is the max pointer travel (cells) between press and release that still counts as a click
	ClickSlop = 1

	// FocusRate is the per-60Hz-frame easing factor toward the focus angle
	FocusRate = 0.08

	// FocusAngle is the front-centre orbital angle in view space
	FocusAngle = math.Pi / 2
)

// Starfield
const (
	// StarCount is the number of background stars per open
	StarCount = 160

	// StarTwinkleRate is the max twinkle angular rate in rad/s
	StarTwinkleRate = 3.0

	// StarDriftFactor scales view rotation into starfield horizontal drift
	StarDriftFactor = 0.35

	// StarSeed seeds the starfield layout so every open looks the same
	StarSeed = 1969
)

// Body shading
const (
	// BodyGlowFactor is the glow extent as a multiple of the body radius
	BodyGlowFactor = 1.6

	// BodyCoreRadius is the normalized radius of the bright core
	BodyCoreRadius = 0.7

	// BodySpecPower is the Blinn-Phong specular exponent
	BodySpecPower = 20.0

	// BodyMinRadius is the projected radius below which a body is a single pixel
	BodyMinRadius = 0.6

	// RingFactor is the ring radius as a multiple of the body radius
	RingFactor = 1.8

	// SelectPulseRate is the selection ring pulse angular rate in rad/s
	SelectPulseRate = 6.0

	// HoverHighlight is the white mix applied to a hovered body
	HoverHighlight = 0.25
)

// HUD layout
const (
	// HUDDescriptionCols caps the selected body description width in glyphs
	HUDDescriptionCols = 40
)
