package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// AudioDefaultVolume is the master volume in [0,1]
	AudioDefaultVolume = 0.6
)

// Interface cues
const (
	HoverFreq     = 1320.0
	HoverDuration = 25 * time.Millisecond

	SelectFreqLow  = 660.0
	SelectFreqHigh = 990.0
	SelectDuration = 60 * time.Millisecond // per tone

	SweepLow      = 220.0
	SweepHigh     = 660.0
	SweepDuration = 180 * time.Millisecond

	// MinCueGap drops repeats of the same cue inside this window (hover over crowded bodies)
	MinCueGap = 40 * time.Millisecond
)
