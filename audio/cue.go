package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/spaceclub/spaceclub/parameter"
)

// Cue identifies an interface sound
type Cue int

const (
	CueHover Cue = iota
	CueSelect
	CueOpen
	CueClose
)

var cueNames = [...]string{"hover", "select", "open", "close"}

func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// Duration returns the audible length of the cue
func (c Cue) Duration() time.Duration {
	switch c {
	case CueHover:
		return parameter.HoverDuration
	case CueSelect:
		return 2 * parameter.SelectDuration
	case CueOpen, CueClose:
		return parameter.SweepDuration
	default:
		return 0
	}
}

// Stream builds a fresh, bounded streamer for the cue, nil for unknown cues
func Stream(c Cue, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueHover:
		s = hoverTick(rate)
	case CueSelect:
		s = selectChime(rate)
	case CueOpen:
		s = sweepCue(true, rate)
	case CueClose:
		s = sweepCue(false, rate)
	default:
		return nil
	}
	return beep.Take(rate.N(c.Duration()), s)
}
