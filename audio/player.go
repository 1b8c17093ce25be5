package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/spaceclub/spaceclub/parameter"
)

// Player mixes interface cues into a single speaker stream
// Every method is a no-op until Initialize succeeds
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	volume      float64
	initialized bool

	lastPlayed map[Cue]time.Time
	now        func() time.Time
}

// NewPlayer creates a player with master volume in [0,1]
func NewPlayer(volume float64) *Player {
	p := &Player{
		rate:       beep.SampleRate(parameter.AudioSampleRate),
		mixer:      &beep.Mixer{},
		lastPlayed: make(map[Cue]time.Time),
		now:        time.Now,
	}
	p.master = &effects.Volume{Streamer: p.mixer, Base: 2}
	p.setVolume(volume)
	return p
}

// Initialize opens the speaker; failure leaves the player silent
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.master)
	p.initialized = true
	return nil
}

// Initialized reports whether cues reach the speaker
func (p *Player) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues a cue; repeats of the same cue within MinCueGap are dropped
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	now := p.now()
	if last, ok := p.lastPlayed[c]; ok && now.Sub(last) < parameter.MinCueGap {
		return
	}

	s := Stream(c, p.rate)
	if s == nil {
		return
	}
	p.lastPlayed[c] = now

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// SetVolume changes master volume, clamped to [0,1]
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.setVolume(v)
}

func (p *Player) setVolume(v float64) {
	v = math.Max(0, math.Min(1, v))
	p.volume = v
	p.master.Silent = v <= 0
	if v > 0 {
		p.master.Volume = math.Log2(v)
	} else {
		p.master.Volume = 0
	}
}

// Volume returns the master volume
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Close silences queued cues; the speaker itself stays open for the process lifetime
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	clear(p.lastPlayed)
	p.initialized = false
}
