package scene

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spaceclub/spaceclub/parameter"
)

// Hooks are optional callbacks fired on interaction changes
// Index -1 in OnHover means hover ended
type Hooks struct {
	OnHover  func(index int)
	OnSelect func(index int)
}

// Star is one background star in normalized coordinates
type Star struct {
	X, Y    float64 // [0,1)
	Bright  float64 // base brightness [0,1]
	Twinkle float64 // rad/s
	Phase   float64
}

type dragState struct {
	active        bool
	startX        float64
	startY        float64
	startRotation float64
	lastRotation  float64
}

// Scene owns the bodies, animation and interaction state of one open session
// It is not safe for concurrent use; the owning loop serializes frames and input
type Scene struct {
	cfg    Config
	bodies []Body

	angles  []float64
	elapsed float64
	extent  float64
	sinTilt float64

	cam      Camera
	hovered  int
	selected int
	focused  bool
	drag     dragState

	viewport  Viewport
	fit       float64
	projected []Projected
	order     []int
	anchor    Anchor

	stars []Star
	hooks Hooks
}

// New creates a scene with fresh state; bodies is copied
func New(bodies []Body, cfg Config) *Scene {
	s := &Scene{
		cfg:      cfg,
		bodies:   append([]Body(nil), bodies...),
		cam:      newCamera(),
		hovered:  -1,
		selected: -1,
		sinTilt:  math.Sin(mgl64.DegToRad(cfg.TiltDeg)),
	}
	if len(s.bodies) > 0 {
		s.selected = 0
	}

	s.angles = make([]float64, len(s.bodies))
	for i, b := range s.bodies {
		s.angles[i] = b.Phase
		if e := b.Orbit + math.Abs(b.WobbleAmp); e > s.extent {
			s.extent = e
		}
	}
	if s.extent == 0 {
		s.extent = 1
	}

	rng := rand.New(rand.NewSource(parameter.StarSeed))
	s.stars = make([]Star, cfg.StarCount)
	for i := range s.stars {
		s.stars[i] = Star{
			X:       rng.Float64(),
			Y:       rng.Float64(),
			Bright:  0.25 + 0.75*rng.Float64()*rng.Float64(),
			Twinkle: 0.5 + rng.Float64()*(parameter.StarTwinkleRate-0.5),
			Phase:   rng.Float64() * 2 * math.Pi,
		}
	}
	return s
}

// SetHooks replaces interaction callbacks
func (s *Scene) SetHooks(h Hooks) { s.hooks = h }

func (s *Scene) Config() Config      { return s.cfg }
func (s *Scene) Bodies() []Body      { return s.bodies }
func (s *Scene) Body(i int) Body     { return s.bodies[i] }
func (s *Scene) Len() int            { return len(s.bodies) }
func (s *Scene) Angle(i int) float64 { return s.angles[i] }
func (s *Scene) Elapsed() float64    { return s.elapsed }
func (s *Scene) Camera() Camera      { return s.cam }
func (s *Scene) Hovered() int        { return s.hovered }
func (s *Scene) Selected() int       { return s.selected }
func (s *Scene) Focused() bool       { return s.focused }
func (s *Scene) Dragging() bool      { return s.drag.active }
func (s *Scene) Stars() []Star       { return s.stars }

// Active is the body the HUD describes: hovered, else selected
func (s *Scene) Active() int {
	if s.hovered >= 0 {
		return s.hovered
	}
	return s.selected
}

// Mode derives body i's animation mode from interaction state
// Hover freeze takes precedence over focus easing
func (s *Scene) Mode(i int) Mode {
	if i == s.hovered {
		return Mode{Kind: ModeFrozen}
	}
	if s.focused && i == s.selected {
		return Mode{Kind: ModeEasing, Target: parameter.FocusAngle - s.cam.Rotation}
	}
	return Mode{Kind: ModeOrbiting}
}

// Advance moves the scene forward by dt seconds
func (s *Scene) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	s.elapsed += dt

	for i := range s.bodies {
		s.angles[i] = Step(s.angles[i], s.bodies[i], s.Mode(i), dt, s.cfg.FocusRate)
	}

	if s.drag.active {
		s.cam.Velocity = (s.cam.Rotation - s.drag.lastRotation) / dt
		s.drag.lastRotation = s.cam.Rotation
		return
	}
	if s.cfg.Inertia {
		s.cam.coast(dt, s.cfg.CoastDecay)
	}
}
