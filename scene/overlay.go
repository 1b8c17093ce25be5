package scene

import (
	"log"

	"github.com/spaceclub/spaceclub/input"
)

// Rect is an axis-aligned pixel rectangle
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside or on the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Overlay mounts a Scene on open and tears it down on close
// Open state is driven from outside via SetOpen; the overlay only reports close requests through onClose
type Overlay struct {
	cfg     Config
	factory func() []Body
	onClose func()
	hooks   Hooks

	dispatcher  *input.Dispatcher
	unsubscribe func()

	scene     *Scene
	viewport  Viewport
	closeRect Rect
}

// NewOverlay creates a closed overlay; factory builds the bodies for every open
func NewOverlay(d *input.Dispatcher, cfg Config, factory func() []Body, onClose func()) *Overlay {
	if factory == nil {
		factory = DefaultBodies
	}
	return &Overlay{
		cfg:        cfg,
		factory:    factory,
		onClose:    onClose,
		dispatcher: d,
	}
}

// SetOpen mounts or unmounts the scene; repeated calls with the same value are no-ops
func (o *Overlay) SetOpen(open bool) {
	if open == o.IsOpen() {
		return
	}
	if open {
		o.scene = New(o.factory(), o.cfg)
		o.scene.SetHooks(o.hooks)
		o.unsubscribe = o.dispatcher.Subscribe(o.handle)
		log.Printf("scene: open (%d bodies)", o.scene.Len())
		return
	}
	o.unsubscribe()
	o.unsubscribe = nil
	o.scene = nil
	log.Printf("scene: closed")
}

// IsOpen reports whether a scene is mounted
func (o *Overlay) IsOpen() bool { return o.scene != nil }

// Scene returns the mounted scene or nil
func (o *Overlay) Scene() *Scene { return o.scene }

// SetHooks sets interaction callbacks for the current and future scenes
func (o *Overlay) SetHooks(h Hooks) {
	o.hooks = h
	if o.scene != nil {
		o.scene.SetHooks(h)
	}
}

// Resize sets the drawing surface size in pixels
func (o *Overlay) Resize(width, height float64) {
	o.viewport = Viewport{Width: width, Height: height}
}

// SetCloseRect places the close button hit area in pixels
func (o *Overlay) SetCloseRect(r Rect) { o.closeRect = r }

// CloseRect returns the close button hit area
func (o *Overlay) CloseRect() Rect { return o.closeRect }

// Frame advances and projects the scene by dt seconds
// Returns false when closed or when there is no surface to draw on
func (o *Overlay) Frame(dt float64) bool {
	if o.scene == nil || o.viewport.Empty() {
		return false
	}
	o.scene.Advance(dt)
	o.scene.Project(o.viewport)
	return true
}

func (o *Overlay) requestClose() {
	if o.onClose != nil {
		o.onClose()
	}
}

// handle is the modal intent handler; everything except quit and resize stops here
func (o *Overlay) handle(in input.Intent) bool {
	s := o.scene
	if s == nil {
		return false
	}
	switch in.Type {
	case input.IntentQuit, input.IntentResize:
		return false
	case input.IntentEscape:
		o.requestClose()
	case input.IntentPointerMove:
		s.PointerMove(in.X, in.Y)
	case input.IntentPointerDown:
		if !o.closeRect.Contains(in.X, in.Y) {
			s.PointerDown(in.X, in.Y)
		}
	case input.IntentPointerUp:
		s.PointerUp(in.X, in.Y)
	case input.IntentClick:
		if o.closeRect.Contains(in.X, in.Y) {
			o.requestClose()
			return true
		}
		s.Click(in.X, in.Y)
	case input.IntentWheel:
		s.Wheel(in.Delta)
	}
	return true
}
