package app

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/spaceclub/spaceclub/audio"
	"github.com/spaceclub/spaceclub/content"
	"github.com/spaceclub/spaceclub/core"
	"github.com/spaceclub/spaceclub/input"
	"github.com/spaceclub/spaceclub/pages"
	"github.com/spaceclub/spaceclub/parameter"
	"github.com/spaceclub/spaceclub/parameter/visual"
	"github.com/spaceclub/spaceclub/render"
	"github.com/spaceclub/spaceclub/render/renderer"
	"github.com/spaceclub/spaceclub/scene"
	"github.com/spaceclub/spaceclub/terminal"
)

// Options configures an App
type Options struct {
	Scene   scene.Config
	FPS     int
	Content *content.Content

	// Keys may be nil for the default bindings
	Keys *input.KeyTable

	// Player may be nil for silence
	Player *audio.Player

	// SceneOnly opens the scene at start; closing it quits
	SceneOnly bool

	// Bodies builds the bodies for every open; nil uses scene.DefaultBodies
	Bodies func() []scene.Body

	// Now is the clock for frame deltas and event ordering; nil uses time.Now
	Now func() time.Time
}

// App is the terminal application: shell pages with the orbital scene as a modal overlay
// All state is owned by the goroutine calling Run (or the test driving HandleEvent/Frame)
type App struct {
	term       *terminal.Terminal
	machine    *input.Machine
	dispatcher *input.Dispatcher
	overlay    *scene.Overlay
	shell      *pages.Shell
	orch       *render.Orchestrator
	scheduler  *FrameScheduler
	player     *audio.Player
	now        func() time.Time

	sceneOnly bool
	quit      bool
	lastFrame time.Time
}

// New wires an application onto an initialized terminal
func New(term *terminal.Terminal, opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Content == nil {
		opts.Content = &content.Content{}
	}

	a := &App{
		term:       term,
		machine:    input.NewMachine(),
		dispatcher: input.NewDispatcher(),
		shell:      pages.NewShell(opts.Content, opts.Now),
		orch:       render.NewOrchestrator(0, 0, visual.RgbSpace),
		scheduler:  NewFrameScheduler(opts.FPS),
		player:     opts.Player,
		now:        opts.Now,
		sceneOnly:  opts.SceneOnly,
	}
	a.machine.SetKeyTable(opts.Keys)
	renderer.RegisterScene(a.orch)

	a.overlay = scene.NewOverlay(a.dispatcher, opts.Scene, opts.Bodies, a.closeScene)
	a.overlay.SetHooks(scene.Hooks{
		OnHover: func(i int) {
			if i >= 0 {
				a.play(audio.CueHover)
			}
		},
		OnSelect: func(int) { a.play(audio.CueSelect) },
	})

	// Base layer; the overlay subscribes above it while open
	a.dispatcher.Subscribe(a.handleShell)

	a.resize(term.Size())
	if a.sceneOnly {
		a.openScene()
	}
	a.draw()
	return a
}

func (a *App) Overlay() *scene.Overlay       { return a.overlay }
func (a *App) Shell() *pages.Shell           { return a.shell }
func (a *App) Dispatcher() *input.Dispatcher { return a.dispatcher }
func (a *App) Scheduler() *FrameScheduler    { return a.scheduler }
func (a *App) Canvas() *render.Canvas        { return a.orch.Canvas() }
func (a *App) Done() bool                    { return a.quit }

// Run pumps terminal events and frames until quit, ctx cancellation or terminal close
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, parameter.EventQueueSize)
	done := make(chan struct{})
	defer close(done)
	defer a.scheduler.Stop()

	core.Go(func() { a.pump(events, done) })

	for !a.quit {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.HandleEvent(ev)
		case now := <-a.scheduler.C():
			a.Frame(now)
		}
	}
	return nil
}

// pump is the only reader of the terminal; PollEvent returns nil once the screen is finalized
func (a *App) pump(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := a.term.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent translates one terminal event and routes its intents
func (a *App) HandleEvent(ev tcell.Event) {
	for _, in := range a.machine.Process(ev) {
		if in.Type == input.IntentResize {
			a.resize(in.Col, in.Row)
		}
		a.dispatcher.Dispatch(in)
		if a.quit {
			return
		}
	}
	// The scene redraws on its own ticks
	if !a.overlay.IsOpen() {
		a.draw()
	}
}

// handleShell is the bottom handler; it sees everything the overlay lets through
func (a *App) handleShell(in input.Intent) bool {
	if a.overlay.IsOpen() {
		// Only quit and resize pass the modal overlay
		if in.Type == input.IntentQuit {
			a.quit = true
		}
		return true
	}
	switch a.shell.Handle(in) {
	case pages.CmdQuit:
		a.quit = true
	case pages.CmdOpenScene:
		a.openScene()
	}
	return true
}

// Frame advances and draws the scene at time now
func (a *App) Frame(now time.Time) {
	dt := now.Sub(a.lastFrame)
	a.lastFrame = now
	dt = min(max(dt, 0), parameter.MaxFrameDelta)

	if !a.overlay.Frame(dt.Seconds()) {
		return
	}
	ctx := render.Context{
		Scene:     a.overlay.Scene(),
		Delta:     dt.Seconds(),
		CloseRect: a.overlay.CloseRect(),
	}
	if a.orch.RenderFrame(ctx) {
		a.term.Present(a.orch.Canvas())
		a.term.Show()
	}
}

func (a *App) openScene() {
	if a.overlay.IsOpen() {
		return
	}
	a.machine.Reset()
	a.overlay.SetOpen(true)
	a.lastFrame = a.now()
	a.scheduler.Start()
	a.play(audio.CueOpen)
}

// closeScene is the overlay's close request
func (a *App) closeScene() {
	a.overlay.SetOpen(false)
	a.scheduler.Stop()
	a.machine.Reset()
	a.play(audio.CueClose)
	if a.sceneOnly {
		a.quit = true
	}
}

func (a *App) resize(cols, rows int) {
	a.shell.Resize(cols, rows)
	w, h := terminal.CanvasSize(cols, rows)
	a.orch.Resize(w, h)
	a.overlay.Resize(float64(w), float64(h))
	a.overlay.SetCloseRect(renderer.CloseButtonRect(a.orch.Canvas()))
	a.term.Sync()
	log.Printf("app: resize %dx%d cells", cols, rows)
}

func (a *App) draw() {
	a.shell.Draw(a.term)
	a.term.Show()
}

func (a *App) play(c audio.Cue) {
	if a.player != nil {
		a.player.Play(c)
	}
}
