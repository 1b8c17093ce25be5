package window

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/spaceclub/spaceclub/audio"
	"github.com/spaceclub/spaceclub/input"
	"github.com/spaceclub/spaceclub/parameter"
	"github.com/spaceclub/spaceclub/parameter/visual"
	"github.com/spaceclub/spaceclub/render"
	"github.com/spaceclub/spaceclub/render/renderer"
	"github.com/spaceclub/spaceclub/scene"
)

// Glyph cell of ebitenutil's debug font
const (
	glyphW = 6
	glyphH = 16
)

// Options configures the window frontend
type Options struct {
	Scene  scene.Config
	FPS    int
	Title  string
	Player *audio.Player
}

// game drives the orbital scene in a desktop window
// Ebiten input is rewritten as terminal events so both frontends share one input.Machine
type game struct {
	machine    *input.Machine
	dispatcher *input.Dispatcher
	overlay    *scene.Overlay
	orch       *render.Orchestrator
	player     *audio.Player

	frame *ebiten.Image
	pix   []byte
	dt    float64

	closed bool
}

// Run opens the window and blocks until the scene is closed
func Run(opts Options) error {
	if opts.FPS <= 0 {
		opts.FPS = parameter.DefaultFPS
	}
	if opts.Title == "" {
		opts.Title = "Orbital"
	}

	g := newGame(opts)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(parameter.WindowWidth*parameter.WindowScale, parameter.WindowHeight*parameter.WindowScale)
	ebiten.SetTPS(opts.FPS)

	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

func newGame(opts Options) *game {
	g := &game{
		machine:    input.NewMachine(),
		dispatcher: input.NewDispatcher(),
		orch:       render.NewOrchestrator(parameter.WindowWidth, parameter.WindowHeight, visual.RgbSpace),
		player:     opts.Player,
		dt:         1 / float64(opts.FPS),
		pix:        make([]byte, 4*parameter.WindowWidth*parameter.WindowHeight),
	}
	g.machine.SetCellScale(1, 1)
	g.orch.Canvas().SetGlyphSize(glyphW, glyphH)
	renderer.RegisterScene(g.orch)

	g.overlay = scene.NewOverlay(g.dispatcher, opts.Scene, nil, g.close)
	g.overlay.SetHooks(scene.Hooks{
		OnHover: func(i int) {
			if i >= 0 {
				g.play(audio.CueHover)
			}
		},
		OnSelect: func(int) { g.play(audio.CueSelect) },
	})
	g.overlay.Resize(parameter.WindowWidth, parameter.WindowHeight)
	g.overlay.SetCloseRect(renderer.CloseButtonRect(g.orch.Canvas()))

	// Quit passes the overlay; nothing else sits below it
	g.dispatcher.Subscribe(func(in input.Intent) bool {
		if in.Type == input.IntentQuit {
			g.close()
		}
		return true
	})
	g.overlay.SetOpen(true)
	g.play(audio.CueOpen)
	return g
}

func (g *game) close() {
	if g.closed {
		return
	}
	g.closed = true
	g.overlay.SetOpen(false)
	g.play(audio.CueClose)
	log.Printf("window: closed")
}

func (g *game) play(c audio.Cue) {
	if g.player != nil {
		g.player.Play(c)
	}
}

// events translates this tick's ebiten input into terminal events
func (g *game) events() []tcell.Event {
	var evs []tcell.Event
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		evs = append(evs, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	}
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch k {
		case ebiten.KeyQ:
			evs = append(evs, tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
		case ebiten.KeyEqual, ebiten.KeyNumpadAdd:
			evs = append(evs, tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
		case ebiten.KeyMinus, ebiten.KeyNumpadSubtract:
			evs = append(evs, tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
		}
	}

	x, y := ebiten.CursorPosition()
	btn := tcell.ButtonNone
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		btn = tcell.Button1
	}
	evs = append(evs, tcell.NewEventMouse(x, y, btn, tcell.ModNone))

	if _, wy := ebiten.Wheel(); wy > 0 {
		evs = append(evs, tcell.NewEventMouse(x, y, tcell.WheelUp, tcell.ModNone))
	} else if wy < 0 {
		evs = append(evs, tcell.NewEventMouse(x, y, tcell.WheelDown, tcell.ModNone))
	}
	return evs
}

func (g *game) Update() error {
	for _, ev := range g.events() {
		for _, in := range g.machine.Process(ev) {
			g.dispatcher.Dispatch(in)
		}
		if g.closed {
			return ebiten.Termination
		}
	}

	if g.overlay.Frame(g.dt) {
		g.orch.RenderFrame(render.Context{
			Scene:     g.overlay.Scene(),
			Delta:     g.dt,
			CloseRect: g.overlay.CloseRect(),
		})
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	c := g.orch.Canvas()
	if g.frame == nil {
		g.frame = ebiten.NewImage(c.Width(), c.Height())
	}
	c.WriteRGBA(g.pix)
	g.frame.WritePixels(g.pix)
	screen.DrawImage(g.frame, nil)

	// Debug font is white only; label colors are dropped here
	for _, l := range c.Labels() {
		ebitenutil.DebugPrintAt(screen, l.Text, int(l.X), int(l.Y))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return parameter.WindowWidth, parameter.WindowHeight
}
