package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/spaceclub/spaceclub/render"
)

// Terminal wraps a tcell screen with color-mode aware drawing
type Terminal struct {
	screen tcell.Screen
	mode   ColorMode

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a terminal on the controlling tty
func New(mode ColorMode) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(s, mode), nil
}

// NewWithScreen wraps an existing screen, used with tcell.NewSimulationScreen in tests
func NewWithScreen(s tcell.Screen, mode ColorMode) *Terminal {
	return &Terminal{screen: s, mode: mode}
}

// Init enters raw mode, enables mouse motion reporting and hides the cursor
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.HideCursor()
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.Clear()

	t.initialized = true
	return nil
}

// Fini restores terminal state; safe to call more than once
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.screen.DisableMouse()
	t.screen.Fini()
	t.finalized = true
}

func (t *Terminal) Screen() tcell.Screen   { return t.screen }
func (t *Terminal) ColorMode() ColorMode   { return t.mode }
func (t *Terminal) Size() (int, int)       { return t.screen.Size() }
func (t *Terminal) PollEvent() tcell.Event { return t.screen.PollEvent() }

// PostEvent injects an event into the poll queue
func (t *Terminal) PostEvent(ev tcell.Event) error {
	return t.screen.PostEvent(ev)
}

// Show pushes pending cell changes to the tty
func (t *Terminal) Show() { t.screen.Show() }

// Sync repaints the whole screen, used after resize
func (t *Terminal) Sync() { t.screen.Sync() }

// Clear fills the screen with bg
func (t *Terminal) Clear(bg render.RGB) {
	t.screen.Fill(' ', t.Style(bg, bg))
}

// Style builds a tcell style in the terminal's color mode
func (t *Terminal) Style(fg, bg render.RGB) tcell.Style {
	return tcell.StyleDefault.
		Foreground(TcellColor(fg, t.mode)).
		Background(TcellColor(bg, t.mode))
}

// DrawText writes s at (x, y) honoring wide runes; returns cells used
// Text past the right edge is clipped
func (t *Terminal) DrawText(x, y int, s string, style tcell.Style) int {
	w, h := t.screen.Size()
	if y < 0 || y >= h {
		return 0
	}
	start := x
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		if x >= 0 {
			t.screen.SetContent(x, y, r, nil, style)
		}
		x += rw
	}
	return x - start
}

// FillRow paints cells [x, x+n) on row y
func (t *Terminal) FillRow(x, y, n int, style tcell.Style) {
	for i := 0; i < n; i++ {
		t.screen.SetContent(x+i, y, ' ', nil, style)
	}
}
