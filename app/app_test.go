package app

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/spaceclub/spaceclub/content"
	"github.com/spaceclub/spaceclub/pages"
	"github.com/spaceclub/spaceclub/parameter"
	"github.com/spaceclub/spaceclub/scene"
	"github.com/spaceclub/spaceclub/terminal"
)

func newTestApp(t *testing.T, w, h int, sceneOnly bool) (*App, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := terminal.NewWithScreen(sim, terminal.ColorModeTrueColor)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(term.Fini)

	c, err := content.Load(content.Bundled())
	if err != nil {
		t.Fatalf("Load bundled content: %v", err)
	}
	clock := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	a := New(term, Options{
		Scene:     scene.DefaultConfig(),
		FPS:       parameter.DefaultFPS,
		Content:   c,
		SceneOnly: sceneOnly,
		Now:       func() time.Time { return clock },
	})
	return a, sim
}

func key(r rune) tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestSchedulerLifecycle(t *testing.T) {
	f := NewFrameScheduler(50)
	if f.Interval() != 20*time.Millisecond {
		t.Errorf("Expected 20ms interval, got %v", f.Interval())
	}
	if f.Running() || f.C() != nil {
		t.Fatal("New scheduler should be stopped with a nil channel")
	}
	f.Start()
	f.Start()
	if !f.Running() || f.C() == nil {
		t.Fatal("Started scheduler should expose a channel")
	}
	f.Stop()
	f.Stop()
	if f.Running() || f.C() != nil {
		t.Error("Stopped scheduler should expose a nil channel")
	}

	if NewFrameScheduler(0).Interval() != time.Second/60 {
		t.Error("Non-positive fps should fall back to 60")
	}
}

func TestOpenCloseScene(t *testing.T) {
	a, _ := newTestApp(t, 80, 24, false)

	if a.Overlay().IsOpen() {
		t.Fatal("Scene should start closed")
	}
	if a.Dispatcher().Len() != 1 {
		t.Fatalf("Expected only the shell subscribed, got %d", a.Dispatcher().Len())
	}

	a.HandleEvent(key('o'))
	if !a.Overlay().IsOpen() {
		t.Fatal("'o' should open the scene")
	}
	if a.Dispatcher().Len() != 2 {
		t.Errorf("Expected overlay subscribed above the shell, got %d handlers", a.Dispatcher().Len())
	}
	if !a.Scheduler().Running() {
		t.Error("Scheduler should run while the scene is open")
	}

	a.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if a.Overlay().IsOpen() {
		t.Fatal("Escape should close the scene")
	}
	if a.Dispatcher().Len() != 1 {
		t.Errorf("Overlay handler should be unsubscribed, got %d handlers", a.Dispatcher().Len())
	}
	if a.Scheduler().Running() {
		t.Error("Scheduler should stop with the scene closed")
	}
	if a.Done() {
		t.Error("Closing the scene should not quit")
	}
}

func TestRepeatedOpenDoesNotLeakHandlers(t *testing.T) {
	a, _ := newTestApp(t, 80, 24, false)
	for i := 0; i < 10; i++ {
		a.HandleEvent(key('o'))
		a.HandleEvent(key('o'))
		a.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	}
	if a.Dispatcher().Len() != 1 {
		t.Errorf("Expected 1 handler after open/close cycles, got %d", a.Dispatcher().Len())
	}
}

func TestSceneIsModal(t *testing.T) {
	a, _ := newTestApp(t, 80, 24, false)
	a.HandleEvent(key('o'))

	// Navigation keys must not reach the shell behind the scene
	a.HandleEvent(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	a.HandleEvent(key('3'))
	if a.Shell().Page() != pages.Home {
		t.Errorf("Shell changed page behind the scene: %v", a.Shell().Page())
	}

	// Quit still passes
	a.HandleEvent(key('q'))
	if !a.Done() {
		t.Error("Quit should pass the overlay")
	}
}

func TestShellNavigation(t *testing.T) {
	a, sim := newTestApp(t, 80, 24, false)

	a.HandleEvent(key('2'))
	if a.Shell().Page() != pages.Events {
		t.Fatalf("Expected Events page, got %v", a.Shell().Page())
	}

	// The shell draws after every event while the scene is closed
	r, _, _, _ := sim.GetContent(a.Shell().Tabs()[0].X+1, 0)
	if r == ' ' || r == 0 {
		t.Error("Expected the nav bar drawn on row 0")
	}
}

func TestCloseButtonClick(t *testing.T) {
	a, _ := newTestApp(t, 80, 24, false)
	a.HandleEvent(key('o'))

	rect := a.Overlay().CloseRect()
	if rect.W <= 0 {
		t.Fatalf("Close rect not placed: %+v", rect)
	}
	col := int(rect.X + rect.W/2)
	a.HandleEvent(tcell.NewEventMouse(col, 0, tcell.Button1, tcell.ModNone))
	if !a.Overlay().IsOpen() {
		t.Fatal("Press on close button should not close yet")
	}
	if a.Overlay().Scene().Dragging() {
		t.Error("Press on close button should not start a drag")
	}
	a.HandleEvent(tcell.NewEventMouse(col, 0, tcell.ButtonNone, tcell.ModNone))
	if a.Overlay().IsOpen() {
		t.Error("Click on close button should close the scene")
	}
}

func TestFrameDrawsScene(t *testing.T) {
	a, sim := newTestApp(t, 40, 12, false)
	a.HandleEvent(key('o'))

	start := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	a.Frame(start.Add(16 * time.Millisecond))

	halfBlocks := 0
	for y := 0; y < 12; y++ {
		for x := 0; x < 40; x++ {
			r, _, _, _ := sim.GetContent(x, y)
			if r == '▀' {
				halfBlocks++
			}
		}
	}
	if halfBlocks == 0 {
		t.Error("Expected the scene presented as half blocks")
	}
	if a.Overlay().Scene().Elapsed() <= 0 {
		t.Error("Frame should advance the scene")
	}
}

func TestFrameDeltaClamped(t *testing.T) {
	a, _ := newTestApp(t, 40, 12, false)
	a.HandleEvent(key('o'))

	start := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	a.Frame(start.Add(time.Hour))
	if got := a.Overlay().Scene().Elapsed(); got > parameter.MaxFrameDelta.Seconds()+1e-9 {
		t.Errorf("Frame delta should clamp to %v, scene advanced %vs", parameter.MaxFrameDelta, got)
	}

	// Clock going backwards advances nothing
	before := a.Overlay().Scene().Elapsed()
	a.Frame(start)
	if a.Overlay().Scene().Elapsed() != before {
		t.Error("Negative delta should not advance the scene")
	}
}

func TestFrameClosedIsNoop(t *testing.T) {
	a, _ := newTestApp(t, 40, 12, false)
	a.Frame(time.Now())
	if a.Overlay().Scene() != nil {
		t.Error("Frame should not open a scene")
	}
}

func TestResizeUpdatesCanvas(t *testing.T) {
	a, _ := newTestApp(t, 40, 12, false)
	a.HandleEvent(tcell.NewEventResize(60, 20))

	c := a.Canvas()
	if c.Width() != 60 || c.Height() != 40 {
		t.Errorf("Expected 60x40 canvas, got %dx%d", c.Width(), c.Height())
	}
	rect := a.Overlay().CloseRect()
	if rect.X+rect.W > 60 {
		t.Errorf("Close rect outside canvas: %+v", rect)
	}
}

func TestSceneOnlyQuitsOnClose(t *testing.T) {
	a, _ := newTestApp(t, 40, 12, true)
	if !a.Overlay().IsOpen() || !a.Scheduler().Running() {
		t.Fatal("Scene-only app should start with the scene open")
	}
	a.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if !a.Done() {
		t.Error("Closing the scene should quit a scene-only app")
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	a, sim := newTestApp(t, 40, 12, false)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	errc := make(chan error, 1)
	go func() { errc <- a.Run(context.Background()) }()

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	a, _ := newTestApp(t, 40, 12, true)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- a.Run(ctx) }()
	cancel()

	select {
	case <-errc:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if a.Scheduler().Running() {
		t.Error("Run should stop the scheduler on exit")
	}
}
