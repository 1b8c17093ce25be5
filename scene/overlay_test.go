package scene

import (
	"testing"

	"github.com/spaceclub/spaceclub/input"
)

type overlayHarness struct {
	d      *input.Dispatcher
	o      *Overlay
	closes int
}

func newOverlayHarness(t *testing.T) *overlayHarness {
	t.Helper()
	h := &overlayHarness{d: input.NewDispatcher()}
	h.o = NewOverlay(h.d, DefaultConfig(), nil, func() {
		h.closes++
		h.o.SetOpen(false)
	})
	h.o.Resize(testViewport.Width, testViewport.Height)
	return h
}

func (h *overlayHarness) send(t input.IntentType, x, y float64) bool {
	return h.d.Dispatch(input.Intent{Type: t, X: x, Y: y})
}

// TestOverlayOpenCloseHandlers verifies repeated open/close never stacks handlers
func TestOverlayOpenCloseHandlers(t *testing.T) {
	h := newOverlayHarness(t)

	for round := 0; round < 5; round++ {
		h.o.SetOpen(true)
		h.o.SetOpen(true)
		if n := h.d.Len(); n != 1 {
			t.Fatalf("Round %d: expected 1 handler while open, got %d", round, n)
		}
		h.o.SetOpen(false)
		h.o.SetOpen(false)
		if n := h.d.Len(); n != 0 {
			t.Fatalf("Round %d: expected 0 handlers after close, got %d", round, n)
		}
	}
}

// TestOverlayResetsOnOpen verifies every open starts from fresh state
func TestOverlayResetsOnOpen(t *testing.T) {
	h := newOverlayHarness(t)
	h.o.SetOpen(true)
	h.o.Frame(0)

	s := h.o.Scene()
	p := s.Projected()[4]
	h.send(input.IntentClick, p.X, p.Y)
	h.d.Dispatch(input.Intent{Type: input.IntentWheel, Delta: 3})
	for f := 0; f < 30; f++ {
		h.o.Frame(frame)
	}
	if s.Selected() != 4 || s.Camera().Zoom == 1 {
		t.Fatalf("Expected mutated state before reopen, got selected=%d zoom=%f", s.Selected(), s.Camera().Zoom)
	}

	h.o.SetOpen(false)
	if h.o.Scene() != nil {
		t.Fatal("Expected scene discarded on close")
	}
	h.o.SetOpen(true)

	fresh := h.o.Scene()
	if fresh == s {
		t.Fatal("Expected a new scene on reopen")
	}
	if fresh.Selected() != 0 || fresh.Camera().Zoom != 1 || fresh.Elapsed() != 0 || fresh.Focused() {
		t.Errorf("Expected reset state, got selected=%d zoom=%f elapsed=%f", fresh.Selected(), fresh.Camera().Zoom, fresh.Elapsed())
	}
	for i, b := range fresh.Bodies() {
		if fresh.Angle(i) != b.Phase {
			t.Errorf("Body %d angle %f not reset to phase %f", i, fresh.Angle(i), b.Phase)
		}
	}
}

// TestOverlayHoverSelectScenario walks the hover, click, move-away sequence
func TestOverlayHoverSelectScenario(t *testing.T) {
	h := newOverlayHarness(t)
	h.o.SetOpen(true)
	if !h.o.Frame(0) {
		t.Fatal("Expected a frame with a surface")
	}
	s := h.o.Scene()
	if s.Selected() != 0 {
		t.Fatalf("Expected initial selection 0, got %d", s.Selected())
	}

	p := s.Projected()[2]
	h.send(input.IntentPointerMove, p.X, p.Y)
	if s.Hovered() != 2 {
		t.Fatalf("Expected hover 2, got %d", s.Hovered())
	}

	h.send(input.IntentPointerDown, p.X, p.Y)
	h.send(input.IntentPointerUp, p.X, p.Y)
	h.send(input.IntentClick, p.X, p.Y)
	if s.Selected() != 2 {
		t.Fatalf("Expected selection 2 after click, got %d", s.Selected())
	}

	h.send(input.IntentPointerMove, emptyX, emptyY)
	if s.Hovered() != -1 {
		t.Errorf("Expected no hover after moving away, got %d", s.Hovered())
	}
	if s.Selected() != 2 {
		t.Errorf("Expected selection 2 to persist, got %d", s.Selected())
	}
}

// TestOverlayDragScenario verifies a 100px horizontal drag through the dispatcher
func TestOverlayDragScenario(t *testing.T) {
	h := newOverlayHarness(t)
	h.o.SetOpen(true)
	h.o.Frame(0)
	s := h.o.Scene()

	h.send(input.IntentPointerDown, 200, 100)
	h.send(input.IntentPointerMove, 250, 140)
	h.send(input.IntentPointerMove, 300, 60)
	want := 100 * s.Config().DragSensitivity
	if got := s.Camera().Rotation; got != want {
		t.Errorf("Expected rotation %f, got %f", want, got)
	}
	if s.Hovered() != -1 {
		t.Errorf("Expected no hover tracking during drag, got %d", s.Hovered())
	}
	h.send(input.IntentPointerUp, 300, 60)
	if s.Dragging() {
		t.Error("Expected drag ended")
	}
}

// TestOverlayEscapeCloses verifies Escape requests close
func TestOverlayEscapeCloses(t *testing.T) {
	h := newOverlayHarness(t)
	h.o.SetOpen(true)

	if !h.d.Dispatch(input.Intent{Type: input.IntentEscape}) {
		t.Error("Expected Escape consumed")
	}
	if h.closes != 1 || h.o.IsOpen() {
		t.Errorf("Expected one close request and closed overlay, got closes=%d open=%v", h.closes, h.o.IsOpen())
	}
	if h.d.Len() != 0 {
		t.Errorf("Expected handler removed, got %d", h.d.Len())
	}
}

// TestOverlayCloseButton verifies clicks in the close rect close instead of selecting
func TestOverlayCloseButton(t *testing.T) {
	h := newOverlayHarness(t)
	h.o.SetOpen(true)
	h.o.Frame(0)
	h.o.SetCloseRect(Rect{X: 700, Y: 0, W: 100, H: 20})

	h.send(input.IntentPointerDown, 750, 10)
	if h.o.Scene().Dragging() {
		t.Error("Expected no drag started on the close button")
	}
	h.send(input.IntentPointerUp, 750, 10)
	h.send(input.IntentClick, 750, 10)

	if h.closes != 1 || h.o.IsOpen() {
		t.Errorf("Expected close via button, got closes=%d open=%v", h.closes, h.o.IsOpen())
	}
}

// TestOverlayModal verifies the open overlay consumes page input but not quit or resize
func TestOverlayModal(t *testing.T) {
	h := newOverlayHarness(t)
	var below []input.IntentType
	h.d.Subscribe(func(in input.Intent) bool {
		below = append(below, in.Type)
		return true
	})
	h.o.SetOpen(true)

	for _, typ := range []input.IntentType{input.IntentScroll, input.IntentNavNext, input.IntentActivate, input.IntentOpenScene} {
		if !h.d.Dispatch(input.Intent{Type: typ}) {
			t.Errorf("Expected %s consumed", typ)
		}
	}
	if len(below) != 0 {
		t.Errorf("Expected nothing to leak below the overlay, got %v", below)
	}

	h.d.Dispatch(input.Intent{Type: input.IntentQuit})
	h.d.Dispatch(input.Intent{Type: input.IntentResize})
	if len(below) != 2 {
		t.Errorf("Expected quit and resize to pass through, got %v", below)
	}
}

// TestOverlayFrame verifies frames only run when open with a surface
func TestOverlayFrame(t *testing.T) {
	h := newOverlayHarness(t)
	if h.o.Frame(frame) {
		t.Error("Expected no frame while closed")
	}

	h.o.SetOpen(true)
	h.o.Resize(0, 0)
	if h.o.Frame(frame) {
		t.Error("Expected no frame without a surface")
	}
	if h.o.Scene().Elapsed() != 0 {
		t.Error("Expected no advance without a surface")
	}

	h.o.Resize(testViewport.Width, testViewport.Height)
	if !h.o.Frame(frame) {
		t.Error("Expected a frame with a surface")
	}
	if len(h.o.Scene().Projected()) != h.o.Scene().Len() {
		t.Error("Expected projection after frame")
	}
}

// TestOverlayHooksCarryAcrossOpens verifies hooks set once apply to every session
func TestOverlayHooksCarryAcrossOpens(t *testing.T) {
	h := newOverlayHarness(t)
	var selected []int
	h.o.SetHooks(Hooks{OnSelect: func(i int) { selected = append(selected, i) }})

	for round := 0; round < 2; round++ {
		h.o.SetOpen(true)
		h.o.Frame(0)
		p := h.o.Scene().Projected()[1]
		h.send(input.IntentClick, p.X, p.Y)
		h.o.SetOpen(false)
	}
	if len(selected) != 2 {
		t.Errorf("Expected select hook in both sessions, got %v", selected)
	}
}

// TestOverlayFactory verifies the body factory is used on every open
func TestOverlayFactory(t *testing.T) {
	d := input.NewDispatcher()
	calls := 0
	o := NewOverlay(d, DefaultConfig(), func() []Body {
		calls++
		return DefaultBodies()[:2]
	}, nil)

	o.SetOpen(true)
	if o.Scene().Len() != 2 {
		t.Errorf("Expected 2 bodies from factory, got %d", o.Scene().Len())
	}
	o.SetOpen(false)
	o.SetOpen(true)
	if calls != 2 {
		t.Errorf("Expected factory per open, got %d calls", calls)
	}

	// Nil onClose is tolerated
	d.Dispatch(input.Intent{Type: input.IntentEscape})
}
