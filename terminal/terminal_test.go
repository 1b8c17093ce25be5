package terminal

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/spaceclub/spaceclub/render"
)

func newSimTerminal(t *testing.T, w, h int, mode ColorMode) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(sim, mode)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(term.Fini)
	return term, sim
}

func TestPresentHalfBlocks(t *testing.T) {
	term, sim := newSimTerminal(t, 4, 2, ColorModeTrueColor)

	c := render.NewCanvas(CanvasSize(4, 2))
	top := render.RGB{R: 200, G: 10, B: 10}
	bottom := render.RGB{R: 10, G: 10, B: 200}
	c.Set(1, 2, top, render.BlendReplace, 1)
	c.Set(1, 3, bottom, render.BlendReplace, 1)

	term.Present(c)
	term.Show()

	r, _, style, _ := sim.GetContent(1, 1)
	if r != upperHalf {
		t.Fatalf("Expected half block, got %q", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(200, 10, 10) || bg != tcell.NewRGBColor(10, 10, 200) {
		t.Errorf("Expected top fg / bottom bg, got %v / %v", fg, bg)
	}
}

func TestPresentLabels(t *testing.T) {
	term, sim := newSimTerminal(t, 20, 4, ColorModeTrueColor)

	c := render.NewCanvas(CanvasSize(20, 4))
	c.Text(3, 4, "Rover", render.RGBWhite) // row 2
	term.Present(c)
	term.Show()

	got := ""
	for x := 3; x < 8; x++ {
		r, _, _, _ := sim.GetContent(x, 2)
		got += string(r)
	}
	if got != "Rover" {
		t.Errorf("Expected label at (3,2), got %q", got)
	}
}

func TestPresentClipsToScreen(t *testing.T) {
	term, _ := newSimTerminal(t, 3, 1, ColorMode256)
	c := render.NewCanvas(10, 10)
	c.Text(2, 0, "overflowing", render.RGBWhite)
	// Must not panic writing past the edge
	term.Present(c)
	term.Show()
}

func TestDrawTextWide(t *testing.T) {
	term, sim := newSimTerminal(t, 10, 1, ColorModeTrueColor)
	n := term.DrawText(0, 0, "月a", tcell.StyleDefault)
	if n != 3 {
		t.Errorf("Expected 3 cells, got %d", n)
	}
	term.Show()
	if r, _, _, _ := sim.GetContent(2, 0); r != 'a' {
		t.Errorf("Expected 'a' after wide rune, got %q", r)
	}
	if n := term.DrawText(0, 5, "x", tcell.StyleDefault); n != 0 {
		t.Errorf("Expected nothing drawn off screen, got %d", n)
	}
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		in   render.RGB
		want uint8
	}{
		{"Black", render.RGB{R: 0, G: 0, B: 0}, 16},
		{"White", render.RGB{R: 255, G: 255, B: 255}, 231},
		{"Pure red", render.RGB{R: 255, G: 0, B: 0}, 196},
		{"Cube blue", render.RGB{R: 0, G: 95, B: 255}, Cube256(0, 1, 5)},
		{"Mid gray uses ramp", render.RGB{R: 128, G: 128, B: 128}, Gray256(12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.in); got != tt.want {
				t.Errorf("RGBTo256(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	if m, err := ParseColorMode("truecolor"); err != nil || m != ColorModeTrueColor {
		t.Errorf("truecolor: %v %v", m, err)
	}
	if m, err := ParseColorMode("256"); err != nil || m != ColorMode256 {
		t.Errorf("256: %v %v", m, err)
	}
	t.Setenv("COLORTERM", "truecolor")
	if m, err := ParseColorMode("auto"); err != nil || m != ColorModeTrueColor {
		t.Errorf("auto with COLORTERM: %v %v", m, err)
	}
	if _, err := ParseColorMode("cga"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}

func TestEmergencyResetWrites(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)
	if !bytes.Contains(buf.Bytes(), []byte("\x1b[?25h")) {
		t.Error("Expected cursor show sequence")
	}
}
