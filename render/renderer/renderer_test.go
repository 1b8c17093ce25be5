package renderer

import (
	"strings"
	"testing"

	"github.com/spaceclub/spaceclub/parameter"
	"github.com/spaceclub/spaceclub/parameter/visual"
	"github.com/spaceclub/spaceclub/render"
	"github.com/spaceclub/spaceclub/scene"
)

const testW, testH = 200, 120

func newFrame(t *testing.T, cfg scene.Config) (*render.Orchestrator, *scene.Scene, render.Context) {
	t.Helper()
	o := render.NewOrchestrator(testW, testH, visual.RgbSpace)
	RegisterScene(o)
	s := scene.New(scene.DefaultBodies(), cfg)
	s.Project(scene.Viewport{Width: testW, Height: testH})
	ctx := render.Context{Scene: s, CloseRect: CloseButtonRect(o.Canvas())}
	return o, s, ctx
}

func findLabel(c *render.Canvas, sub string) (render.Label, bool) {
	for _, l := range c.Labels() {
		if strings.Contains(l.Text, sub) {
			return l, true
		}
	}
	return render.Label{}, false
}

func luma(p render.RGB) int {
	return int(render.Grayscale(p).R)
}

func TestSceneFrameDrawsAnchor(t *testing.T) {
	o, s, ctx := newFrame(t, scene.DefaultConfig())
	if !o.RenderFrame(ctx) {
		t.Fatal("Expected frame")
	}
	a := s.Anchor()
	centre := o.Canvas().At(int(a.X), int(a.Y))
	if luma(centre) < 200 {
		t.Errorf("Expected bright anchor centre, got %v", centre)
	}
}

func TestSceneFrameDrawsBodies(t *testing.T) {
	o, s, ctx := newFrame(t, scene.DefaultConfig())
	o.RenderFrame(ctx)
	for i, p := range s.Projected() {
		if p.Radius < parameter.BodyMinRadius {
			continue
		}
		if got := o.Canvas().At(int(p.X), int(p.Y)); got == visual.RgbSpace {
			t.Errorf("Body %d centre left as background", i)
		}
	}
}

func TestSceneFrameLabelsHovered(t *testing.T) {
	o, s, ctx := newFrame(t, scene.DefaultConfig())
	o.RenderFrame(ctx)
	if _, ok := findLabel(o.Canvas(), s.Body(2).Name+" ·"); ok {
		t.Fatal("Unexpected hover label without hover")
	}

	p := s.Projected()[2]
	s.PointerMove(p.X, p.Y)
	o.RenderFrame(ctx)
	l, ok := findLabel(o.Canvas(), s.Body(2).Name+" ·")
	if !ok {
		t.Fatal("Expected hover label for body 2")
	}
	if l.X < 0 || l.X+o.Canvas().TextWidth(l.Text) > testW {
		t.Errorf("Hover label outside canvas: x=%f", l.X)
	}
}

func TestSceneFrameHUD(t *testing.T) {
	o, s, ctx := newFrame(t, scene.DefaultConfig())
	o.RenderFrame(ctx)
	c := o.Canvas()

	if _, ok := findLabel(c, "▸ "+s.Body(0).Name); !ok {
		t.Error("Expected selected body title in HUD")
	}
	if _, ok := findLabel(c, "zoom 1.00x"); !ok {
		t.Error("Expected zoom readout")
	}
	l, ok := findLabel(c, parameter.CloseLabel)
	if !ok {
		t.Fatal("Expected close button")
	}
	if l.X != ctx.CloseRect.X || l.Y != ctx.CloseRect.Y {
		t.Errorf("Close button drawn at (%f,%f), rect at (%f,%f)", l.X, l.Y, ctx.CloseRect.X, ctx.CloseRect.Y)
	}
}

func TestCloseButtonRect(t *testing.T) {
	c := render.NewCanvas(testW, testH)
	r := CloseButtonRect(c)
	if r.X < 0 || r.X+r.W > testW || r.Y != 0 {
		t.Errorf("Close rect out of canvas: %+v", r)
	}
	// Pointer in the top-right cell row maps inside
	if !r.Contains(r.X+r.W/2, 1) {
		t.Error("Expected top row pointer inside close rect")
	}

	c.SetGlyphSize(6, 16)
	r = CloseButtonRect(c)
	if r.H != 16 || r.W != c.TextWidth(parameter.CloseLabel) {
		t.Errorf("Close rect not scaled to glyph size: %+v", r)
	}
}

func TestStarfieldModes(t *testing.T) {
	cfg := scene.DefaultConfig()
	cfg.Starfield = scene.StarfieldDrift
	s := scene.New(scene.DefaultBodies(), cfg)
	c := render.NewCanvas(testW, testH)
	r := NewStarfieldRenderer()

	snapshot := func() []render.RGB {
		c.Clear(render.RGBBlack)
		r.Render(render.Context{Scene: s}, c)
		return append([]render.RGB(nil), c.Pixels()...)
	}
	equal := func(a, b []render.RGB) bool {
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}

	before := snapshot()
	s.Advance(0.5)
	if !equal(before, snapshot()) {
		t.Error("Drift stars should not change without rotation")
	}
	s.PointerDown(0, 0)
	s.PointerMove(200, 0)
	if equal(before, snapshot()) {
		t.Error("Drift stars should move with rotation")
	}

	cfg.Starfield = scene.StarfieldTwinkle
	s = scene.New(scene.DefaultBodies(), cfg)
	before = snapshot()
	s.Advance(0.5)
	if equal(before, snapshot()) {
		t.Error("Twinkle stars should change brightness over time")
	}
}

func TestBodyPassesSplitByDepth(t *testing.T) {
	_, s, ctx := newFrame(t, scene.DefaultConfig())
	behind := render.NewCanvas(testW, testH)
	front := render.NewCanvas(testW, testH)
	NewBodyRenderer(false).Render(ctx, behind)
	NewBodyRenderer(true).Render(ctx, front)

	for i, p := range s.Projected() {
		if p.Radius < parameter.BodyMinRadius {
			continue
		}
		inBehind := behind.At(int(p.X), int(p.Y)) != render.RGBBlack
		inFront := front.At(int(p.X), int(p.Y)) != render.RGBBlack
		if p.Behind && !inBehind {
			t.Errorf("Body %d behind but missing from behind pass", i)
		}
		if !p.Behind && !inFront {
			t.Errorf("Body %d in front but missing from front pass", i)
		}
	}
}

func TestSceneFrameHUDFollowsHover(t *testing.T) {
	o, s, ctx := newFrame(t, scene.DefaultConfig())
	p := s.Projected()[2]
	s.PointerMove(p.X, p.Y)
	o.RenderFrame(ctx)

	if _, ok := findLabel(o.Canvas(), "▸ "+s.Body(2).Name); !ok {
		t.Error("Expected hovered body title in HUD")
	}
	if _, ok := findLabel(o.Canvas(), "▸ "+s.Body(0).Name); ok {
		t.Error("Selected body title shown while another body is hovered")
	}

	s.PointerMove(1, 1)
	o.RenderFrame(ctx)
	if _, ok := findLabel(o.Canvas(), "▸ "+s.Body(0).Name); !ok {
		t.Error("Expected selected body title after hover ends")
	}
}
