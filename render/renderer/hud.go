package renderer

import (
	"fmt"

	"github.com/spaceclub/spaceclub/parameter"
	"github.com/spaceclub/spaceclub/parameter/visual"
	"github.com/spaceclub/spaceclub/render"
	"github.com/spaceclub/spaceclub/scene"
)

// HUDRenderer draws the selected body panel, zoom readout, control hint and close button
type HUDRenderer struct{}

// NewHUDRenderer creates the HUD layer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// CloseButtonRect returns the close button area for a canvas, top-right corner
// The app installs it on the overlay so hit-testing matches what the HUD draws
func CloseButtonRect(c *render.Canvas) scene.Rect {
	gw, gh := c.GlyphSize()
	w := c.TextWidth(parameter.CloseLabel)
	return scene.Rect{X: float64(c.Width()) - w - gw, Y: 0, W: w, H: gh}
}

// Render queues HUD text
func (r *HUDRenderer) Render(ctx render.Context, c *render.Canvas) {
	s := ctx.Scene
	gw, gh := c.GlyphSize()
	x := gw

	if i := s.Active(); i >= 0 && i < s.Len() {
		b := s.Body(i)
		c.Text(x, 0, "▸ "+b.Name, render.FromColor(b.Color))
		c.Text(x, gh, b.Role, visual.RgbHudAccent)

		cols := min(parameter.HUDDescriptionCols, int(float64(c.Width())/gw/2))
		if cols > 8 {
			for k, line := range render.WrapText(b.Description, cols) {
				c.Text(x, gh*float64(k+2), line, visual.RgbHudText)
			}
		}
	}

	rect := ctx.CloseRect
	c.Text(rect.X, rect.Y, parameter.CloseLabel, visual.RgbHudClose)

	bottom := float64(c.Height()) - gh
	zoom := fmt.Sprintf("zoom %.2fx", s.Camera().Zoom)
	c.Text(x, bottom, zoom, visual.RgbHudText)
	if hx := x + c.TextWidth(zoom) + 2*gw; hx+c.TextWidth(parameter.HUDHint) <= float64(c.Width()) {
		c.Text(hx, bottom, parameter.HUDHint, visual.RgbHudDim)
	}
}

// RegisterScene wires every scene layer into o in draw order
func RegisterScene(o *render.Orchestrator) {
	o.Register(NewStarfieldRenderer(), render.PriorityBackground)
	o.Register(NewOrbitRenderer(), render.PriorityOrbits)
	o.Register(NewBodyRenderer(false), render.PriorityBehind)
	o.Register(NewAnchorRenderer(), render.PriorityAnchor)
	o.Register(NewBodyRenderer(true), render.PriorityFront)
	o.Register(NewLabelRenderer(), render.PriorityLabels)
	o.Register(NewHUDRenderer(), render.PriorityHUD)
}
