package renderer

import (
	"math"

	"github.com/spaceclub/spaceclub/parameter"
	"github.com/spaceclub/spaceclub/parameter/visual"
	"github.com/spaceclub/spaceclub/render"
)

// AnchorRenderer draws the central star with a pulsing radius and corona glow
// Sits between the behind and front body passes
type AnchorRenderer struct{}

// NewAnchorRenderer creates the anchor layer
func NewAnchorRenderer() *AnchorRenderer {
	return &AnchorRenderer{}
}

// Render draws the anchor disk and glow
func (r *AnchorRenderer) Render(ctx render.Context, c *render.Canvas) {
	a := ctx.Scene.Anchor()
	if a.Radius <= 0 {
		return
	}

	glow := a.Radius * parameter.AnchorGlowFactor
	minX := max(0, int(a.X-glow-1))
	maxX := min(c.Width()-1, int(a.X+glow+1))
	minY := max(0, int(a.Y-glow-1))
	maxY := min(c.Height()-1, int(a.Y+glow+1))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			d := math.Hypot(float64(x)+0.5-a.X, float64(y)+0.5-a.Y) / a.Radius
			switch {
			case d <= 1:
				// Limb darkening toward the edge
				col := render.Lerp(visual.RgbAnchorCore, visual.RgbAnchorMid, d*d)
				edge := 1 - d
				alpha := 1.0
				if edge < 0.06 {
					alpha = edge / 0.06
				}
				c.Set(x, y, col, render.BlendAlpha, alpha)
			case d <= parameter.AnchorGlowFactor:
				falloff := math.Exp(-(d-1)*2.5) * 0.8
				c.Set(x, y, visual.RgbAnchorCorona, render.BlendScreen, falloff)
			}
		}
	}
}
