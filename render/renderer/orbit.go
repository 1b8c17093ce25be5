package renderer

import (
	"github.com/spaceclub/spaceclub/parameter"
	"github.com/spaceclub/spaceclub/parameter/visual"
	"github.com/spaceclub/spaceclub/render"
)

// OrbitRenderer draws each body's base orbit as a faint ellipse
// Far arcs are dimmer than near arcs; the selected body's guide is lit
type OrbitRenderer struct{}

// NewOrbitRenderer creates the orbit guide layer
func NewOrbitRenderer() *OrbitRenderer {
	return &OrbitRenderer{}
}

// Render draws all orbit guides
func (r *OrbitRenderer) Render(ctx render.Context, c *render.Canvas) {
	s := ctx.Scene
	active := s.Active()
	for i := 0; i < s.Len(); i++ {
		pts := s.OrbitGuide(i, parameter.OrbitGuideSegments)
		if len(pts) == 0 {
			continue
		}

		col, base := visual.RgbOrbit, 0.25
		if i == active {
			col, base = visual.RgbOrbitLit, 0.45
		}

		for k, a := range pts {
			b := pts[(k+1)%len(pts)]
			alpha := base + 0.4*(a.Depth+b.Depth)/2
			c.Line(a.X, a.Y, b.X, b.Y, col, render.BlendMax, alpha)
		}
	}
}
