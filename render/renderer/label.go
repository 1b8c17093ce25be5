package renderer

import (
	"math"

	"github.com/spaceclub/spaceclub/parameter/visual"
	"github.com/spaceclub/spaceclub/render"
)

// LabelRenderer names the hovered body above its disk
type LabelRenderer struct{}

// NewLabelRenderer creates the hover label layer
func NewLabelRenderer() *LabelRenderer {
	return &LabelRenderer{}
}

// Render queues the hovered body's label
func (r *LabelRenderer) Render(ctx render.Context, c *render.Canvas) {
	s := ctx.Scene
	i := s.Hovered()
	if i < 0 || i >= len(s.Projected()) {
		return
	}
	p := s.Projected()[i]
	b := s.Body(i)

	text := b.Name + " · " + b.Role
	_, gh := c.GlyphSize()
	w := c.TextWidth(text)

	x := math.Max(0, math.Min(p.X-w/2, float64(c.Width())-w))
	y := p.Y - p.Radius - gh*1.5
	if y < 0 {
		y = p.Y + p.Radius + gh*0.5
	}
	c.Text(x, y, text, visual.RgbLabel)
}
