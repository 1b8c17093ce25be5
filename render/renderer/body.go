package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spaceclub/spaceclub/parameter"
	"github.com/spaceclub/spaceclub/parameter/visual"
	"github.com/spaceclub/spaceclub/render"
	"github.com/spaceclub/spaceclub/scene"
)

// Precomputed lighting, view is +z toward the viewer
var (
	lightDir = mgl64.Vec3{-0.35, -0.55, 0.75}.Normalize()
	halfDir  = lightDir.Add(mgl64.Vec3{0, 0, 1}).Normalize() // Blinn-Phong half vector
)

// BodyRenderer draws one depth bucket of bodies in painter's order
// Two instances are registered: behind the anchor and in front of it
type BodyRenderer struct {
	front bool
}

// NewBodyRenderer creates a body pass; front selects bodies nearer than the anchor
func NewBodyRenderer(front bool) *BodyRenderer {
	return &BodyRenderer{front: front}
}

// Render draws the pass's bodies far to near
func (r *BodyRenderer) Render(ctx render.Context, c *render.Canvas) {
	s := ctx.Scene
	projected := s.Projected()
	for _, i := range s.DrawOrder() {
		p := projected[i]
		if p.Behind == r.front {
			continue
		}
		b := s.Body(i)
		r.renderBody(c, b, p, i == s.Selected(), i == s.Hovered(), s.Elapsed())
	}
}

func (r *BodyRenderer) renderBody(c *render.Canvas, b scene.Body, p scene.Projected, selected, hovered bool, t float64) {
	base := render.FromColor(b.Color)
	if p.Radius < parameter.BodyMinRadius {
		c.Set(int(p.X), int(p.Y), base, render.BlendMax, 1)
		return
	}

	if b.Ring {
		renderRing(c, p, false)
	}
	renderSphere(c, base, p, selected, hovered, t)
	if b.Ring {
		renderRing(c, p, true)
	}
}

// renderSphere shades a lit disk with rim tint, hot core, specular and outer glow
func renderSphere(c *render.Canvas, base render.RGB, p scene.Projected, selected, hovered bool, t float64) {
	glowRadius := p.Radius * parameter.BodyGlowFactor
	minX := max(0, int(p.X-glowRadius-1))
	maxX := min(c.Width()-1, int(p.X+glowRadius+1))
	minY := max(0, int(p.Y-glowRadius-1))
	maxY := min(c.Height()-1, int(p.Y+glowRadius+1))

	// Depth drives intensity, not darkness
	depthBright := 0.6 + 0.4*p.Depth

	baseR := math.Min(255, float64(base.R)*1.3)
	baseG := math.Min(255, float64(base.G)*1.3)
	baseB := math.Min(255, float64(base.B)*1.3)

	pulse := 0.5 + 0.5*math.Sin(t*parameter.SelectPulseRate)
	glowLimitSq := parameter.BodyGlowFactor * parameter.BodyGlowFactor

	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			nx := (float64(sx) + 0.5 - p.X) / p.Radius
			ny := (float64(sy) + 0.5 - p.Y) / p.Radius
			distSq := nx*nx + ny*ny
			if distSq > glowLimitSq {
				continue
			}
			dist := math.Sqrt(distSq)

			var r, g, bl float64
			if distSq <= 1 {
				nz := math.Sqrt(1 - distSq)
				n := mgl64.Vec3{nx, ny, nz}

				rim := 1 - nz
				rim = rim * rim * 0.8

				coreGlow := 0.0
				if cd := dist / parameter.BodyCoreRadius; cd < 1 {
					coreGlow = (1 - cd) * 0.35
				}

				diffuse := math.Max(0, n.Dot(lightDir))
				spec := math.Pow(math.Max(0, n.Dot(halfDir)), parameter.BodySpecPower) * 0.9

				intensity := (0.3 + 0.5*diffuse + rim*0.6) * depthBright
				r = baseR*intensity + coreGlow*255 + spec*255
				g = baseG*intensity + coreGlow*255 + spec*255
				bl = baseB*intensity + coreGlow*255 + spec*255
			} else {
				falloff := math.Exp(-(dist-1)*3) * 0.5 * depthBright
				r, g, bl = baseR*falloff, baseG*falloff, baseB*falloff
			}

			if hovered {
				h, hl := parameter.HoverHighlight, visual.RgbHoverRing
				r = r*(1-h) + float64(hl.R)*h
				g = g*(1-h) + float64(hl.G)*h
				bl = bl*(1-h) + float64(hl.B)*h
			}

			// Selection: pulsing ring at the limb
			if selected && distSq > 0.8 && distSq <= 1.2 {
				r += 80 * pulse
				g += 80 * pulse
				bl += 40 * pulse
			}

			col := render.Shade(r, g, bl)
			if distSq > 1 {
				alpha := math.Max(0, 1-(dist-1)/(parameter.BodyGlowFactor-1))
				c.Set(sx, sy, col, render.BlendScreen, alpha*0.7)
				continue
			}
			alpha := 1.0
			if edge := 1 - dist; edge < 0.08 {
				alpha = edge / 0.08
			}
			c.Set(sx, sy, col, render.BlendAlpha, alpha)
		}
	}
}

// renderRing draws the near or far half of a tilted ring around the body
func renderRing(c *render.Canvas, p scene.Projected, near bool) {
	rx := p.Radius * parameter.RingFactor
	ry := rx * math.Sin(mgl64.DegToRad(parameter.TiltDeg))
	steps := max(24, int(rx*6))
	alpha := 0.5 + 0.4*p.Depth

	for k := 0; k < steps; k++ {
		a := 2 * math.Pi * float64(k) / float64(steps)
		dy := math.Sin(a) * ry
		if (dy >= 0) != near {
			continue
		}
		x := p.X + math.Cos(a)*rx
		y := p.Y + dy
		c.Set(int(x), int(y), visual.RgbRing, render.BlendAlpha, alpha)
	}
}
