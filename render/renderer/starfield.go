package renderer

import (
	"math"

	"github.com/spaceclub/spaceclub/parameter"
	"github.com/spaceclub/spaceclub/parameter/visual"
	"github.com/spaceclub/spaceclub/render"
	"github.com/spaceclub/spaceclub/scene"
)

// StarfieldRenderer draws background stars
// Twinkle keeps stars fixed on screen; drift slides them with the view rotation
type StarfieldRenderer struct{}

// NewStarfieldRenderer creates the starfield layer
func NewStarfieldRenderer() *StarfieldRenderer {
	return &StarfieldRenderer{}
}

// Render draws all stars
func (r *StarfieldRenderer) Render(ctx render.Context, c *render.Canvas) {
	s := ctx.Scene
	w, h := float64(c.Width()), float64(c.Height())
	t := s.Elapsed()

	drift := s.Config().Starfield == scene.StarfieldDrift
	shift := s.Camera().Rotation * parameter.StarDriftFactor / (2 * math.Pi)

	for i, st := range s.Stars() {
		x := st.X
		bright := st.Bright
		if drift {
			x -= shift
			x -= math.Floor(x)
		} else {
			bright *= 0.65 + 0.35*math.Sin(t*st.Twinkle+st.Phase)
		}

		col := visual.RgbStar
		if i%7 == 0 {
			col = visual.RgbStarWarm
		}
		c.Set(int(x*w), int(st.Y*h), render.Scale(col, bright), render.BlendMax, 1)
	}
}
