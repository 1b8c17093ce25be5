package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spaceclub/spaceclub/parameter"
)

// Camera is the scene-wide view state
// Rotation is unbounded; Velocity is the post-release coast rate in rad/s
type Camera struct {
	Zoom     float64
	Rotation float64
	Velocity float64
}

func newCamera() Camera {
	return Camera{Zoom: parameter.ZoomDefault}
}

// zoomBy steps zoom by dir notches and clamps to [lo, hi]
func (c *Camera) zoomBy(dir int, step, lo, hi float64) {
	c.Zoom = mgl64.Clamp(c.Zoom+float64(dir)*step, lo, hi)
}

// coast integrates release velocity and decays it toward zero
func (c *Camera) coast(dt, decay float64) {
	if c.Velocity == 0 || dt <= 0 {
		return
	}
	c.Rotation += c.Velocity * dt
	c.Velocity *= math.Exp(-decay * dt)
	if math.Abs(c.Velocity) < parameter.CoastStopVelocity {
		c.Velocity = 0
	}
}
