package scene

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spaceclub/spaceclub/parameter"
)

// Viewport is the drawing surface size in pixels
type Viewport struct {
	Width  float64
	Height float64
}

// Empty reports a surface that cannot be drawn to
func (v Viewport) Empty() bool { return v.Width <= 0 || v.Height <= 0 }

// Projected is one body's screen-space state for the current frame
type Projected struct {
	Index  int
	X, Y   float64
	Radius float64
	Depth  float64 // 0 far, 1 near
	Behind bool    // occluded by the anchor when overlapping
}

// Anchor is the projected central body
type Anchor struct {
	X, Y   float64
	Radius float64
}

// Point is a projected world point
type Point struct {
	X, Y  float64
	Depth float64
}

// viewPoint rotates an orbital-plane point into view space
// Returns x, vertical offset y, and depth axis z
func (s *Scene) viewPoint(angle, orbit float64) (x, y, z float64) {
	p := mgl64.Vec3{math.Cos(angle) * orbit, 0, math.Sin(angle) * orbit}
	v := mgl64.Rotate3DY(-s.cam.Rotation).Mul3x1(p)
	return v.X(), v.Z() * s.sinTilt, v.Z()
}

func (s *Scene) depthOf(z float64) float64 {
	return mgl64.Clamp((z/s.extent+1)/2, 0, 1)
}

func (s *Scene) toScreen(x, y float64) (float64, float64) {
	k := s.fit * s.cam.Zoom
	return s.viewport.Width/2 + x*k, s.viewport.Height/2 + y*k
}

// Project recomputes screen positions for all bodies and the anchor
// An empty viewport leaves the previous projection untouched
func (s *Scene) Project(vp Viewport) {
	if vp.Empty() {
		return
	}
	s.viewport = vp

	fit := vp.Width / 2 / s.extent
	if s.sinTilt > 1e-6 {
		fit = math.Min(fit, vp.Height/2/(s.extent*s.sinTilt))
	}
	s.fit = parameter.FitMargin * fit

	if cap(s.projected) < len(s.bodies) {
		s.projected = make([]Projected, len(s.bodies))
		s.order = make([]int, len(s.bodies))
	}
	s.projected = s.projected[:len(s.bodies)]
	s.order = s.order[:len(s.bodies)]

	for i, b := range s.bodies {
		x, y, z := s.viewPoint(s.angles[i], wobbledOrbit(b, s.elapsed))
		depth := s.depthOf(z)
		sx, sy := s.toScreen(x, y)
		size := parameter.DepthScaleMin + parameter.DepthScaleRange*depth
		s.projected[i] = Projected{
			Index:  i,
			X:      sx,
			Y:      sy,
			Radius: b.Radius * s.fit * s.cam.Zoom * size,
			Depth:  depth,
			Behind: z < 0,
		}
		s.order[i] = i
	}

	// Painter's order: far to near, index breaks ties for stable hit priority
	sort.SliceStable(s.order, func(a, b int) bool {
		pa, pb := s.projected[s.order[a]], s.projected[s.order[b]]
		if pa.Depth != pb.Depth {
			return pa.Depth < pb.Depth
		}
		return pa.Index < pb.Index
	})

	pulse := 1 + parameter.AnchorPulseAmp*math.Sin(s.elapsed*parameter.AnchorPulseRate)
	cx, cy := s.toScreen(0, 0)
	s.anchor = Anchor{X: cx, Y: cy, Radius: parameter.AnchorRadius * s.fit * s.cam.Zoom * pulse}
}

// Viewport returns the surface of the last projection
func (s *Scene) Viewport() Viewport { return s.viewport }

// Projected returns the last projection indexed by body
func (s *Scene) Projected() []Projected { return s.projected }

// DrawOrder returns body indices far to near
func (s *Scene) DrawOrder() []int { return s.order }

// Anchor returns the last projected anchor
func (s *Scene) Anchor() Anchor { return s.anchor }

// OrbitGuide samples body i's base orbit through the current view
func (s *Scene) OrbitGuide(i, segments int) []Point {
	if segments < 3 || s.viewport.Empty() {
		return nil
	}
	orbit := s.bodies[i].Orbit
	pts := make([]Point, segments)
	for k := range pts {
		a := 2 * math.Pi * float64(k) / float64(segments)
		x, y, z := s.viewPoint(a, orbit)
		sx, sy := s.toScreen(x, y)
		pts[k] = Point{X: sx, Y: sy, Depth: s.depthOf(z)}
	}
	return pts
}
