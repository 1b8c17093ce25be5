package scene

import "math"

// HitsAt returns bodies under (x, y) in draw order
// A body is hit when the pointer is within its projected radius plus HitMargin
func (s *Scene) HitsAt(x, y float64) []int {
	var hits []int
	for _, i := range s.order {
		p := s.projected[i]
		if math.Hypot(x-p.X, y-p.Y) <= p.Radius+s.cfg.HitMargin {
			hits = append(hits, i)
		}
	}
	return hits
}

// BodyAt returns the front-most hit body or -1
// The last hit in draw order wins, matching what is visually on top
func (s *Scene) BodyAt(x, y float64) int {
	hits := s.HitsAt(x, y)
	if len(hits) == 0 {
		return -1
	}
	return hits[len(hits)-1]
}

// PointerMove updates hover, or view rotation while dragging
func (s *Scene) PointerMove(x, y float64) {
	if s.drag.active {
		s.cam.Rotation = s.drag.startRotation + (x-s.drag.startX)*s.cfg.DragSensitivity
		return
	}
	s.setHovered(s.BodyAt(x, y))
}

// PointerDown starts a drag from (x, y)
func (s *Scene) PointerDown(x, y float64) {
	s.drag = dragState{
		active:        true,
		startX:        x,
		startY:        y,
		startRotation: s.cam.Rotation,
		lastRotation:  s.cam.Rotation,
	}
	s.cam.Velocity = 0
}

// PointerUp ends a drag; without inertia the view stops where it was released
func (s *Scene) PointerUp(x, y float64) {
	if !s.drag.active {
		return
	}
	s.drag.active = false
	if !s.cfg.Inertia {
		s.cam.Velocity = 0
	}
}

// Click selects the body under (x, y); returns true if a body was hit
// Clicks on empty space keep the current selection
func (s *Scene) Click(x, y float64) bool {
	if s.drag.active {
		return false
	}
	i := s.BodyAt(x, y)
	if i < 0 {
		return false
	}
	changed := i != s.selected
	s.selected = i
	s.focused = s.cfg.FocusEase
	if changed && s.hooks.OnSelect != nil {
		s.hooks.OnSelect(i)
	}
	return true
}

// Wheel steps zoom by dir notches, positive zooms in
func (s *Scene) Wheel(dir int) {
	s.cam.zoomBy(dir, s.cfg.ZoomStep, s.cfg.ZoomMin, s.cfg.ZoomMax)
}

func (s *Scene) setHovered(i int) {
	if i == s.hovered {
		return
	}
	s.hovered = i
	if s.hooks.OnHover != nil {
		s.hooks.OnHover(i)
	}
}
