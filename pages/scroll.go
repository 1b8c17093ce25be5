package pages

// ScrollState tracks scroll position and the selected action line
type ScrollState struct {
	Offset    int // First visible line
	Total     int // Total line count
	Visible   int // Viewport height in lines
	Selection int // Selected line, -1 if none
}

// ScrollBy adjusts offset by delta, clamping to valid range
func (s *ScrollState) ScrollBy(delta int) {
	s.Offset += delta
	s.Clamp()
}

// EnsureVisible adjusts offset to make line pos visible
func (s *ScrollState) EnsureVisible(pos int) {
	if pos < s.Offset {
		s.Offset = pos
	} else if pos >= s.Offset+s.Visible {
		s.Offset = pos - s.Visible + 1
	}
	s.Clamp()
}

// Clamp ensures offset is within valid range
func (s *ScrollState) Clamp() {
	s.Offset = clampScroll(s.Offset, s.Visible, s.Total)
}

// AtBottom returns true if the last line is visible
func (s *ScrollState) AtBottom() bool {
	if s.Total <= s.Visible {
		return true
	}
	return s.Offset >= s.Total-s.Visible
}

// InView reports whether line pos is inside the viewport
func (s *ScrollState) InView(pos int) bool {
	return pos >= s.Offset && pos < s.Offset+s.Visible && pos < s.Total
}

func clampScroll(scroll, visible, total int) int {
	if total <= visible {
		return 0
	}
	maxScroll := total - visible
	if scroll < 0 {
		return 0
	}
	if scroll > maxScroll {
		return maxScroll
	}
	return scroll
}
