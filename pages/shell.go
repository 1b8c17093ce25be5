package pages

import (
	"log"
	"time"

	"github.com/spaceclub/spaceclub/content"
	"github.com/spaceclub/spaceclub/input"
	"github.com/spaceclub/spaceclub/parameter"
)

// Command is what the shell asks of the application after an intent
type Command uint8

const (
	CmdNone Command = iota
	CmdQuit
	CmdOpenScene
)

// DefaultStatus is shown until an action replaces it
const DefaultStatus = "tab/1-6 pages  j/k scroll  enter open  o explore  q quit"

// wheelLines is the scroll distance of one wheel notch
const wheelLines = 3

// Shell is the navigation shell: current page, scroll, nav bar and status line
// It holds no terminal; Draw renders it
type Shell struct {
	content *content.Content
	now     func() time.Time

	page       Page
	cols, rows int
	lines      []Line
	scroll     ScrollState
	brand      TabBounds
	tabs       []TabBounds
	status     string
}

// NewShell creates a shell on the home page; now supplies the clock for event ordering
func NewShell(c *content.Content, now func() time.Time) *Shell {
	if now == nil {
		now = time.Now
	}
	s := &Shell{content: c, now: now, status: DefaultStatus}
	s.scroll.Selection = -1
	return s
}

func (s *Shell) Page() Page        { return s.page }
func (s *Shell) Lines() []Line     { return s.lines }
func (s *Shell) Scroll() int       { return s.scroll.Offset }
func (s *Shell) Selected() int     { return s.scroll.Selection }
func (s *Shell) Status() string    { return s.status }
func (s *Shell) Tabs() []TabBounds { return s.tabs }

// Brand is the club name button at the left of the nav bar; it opens the scene
func (s *Shell) Brand() TabBounds { return s.brand }

// ContentWidth is the wrap width of page text
func (s *Shell) ContentWidth() int {
	return max(min(s.cols-2*parameter.PageMargin, parameter.MaxPageWidth), 1)
}

// ViewRows is the number of page lines visible between nav bar and footer
func (s *Shell) ViewRows() int {
	return max(s.rows-parameter.NavHeight-parameter.FooterHeight-parameter.StatusHeight, 0)
}

// Resize relayouts for a terminal of cols x rows cells
func (s *Shell) Resize(cols, rows int) {
	s.cols, s.rows = cols, rows
	s.brand, s.tabs = layoutNav(parameter.PageMargin, cols, brandLabel(s.content.Site.Name))
	s.rebuild(false)
}

// SetPage switches page, resetting scroll and status
func (s *Shell) SetPage(p Page) {
	if !p.valid() {
		return
	}
	s.page = p
	s.status = DefaultStatus
	s.scroll.Selection = -1
	s.rebuild(true)
	log.Printf("pages: %s", p)
}

// rebuild re-lays out the current page; top resets scroll
func (s *Shell) rebuild(top bool) {
	s.lines = Build(s.page, s.content, s.now(), s.ContentWidth())
	if top {
		s.scroll.Offset = 0
	}
	s.scroll.Total = len(s.lines)
	s.scroll.Visible = s.ViewRows()
	s.scroll.Clamp()
	s.selectVisible()
}

// selectVisible keeps the selection on a visible action line, preferring the current one
func (s *Shell) selectVisible() {
	if sel := s.scroll.Selection; sel >= 0 && sel < len(s.lines) && s.lines[sel].Actionable() && s.scroll.InView(sel) {
		return
	}
	s.scroll.Selection = -1
	for i := s.scroll.Offset; s.scroll.InView(i); i++ {
		if s.lines[i].Actionable() {
			s.scroll.Selection = i
			return
		}
	}
}

// ScrollBy moves the viewport by delta lines, clamped to the page
func (s *Shell) ScrollBy(delta int) {
	s.scroll.ScrollBy(delta)
	s.selectVisible()
}

// LineAt maps a screen row to a page line index, -1 outside the page area
func (s *Shell) LineAt(row int) int {
	i := s.scroll.Offset + row - parameter.NavHeight
	if row < parameter.NavHeight || !s.scroll.InView(i) {
		return -1
	}
	return i
}

// Handle applies one intent and reports what the application should do
func (s *Shell) Handle(in input.Intent) Command {
	switch in.Type {
	case input.IntentQuit:
		return CmdQuit
	case input.IntentOpenScene:
		return CmdOpenScene
	case input.IntentResize:
		s.Resize(in.Col, in.Row)
	case input.IntentNavNext:
		s.SetPage(s.page.Next())
	case input.IntentNavPrev:
		s.SetPage(s.page.Prev())
	case input.IntentNavTo:
		if in.Delta >= 0 && in.Delta < int(pageCount) {
			s.SetPage(Page(in.Delta))
		}
	case input.IntentScroll:
		s.ScrollBy(in.Delta)
	case input.IntentWheel:
		s.ScrollBy(-in.Delta * wheelLines)
	case input.IntentActivate:
		if sel := s.scroll.Selection; sel >= 0 {
			return s.activate(s.lines[sel])
		}
	case input.IntentPointerMove:
		if i := s.LineAt(in.Row); i >= 0 && s.lines[i].Actionable() {
			s.scroll.Selection = i
		}
	case input.IntentClick:
		if in.Row == 0 {
			if s.brand.Contains(in.Col) {
				return CmdOpenScene
			}
			if p, ok := tabAt(s.tabs, in.Col); ok {
				s.SetPage(p)
			}
			return CmdNone
		}
		if i := s.LineAt(in.Row); i >= 0 && s.lines[i].Actionable() {
			s.scroll.Selection = i
			return s.activate(s.lines[i])
		}
	}
	return CmdNone
}

func (s *Shell) activate(l Line) Command {
	switch l.Action.Kind {
	case ActionOpenScene:
		return CmdOpenScene
	case ActionLink:
		s.status = "open " + l.Action.URL
		log.Printf("pages: link %s", l.Action.URL)
	}
	return CmdNone
}
