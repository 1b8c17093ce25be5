package pages

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/spaceclub/spaceclub/parameter"
	"github.com/spaceclub/spaceclub/parameter/visual"
	"github.com/spaceclub/spaceclub/render"
	"github.com/spaceclub/spaceclub/terminal"
)

// RoleColor maps a span role to its foreground
func RoleColor(r Role) render.RGB {
	switch r {
	case RoleTitle:
		return visual.RgbTitle
	case RoleHeading:
		return visual.RgbHeading
	case RoleMuted:
		return visual.RgbMuted
	case RoleAccent:
		return visual.RgbAccent
	case RoleLink:
		return visual.RgbLink
	case RoleRule:
		return visual.RgbRule
	default:
		return visual.RgbBody
	}
}

// Draw paints the shell onto t; the caller shows the screen
func (s *Shell) Draw(t *terminal.Terminal) {
	t.Clear(visual.RgbSpace)
	if s.cols <= 0 || s.rows <= 0 {
		return
	}

	s.drawNav(t)

	for row := 0; row < s.scroll.Visible; row++ {
		i := s.scroll.Offset + row
		if i >= len(s.lines) {
			break
		}
		y := parameter.NavHeight + row
		bg := visual.RgbSpace
		if i == s.scroll.Selection {
			bg = visual.RgbTabSel
			t.FillRow(parameter.PageMargin, y, s.lines[i].Width(), t.Style(visual.RgbBody, bg))
		}
		x := parameter.PageMargin
		for _, sp := range s.lines[i].Spans {
			x += t.DrawText(x, y, sp.Text, t.Style(RoleColor(sp.Role), bg))
		}
	}

	s.drawFooter(t)
	s.drawStatus(t)
}

func (s *Shell) drawNav(t *terminal.Terminal) {
	bar := t.Style(visual.RgbBody, visual.RgbTabBg)
	t.FillRow(0, 0, s.cols, bar)
	if b := s.brand; b.W > 0 {
		label := brandLabel(s.content.Site.Name)
		t.DrawText(b.X, 0, runewidth.FillRight(strings.Repeat(" ", tabPadding)+label, b.W), t.Style(visual.RgbAccent, visual.RgbTabBg).Bold(true))
		t.DrawText(b.X+b.W, 0, tabSeparator, t.Style(visual.RgbRule, visual.RgbTabBg))
	}
	for i, tb := range s.tabs {
		if tb.W == 0 {
			continue
		}
		style := bar
		if Page(i) == s.page {
			style = t.Style(visual.RgbTitle, visual.RgbTabSel).Bold(true)
		}
		t.DrawText(tb.X, 0, runewidth.FillRight(strings.Repeat(" ", tabPadding)+Page(i).Title(), tb.W), style)
		t.DrawText(tb.X+tb.W, 0, tabSeparator, t.Style(visual.RgbRule, visual.RgbTabBg))
	}
	if parameter.NavHeight > 1 {
		t.DrawText(0, 1, strings.Repeat("─", s.cols), t.Style(visual.RgbRule, visual.RgbSpace))
	}
}

func (s *Shell) drawFooter(t *terminal.Terminal) {
	y := s.rows - parameter.StatusHeight - parameter.FooterHeight
	if y < parameter.NavHeight {
		return
	}
	style := t.Style(visual.RgbMuted, visual.RgbSpace)
	t.FillRow(0, y, s.cols, style)

	site := s.content.Site
	right := site.Contact.Email
	rw := runewidth.StringWidth(right)
	left := fmt.Sprintf("© %d %s", s.now().Year(), site.Name)
	avail := s.cols - 2*parameter.PageMargin
	if rw > 0 && rw+runewidth.StringWidth(left)+1 <= avail {
		t.DrawText(s.cols-parameter.PageMargin-rw, y, right, style)
	}
	t.DrawText(parameter.PageMargin, y, render.Truncate(left, avail), style)
}

func (s *Shell) drawStatus(t *terminal.Terminal) {
	y := s.rows - 1
	if y < parameter.NavHeight {
		return
	}
	style := t.Style(visual.RgbStatus, visual.RgbTabBg)
	t.FillRow(0, y, s.cols, style)

	pos := s.position()
	avail := s.cols - runewidth.StringWidth(pos) - 2
	t.DrawText(1, y, render.Truncate(s.status, avail-1), style)
	t.DrawText(s.cols-runewidth.StringWidth(pos)-1, y, pos, style)
}

// position describes scroll progress for the status line
func (s *Shell) position() string {
	switch {
	case s.scroll.Total <= s.scroll.Visible:
		return "all"
	case s.scroll.Offset == 0:
		return "top"
	case s.scroll.AtBottom():
		return "end"
	default:
		return fmt.Sprintf("%d%%", 100*s.scroll.Offset/(s.scroll.Total-s.scroll.Visible))
	}
}
