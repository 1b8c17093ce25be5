package pages

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/spaceclub/spaceclub/content"
	"github.com/spaceclub/spaceclub/render"
)

// lipgloss colors come from the same palette the terminal shell uses
func hex(c render.RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func roleStyle(re *lipgloss.Renderer, r Role) lipgloss.Style {
	s := re.NewStyle().Foreground(hex(RoleColor(r)))
	switch r {
	case RoleTitle, RoleHeading:
		s = s.Bold(true)
	case RoleLink:
		s = s.Underline(true)
	case RoleMuted:
		s = s.Faint(true)
	}
	return s
}

// Print renders page p as styled text wrapped to width; link lines show their URL
// Colors follow what w supports, plain text when w is not a terminal
func Print(w io.Writer, p Page, c *content.Content, now time.Time, width int) error {
	re := lipgloss.NewRenderer(w)
	var b strings.Builder
	for _, l := range Build(p, c, now, width) {
		for _, sp := range l.Spans {
			b.WriteString(roleStyle(re, sp.Role).Render(sp.Text))
		}
		if l.Action.Kind == ActionLink {
			b.WriteString(" ")
			b.WriteString(roleStyle(re, RoleMuted).Render(l.Action.URL))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
