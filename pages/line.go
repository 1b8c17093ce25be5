package pages

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Role is the semantic style of a span; drawing maps roles to colors
type Role uint8

const (
	RoleBody Role = iota
	RoleTitle
	RoleHeading
	RoleMuted
	RoleAccent
	RoleLink
	RoleRule
)

// Span is a run of text with one role
type Span struct {
	Text string
	Role Role
}

// ActionKind tells the shell what activating a line does
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionOpenScene
	ActionLink
)

// Action is attached to activatable lines
type Action struct {
	Kind ActionKind
	URL  string
}

// Line is one display row of a page
type Line struct {
	Spans  []Span
	Action Action
}

// Actionable reports whether the line does something on activation
func (l Line) Actionable() bool { return l.Action.Kind != ActionNone }

// Text concatenates all spans
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Width returns the display width in cells
func (l Line) Width() int {
	return runewidth.StringWidth(l.Text())
}
