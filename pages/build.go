package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/spaceclub/spaceclub/content"
	"github.com/spaceclub/spaceclub/parameter"
	"github.com/spaceclub/spaceclub/render"
)

// Section subtitles under each page title
var subtitles = [pageCount]string{
	"",
	"Talks, workshops, star parties and project sessions.",
	"Student-led, guided by faculty mentors and alumni.",
	"Snapshots from launches, workshops and observation nights.",
	"Who we are and what we do.",
	"Reach out to join, collaborate or invite us.",
}

// Build lays out page p of c wrapped to width cells
func Build(p Page, c *content.Content, now time.Time, width int) []Line {
	b := &builder{width: max(width, 1)}
	switch p {
	case Home:
		b.home(c, now)
	case Events:
		b.header(p)
		b.events(c, now)
	case Team:
		b.header(p)
		b.team(c)
	case Gallery:
		b.header(p)
		b.gallery(c)
	case About:
		b.header(p)
		b.about(c)
	case Contact:
		b.header(p)
		b.contact(c)
	}
	return b.lines
}

// builder accumulates wrapped lines
type builder struct {
	width int
	lines []Line
}

func (b *builder) add(l Line) { b.lines = append(b.lines, l) }

func (b *builder) blank() { b.add(Line{}) }

func (b *builder) rule() {
	b.add(Line{Spans: []Span{{Text: strings.Repeat("─", b.width), Role: RoleRule}}})
}

// text wraps s in one role, indenting every line by indent cells
func (b *builder) text(role Role, s string, indent int) {
	pad := strings.Repeat(" ", indent)
	for _, seg := range render.WrapText(s, max(b.width-indent, 1)) {
		b.add(Line{Spans: []Span{{Text: pad + seg, Role: role}}})
	}
}

// pair puts two spans on one line when they fit, else on consecutive lines
func (b *builder) pair(first, second Span) {
	sep := " · "
	if runewidth.StringWidth(first.Text+sep+second.Text) <= b.width {
		b.add(Line{Spans: []Span{first, {Text: sep, Role: RoleMuted}, second}})
		return
	}
	b.text(first.Role, first.Text, 0)
	b.text(second.Role, second.Text, 0)
}

// field writes "label: value" with value lines hanging under the label
func (b *builder) field(label, value string) {
	label += ": "
	lw := runewidth.StringWidth(label)
	if lw >= b.width/2 {
		b.text(RoleHeading, label, 0)
		b.text(RoleBody, value, 2)
		return
	}
	for i, seg := range render.WrapText(value, b.width-lw) {
		head := Span{Text: label, Role: RoleHeading}
		if i > 0 {
			head = Span{Text: strings.Repeat(" ", lw), Role: RoleBody}
		}
		b.add(Line{Spans: []Span{head, {Text: seg, Role: RoleBody}}})
	}
}

// action adds one activatable line
func (b *builder) action(label string, a Action) {
	text := render.Truncate("▸ "+label, b.width)
	b.add(Line{Spans: []Span{{Text: text, Role: RoleLink}}, Action: a})
}

func (b *builder) header(p Page) {
	b.text(RoleTitle, p.Title(), 0)
	if sub := subtitles[p]; sub != "" {
		b.text(RoleMuted, sub, 0)
	}
	b.rule()
	b.blank()
}

func (b *builder) home(c *content.Content, now time.Time) {
	b.text(RoleMuted, c.Site.Tagline, 0)
	b.text(RoleTitle, c.Site.Name, 0)
	b.rule()
	b.blank()
	b.text(RoleBody, c.Site.Mission, 0)
	b.blank()

	events, members, _ := c.Counts()
	b.text(RoleMuted, fmt.Sprintf("%d events this season · %d members on the team", events, members), 0)
	b.blank()

	b.action("Explore the system", Action{Kind: ActionOpenScene})
	b.blank()

	b.text(RoleHeading, "Upcoming Events", 0)
	upcoming := c.Upcoming(now)
	if len(upcoming) == 0 {
		b.text(RoleMuted, "No events announced yet. Check back soon.", 2)
	}
	for i, e := range upcoming {
		if i == parameter.HomeEventCount {
			break
		}
		b.text(RoleAccent, e.Title, 2)
		b.text(RoleMuted, when(e), 4)
	}
	if len(upcoming) > parameter.HomeEventCount {
		b.text(RoleMuted, fmt.Sprintf("%d more on the Events page", len(upcoming)-parameter.HomeEventCount), 2)
	}
}

// when formats an event's date, time and venue
func when(e content.Event) string {
	s := e.Date
	if e.Time != "" {
		s += " • " + e.Time
	}
	if e.Venue != "" {
		s += " · " + e.Venue
	}
	return s
}

func (b *builder) eventEntry(e content.Event, register bool) {
	b.text(RoleAccent, e.Title, 0)
	b.text(RoleMuted, when(e), 2)
	if e.Description != "" {
		b.text(RoleBody, e.Description, 2)
	}
	if register && e.Link != "" {
		b.action("Register ↗", Action{Kind: ActionLink, URL: e.Link})
	}
	b.blank()
}

func (b *builder) events(c *content.Content, now time.Time) {
	upcoming, past := c.Upcoming(now), c.Past(now)
	if len(upcoming)+len(past) == 0 {
		b.text(RoleMuted, "No events announced yet. Check back soon.", 0)
		return
	}

	b.text(RoleHeading, "Upcoming", 0)
	if len(upcoming) == 0 {
		b.text(RoleMuted, "Nothing scheduled right now.", 2)
		b.blank()
	}
	for _, e := range upcoming {
		b.eventEntry(e, true)
	}

	if len(past) > 0 {
		b.text(RoleHeading, "Past", 0)
		for _, e := range past {
			b.eventEntry(e, false)
		}
	}
}

func (b *builder) team(c *content.Content) {
	for _, d := range c.TeamByDivision() {
		b.text(RoleHeading, d.Name, 0)
		for _, m := range d.Members {
			b.pair(Span{Text: m.Name, Role: RoleAccent}, Span{Text: m.Role, Role: RoleMuted})
			if m.Bio != "" {
				b.text(RoleBody, m.Bio, 2)
			}
			if len(m.Tags) > 0 {
				b.text(RoleMuted, "#"+strings.Join(m.Tags, " #"), 2)
			}
			if m.Link != "" {
				b.action(m.Link, Action{Kind: ActionLink, URL: m.Link})
			}
		}
		b.blank()
	}
}

func (b *builder) gallery(c *content.Content) {
	for _, img := range c.Gallery {
		b.text(RoleAccent, img.Title, 0)
		if img.Caption != "" {
			b.text(RoleBody, img.Caption, 2)
		}
		ref := "image: " + img.Image
		if img.Date != "" {
			ref += " · " + img.Date
		}
		b.text(RoleMuted, ref, 2)
		b.blank()
	}
}

func (b *builder) about(c *content.Content) {
	for i, para := range c.Site.About {
		if i > 0 {
			b.blank()
		}
		b.text(RoleBody, para, 0)
	}
}

func (b *builder) contact(c *content.Content) {
	b.text(RoleBody, "To join the club, fill out the membership form. New members are onboarded at the beginning of each semester.", 0)
	b.blank()
	for _, l := range c.Site.Contact.Links {
		b.action(l.Label+" ↗", Action{Kind: ActionLink, URL: l.URL})
	}
	b.blank()
	if c.Site.Contact.Email != "" {
		b.field("Email", c.Site.Contact.Email)
	}
	if c.Site.Contact.Address != "" {
		b.field("Location", c.Site.Contact.Address)
	}
}
