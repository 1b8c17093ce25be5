package pages

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPage is returned by ParsePage for names outside the nav bar
var ErrUnknownPage = errors.New("unknown page")

// Page identifies one tab of the site
type Page int

const (
	Home Page = iota
	Events
	Team
	Gallery
	About
	Contact

	pageCount
)

var pageNames = [pageCount]string{"home", "events", "team", "gallery", "about", "contact"}

var pageTitles = [pageCount]string{"Home", "Events", "Team", "Gallery", "About", "Join / Contact"}

// All returns pages in nav bar order
func All() []Page {
	out := make([]Page, pageCount)
	for i := range out {
		out[i] = Page(i)
	}
	return out
}

func (p Page) valid() bool { return p >= 0 && p < pageCount }

// String returns the lowercase name accepted by ParsePage
func (p Page) String() string {
	if !p.valid() {
		return fmt.Sprintf("page(%d)", int(p))
	}
	return pageNames[p]
}

// Title returns the nav bar label
func (p Page) Title() string {
	if !p.valid() {
		return "?"
	}
	return pageTitles[p]
}

// Next returns the following page, wrapping around
func (p Page) Next() Page { return (p + 1) % pageCount }

// Prev returns the preceding page, wrapping around
func (p Page) Prev() Page { return (p + pageCount - 1) % pageCount }

// ParsePage resolves a case-insensitive page name
func ParsePage(name string) (Page, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range pageNames {
		if n == name {
			return Page(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w (want one of %s)", name, ErrUnknownPage, strings.Join(pageNames[:], ", "))
}
