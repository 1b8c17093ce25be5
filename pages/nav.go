package pages

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TabBounds stores position and size of a rendered tab
type TabBounds struct {
	X, W int
}

// Contains reports whether col falls inside the tab
func (t TabBounds) Contains(col int) bool {
	return t.W > 0 && col >= t.X && col < t.X+t.W
}

const (
	tabPadding   = 1
	tabSeparator = "│"
)

// brandLabel is the short club name shown left of the page tabs
func brandLabel(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return ""
}

// layoutNav places the brand button then the page tabs from x
func layoutNav(x, width int, brand string) (TabBounds, []TabBounds) {
	var b TabBounds
	if brand != "" {
		if w := runewidth.StringWidth(brand) + tabPadding*2; x+w <= width {
			b = TabBounds{X: x, W: w}
			x += w + runewidth.StringWidth(tabSeparator)
		}
	}
	return b, layoutTabs(x, width)
}

// layoutTabs places page titles left to right from x; tabs past width get zero size
func layoutTabs(x, width int) []TabBounds {
	bounds := make([]TabBounds, pageCount)
	sepW := runewidth.StringWidth(tabSeparator)
	for i, p := range All() {
		w := runewidth.StringWidth(p.Title()) + tabPadding*2
		if x+w > width {
			break
		}
		bounds[i] = TabBounds{X: x, W: w}
		x += w + sepW
	}
	return bounds
}

// tabAt returns the page whose tab covers col
func tabAt(tabs []TabBounds, col int) (Page, bool) {
	for i, t := range tabs {
		if t.Contains(col) {
			return Page(i), true
		}
	}
	return 0, false
}
