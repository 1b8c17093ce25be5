package render

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Truncate cuts s to at most width display cells with … suffix
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// WrapText wraps text at word boundaries to fit width display cells
// Words wider than width are hard-broken; returns at least one line
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	var line strings.Builder
	lineW := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}

	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)

		// Hard-break words that cannot fit on any line
		for w > width {
			if lineW > 0 {
				flush()
			}
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// Single glyph wider than the line
				_, size := utf8.DecodeRuneInString(word)
				head = word[:size]
			}
			lines = append(lines, head)
			word = word[len(head):]
			w = runewidth.StringWidth(word)
		}
		if w == 0 {
			continue
		}

		switch {
		case lineW == 0:
		case lineW+1+w <= width:
			line.WriteByte(' ')
			lineW++
		default:
			flush()
		}
		line.WriteString(word)
		lineW += w
	}

	if lineW > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// PadRight pads s with spaces to width display cells
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
