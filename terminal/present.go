package terminal

import (
	"github.com/spaceclub/spaceclub/render"
)

// upperHalf shows the top pixel as foreground over the bottom pixel as background
const upperHalf = '▀'

// CanvasSize returns the half-block canvas size for a cell grid
func CanvasSize(cols, rows int) (int, int) {
	return cols, rows * 2
}

// Present draws a half-block canvas over the whole screen, then its labels
// Each cell shows two vertically stacked pixels; labels land on the cell under
// their anchor pixel with a darkened background for legibility
func (t *Terminal) Present(c *render.Canvas) {
	cols, rows := t.screen.Size()
	cols = min(cols, c.Width())
	rows = min(rows, (c.Height()+1)/2)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := c.At(col, row*2)
			bottom := c.At(col, row*2+1)
			t.screen.SetContent(col, row, upperHalf, nil, t.Style(top, bottom))
		}
	}

	gw, gh := c.GlyphSize()
	for _, l := range c.Labels() {
		col := int(l.X / gw)
		row := int(l.Y / gh)
		x := col
		for _, r := range l.Text {
			under := render.Lerp(c.At(x, row*2), c.At(x, row*2+1), 0.5)
			bg := render.Scale(under, 0.45)
			x += t.DrawText(x, row, string(r), t.Style(l.Fg, bg))
		}
	}
}
