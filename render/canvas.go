package render

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// Label is a text run anchored at a pixel position (top-left of first glyph)
type Label struct {
	X, Y float64
	Text string
	Fg   RGB
}

// Canvas is a pixel compositor with a text layer
// Surfaces decide how pixels and glyphs map to output; GlyphW/GlyphH tell renderers
// how many pixels one character occupies on the current surface
type Canvas struct {
	pixels []RGB
	width  int
	height int
	labels []Label

	glyphW float64
	glyphH float64
}

// NewCanvas creates a canvas with the specified pixel dimensions
// Default glyph size is 1x2, one terminal cell over two half-block pixels
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{glyphW: 1, glyphH: 2}
	c.Resize(width, height)
	return c
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(c.pixels) < size {
		c.pixels = make([]RGB, size)
	} else {
		c.pixels = c.pixels[:size]
	}
	c.width = width
	c.height = height
	c.Clear(RGBBlack)
}

// SetGlyphSize sets the pixel footprint of one character
func (c *Canvas) SetGlyphSize(w, h float64) {
	c.glyphW, c.glyphH = w, h
}

// GlyphSize returns the pixel footprint of one character
func (c *Canvas) GlyphSize() (float64, float64) { return c.glyphW, c.glyphH }

func (c *Canvas) Width() int      { return c.width }
func (c *Canvas) Height() int     { return c.height }
func (c *Canvas) Empty() bool     { return c.width == 0 || c.height == 0 }
func (c *Canvas) Pixels() []RGB   { return c.pixels }
func (c *Canvas) Labels() []Label { return c.labels }

// Clear fills all pixels with bg using exponential copy and drops labels
func (c *Canvas) Clear(bg RGB) {
	c.labels = c.labels[:0]
	if len(c.pixels) == 0 {
		return
	}
	c.pixels[0] = bg
	for filled := 1; filled < len(c.pixels); filled *= 2 {
		copy(c.pixels[filled:], c.pixels[:filled])
	}
}

// inBounds returns true if in canvas bounds
func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns the pixel at (x, y), black outside bounds
func (c *Canvas) At(x, y int) RGB {
	if !c.inBounds(x, y) {
		return RGBBlack
	}
	return c.pixels[y*c.width+x]
}

// Set composites a pixel with specified blend mode
func (c *Canvas) Set(x, y int, src RGB, mode BlendMode, alpha float64) {
	if !c.inBounds(x, y) {
		return
	}
	idx := y*c.width + x
	c.pixels[idx] = mode.apply(c.pixels[idx], src, alpha)
}

// Line draws a segment with a DDA walk, one sample per pixel step
func (c *Canvas) Line(x0, y0, x1, y1 float64, src RGB, mode BlendMode, alpha float64) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		c.Set(int(x0), int(y0), src, mode, alpha)
		return
	}
	sx, sy := dx/float64(steps), dy/float64(steps)
	// Skip the final sample so joined segments do not double-blend shared endpoints
	for i := 0; i < steps; i++ {
		c.Set(int(math.Floor(x0+sx*float64(i))), int(math.Floor(y0+sy*float64(i))), src, mode, alpha)
	}
}

// Text queues a label; surfaces draw labels after pixels
func (c *Canvas) Text(x, y float64, s string, fg RGB) {
	if s == "" {
		return
	}
	c.labels = append(c.labels, Label{X: x, Y: y, Text: s, Fg: fg})
}

// TextWidth returns the pixel width of s on this canvas
func (c *Canvas) TextWidth(s string) float64 {
	return float64(runewidth.StringWidth(s)) * c.glyphW
}

// WriteRGBA encodes pixels as RGBA bytes into dst, which must hold 4*Width*Height bytes
func (c *Canvas) WriteRGBA(dst []byte) {
	for i, p := range c.pixels {
		o := i * 4
		dst[o] = p.R
		dst[o+1] = p.G
		dst[o+2] = p.B
		dst[o+3] = 0xff
	}
}
