package render

// Renderer is implemented by every scene layer
type Renderer interface {
	Render(ctx Context, c *Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
