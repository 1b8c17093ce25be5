package render

type rendererEntry struct {
	renderer Renderer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline over one canvas
// Presentation is left to the surface (terminal or window)
type Orchestrator struct {
	canvas     *Canvas
	background RGB
	renderers  []rendererEntry
	regCount   int
}

// NewOrchestrator creates an orchestrator drawing into a canvas of the given pixel size
func NewOrchestrator(width, height int, background RGB) *Orchestrator {
	return &Orchestrator{
		canvas:     NewCanvas(width, height),
		background: background,
		renderers:  make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r Renderer, priority Priority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Canvas returns the frame target
func (o *Orchestrator) Canvas() *Canvas { return o.canvas }

// Resize updates canvas dimensions
func (o *Orchestrator) Resize(width, height int) {
	o.canvas.Resize(width, height)
}

// RenderFrame clears the canvas and runs all visible renderers in priority order
// Returns false without drawing when the canvas has no area
func (o *Orchestrator) RenderFrame(ctx Context) bool {
	if o.canvas.Empty() || ctx.Scene == nil {
		return false
	}
	o.canvas.Clear(o.background)

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.canvas)
	}
	return true
}
