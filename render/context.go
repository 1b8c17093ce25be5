package render

import "github.com/spaceclub/spaceclub/scene"

// Context provides frame state for renderers, passed by value
type Context struct {
	Scene *scene.Scene
	Delta float64 // seconds since previous frame

	// Close button hit area, pixels; renderers draw the button exactly here
	CloseRect scene.Rect
}

// Elapsed returns scene time, zero without a scene
func (rc Context) Elapsed() float64 {
	if rc.Scene == nil {
		return 0
	}
	return rc.Scene.Elapsed()
}
