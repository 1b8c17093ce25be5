package visual

import (
	"github.com/spaceclub/spaceclub/render"
)

// render.RGB color definitions for the scene and shell
var (
	// Space background
	RgbSpace     = render.RGB{R: 4, G: 6, B: 16}
	RgbStar      = render.RGB{R: 220, G: 228, B: 255}
	RgbStarWarm  = render.RGB{R: 255, G: 226, B: 190}
	RgbOrbit     = render.RGB{R: 70, G: 90, B: 140}
	RgbOrbitLit  = render.RGB{R: 140, G: 180, B: 255} // selected body's guide
	RgbRing      = render.RGB{R: 200, G: 190, B: 160}
	RgbHoverRing = render.RGB{R: 255, G: 255, B: 255}

	// Anchor (central star), core to corona
	RgbAnchorCore   = render.RGB{R: 255, G: 250, B: 225}
	RgbAnchorMid    = render.RGB{R: 255, G: 196, B: 80}
	RgbAnchorCorona = render.RGB{R: 255, G: 120, B: 30}

	// HUD
	RgbHudText   = render.RGB{R: 210, G: 215, B: 230}
	RgbHudDim    = render.RGB{R: 100, G: 100, B: 110}
	RgbHudAccent = render.RGB{R: 120, G: 200, B: 255}
	RgbHudClose  = render.RGB{R: 255, G: 140, B: 120}
	RgbLabel     = render.RGB{R: 255, G: 255, B: 255}

	// Shell text roles
	RgbTitle   = render.RGB{R: 255, G: 255, B: 255}
	RgbHeading = render.RGB{R: 120, G: 200, B: 255}
	RgbBody    = render.RGB{R: 200, G: 200, B: 210}
	RgbMuted   = render.RGB{R: 120, G: 120, B: 135}
	RgbAccent  = render.RGB{R: 255, G: 196, B: 80}
	RgbLink    = render.RGB{R: 130, G: 170, B: 255}
	RgbTabBg   = render.RGB{R: 30, G: 40, B: 70}
	RgbTabSel  = render.RGB{R: 60, G: 90, B: 160}
	RgbRule    = render.RGB{R: 50, G: 60, B: 90}
	RgbStatus  = render.RGB{R: 160, G: 160, B: 175}
)
