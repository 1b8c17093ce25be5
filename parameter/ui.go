package parameter

// Layout & Margins
const (
	// NavHeight is the nav bar height in rows (tabs + rule)
	NavHeight = 2

	// FooterHeight is the club footer between page text and status line
	FooterHeight = 1

	// StatusHeight is the status line height at the bottom of the shell
	StatusHeight = 1

	// PageMargin is the left/right padding of page text in cells
	PageMargin = 2

	// MaxPageWidth caps page text width on wide terminals
	MaxPageWidth = 96

	// HomeEventCount is the number of upcoming events listed on the home page
	HomeEventCount = 3

	// PrintWidth is the default wrap width for printed pages
	PrintWidth = 80
)

// Scene HUD
const (
	// CloseLabel is the overlay close button text
	CloseLabel = "[ x close ]"

	// HUDHint lists the overlay controls
	HUDHint = "drag rotate  wheel/+- zoom  click select  esc close"
)

// Window frontend
const (
	// WindowWidth is the logical ebiten canvas width
	WindowWidth = 480

	// WindowHeight is the logical ebiten canvas height
	WindowHeight = 300

	// WindowScale is the window size multiplier of the logical canvas
	WindowScale = 2
)
