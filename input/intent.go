package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Ctrl+C
	IntentEscape // ESC key (context-dependent)
	IntentResize // Terminal resize event, Col/Row carry the new size

	// Pointer intents, X/Y in canvas pixels, Col/Row in cells
	IntentPointerMove
	IntentPointerDown
	IntentPointerUp
	IntentClick // press+release without travel beyond ClickSlop
	IntentWheel // Delta +1 zooms in, -1 zooms out

	// Navigation shell
	IntentNavNext
	IntentNavPrev
	IntentNavTo     // Delta is the zero-based page index
	IntentScroll    // Delta lines, negative scrolls up
	IntentActivate  // Enter on the focused action line
	IntentOpenScene // o
)

// Intent is a parsed input action
type Intent struct {
	Type  IntentType
	X, Y  float64
	Col   int
	Row   int
	Delta int
}

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "Quit"
	case IntentEscape:
		return "Escape"
	case IntentResize:
		return "Resize"
	case IntentPointerMove:
		return "PointerMove"
	case IntentPointerDown:
		return "PointerDown"
	case IntentPointerUp:
		return "PointerUp"
	case IntentClick:
		return "Click"
	case IntentWheel:
		return "Wheel"
	case IntentNavNext:
		return "NavNext"
	case IntentNavPrev:
		return "NavPrev"
	case IntentNavTo:
		return "NavTo"
	case IntentScroll:
		return "Scroll"
	case IntentActivate:
		return "Activate"
	case IntentOpenScene:
		return "OpenScene"
	default:
		return "None"
	}
}
