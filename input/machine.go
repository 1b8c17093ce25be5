package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/spaceclub/spaceclub/parameter"
)

// Scroll distances for paging keys
const (
	pageScroll = 10
	edgeScroll = 1 << 20
)

// Machine is the input state machine
// Parses tcell events into semantic Intents, tracking button state across mouse reports
type Machine struct {
	keys *KeyTable

	cellW float64
	cellH float64

	lastCol, lastRow int
	leftDown         bool
	pressCol         int
	pressRow         int
}

// NewMachine creates a machine mapping one cell to 1x2 canvas pixels (half-block rendering)
func NewMachine() *Machine {
	return &Machine{keys: DefaultKeyTable(), cellW: 1, cellH: 2, lastCol: -1, lastRow: -1}
}

// SetKeyTable replaces the key bindings; nil restores the defaults
func (m *Machine) SetKeyTable(kt *KeyTable) {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	m.keys = kt
}

// SetCellScale sets how many canvas pixels one cell spans
func (m *Machine) SetCellScale(w, h float64) {
	m.cellW, m.cellH = w, h
}

// Reset clears button tracking, used when focus moves between shell and scene
func (m *Machine) Reset() {
	m.leftDown = false
	m.lastCol, m.lastRow = -1, -1
}

// Process parses a tcell event, returning zero or more intents in order
func (m *Machine) Process(ev tcell.Event) []Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return []Intent{{Type: IntentResize, Col: w, Row: h}}
	case *tcell.EventKey:
		if in, ok := m.keys.Lookup(ev); ok {
			return []Intent{in}
		}
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) []Intent {
	col, row := ev.Position()
	x := (float64(col) + 0.5) * m.cellW
	y := (float64(row) + 0.5) * m.cellH
	at := func(t IntentType) Intent {
		return Intent{Type: t, X: x, Y: y, Col: col, Row: row}
	}

	btn := ev.Buttons()
	if btn&tcell.WheelUp != 0 {
		in := at(IntentWheel)
		in.Delta = 1
		return []Intent{in}
	}
	if btn&tcell.WheelDown != 0 {
		in := at(IntentWheel)
		in.Delta = -1
		return []Intent{in}
	}

	var out []Intent
	if col != m.lastCol || row != m.lastRow {
		out = append(out, at(IntentPointerMove))
		m.lastCol, m.lastRow = col, row
	}

	left := btn&tcell.Button1 != 0
	switch {
	case left && !m.leftDown:
		m.leftDown = true
		m.pressCol, m.pressRow = col, row
		out = append(out, at(IntentPointerDown))
	case !left && m.leftDown:
		m.leftDown = false
		out = append(out, at(IntentPointerUp))
		if abs(col-m.pressCol) <= parameter.ClickSlop && abs(row-m.pressRow) <= parameter.ClickSlop {
			out = append(out, at(IntentClick))
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
