package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to the intents they produce
// Special keys are matched by tcell.Key, printable keys by rune
type KeyTable struct {
	Keys  map[tcell.Key]Intent
	Runes map[rune]Intent
}

// DefaultKeyTable returns the built-in bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		Keys: map[tcell.Key]Intent{
			tcell.KeyEscape:  {Type: IntentEscape},
			tcell.KeyTab:     {Type: IntentNavNext},
			tcell.KeyRight:   {Type: IntentNavNext},
			tcell.KeyBacktab: {Type: IntentNavPrev},
			tcell.KeyLeft:    {Type: IntentNavPrev},
			tcell.KeyUp:      {Type: IntentScroll, Delta: -1},
			tcell.KeyDown:    {Type: IntentScroll, Delta: 1},
			tcell.KeyPgUp:    {Type: IntentScroll, Delta: -pageScroll},
			tcell.KeyPgDn:    {Type: IntentScroll, Delta: pageScroll},
			tcell.KeyHome:    {Type: IntentScroll, Delta: -edgeScroll},
			tcell.KeyEnd:     {Type: IntentScroll, Delta: edgeScroll},
			tcell.KeyEnter:   {Type: IntentActivate},
		},
		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},
			'o': {Type: IntentOpenScene},
			'l': {Type: IntentNavNext},
			'h': {Type: IntentNavPrev},
			'j': {Type: IntentScroll, Delta: 1},
			'k': {Type: IntentScroll, Delta: -1},
			'g': {Type: IntentScroll, Delta: -edgeScroll},
			'G': {Type: IntentScroll, Delta: edgeScroll},
			'+': {Type: IntentWheel, Delta: 1},
			'=': {Type: IntentWheel, Delta: 1},
			'-': {Type: IntentWheel, Delta: -1},
		},
	}
	for i := 0; i < 9; i++ {
		kt.Runes['1'+rune(i)] = Intent{Type: IntentNavTo, Delta: i}
	}
	return kt
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event; Ctrl+C always quits regardless of bindings
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Intent, bool) {
	if ev.Key() == tcell.KeyCtrlC {
		return Intent{Type: IntentQuit}, true
	}
	var (
		in Intent
		ok bool
	)
	if ev.Key() == tcell.KeyRune {
		in, ok = kt.Runes[ev.Rune()]
	} else {
		in, ok = kt.Keys[ev.Key()]
	}
	return in, ok && in.Type != IntentNone
}
