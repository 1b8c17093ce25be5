package input

import "sort"

// actionRegistry maps canonical action names to the intent a bound key produces
// Used by the key binding loader to resolve config action strings
var actionRegistry map[string]Intent

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]Intent {
	r := map[string]Intent{
		// Unbind sentinel
		"none": {},

		// System
		"quit":       {Type: IntentQuit},
		"escape":     {Type: IntentEscape},
		"open_scene": {Type: IntentOpenScene},
		"activate":   {Type: IntentActivate},

		// Pages
		"next_page": {Type: IntentNavNext},
		"prev_page": {Type: IntentNavPrev},

		// Scrolling
		"scroll_down": {Type: IntentScroll, Delta: 1},
		"scroll_up":   {Type: IntentScroll, Delta: -1},
		"page_down":   {Type: IntentScroll, Delta: pageScroll},
		"page_up":     {Type: IntentScroll, Delta: -pageScroll},
		"top":         {Type: IntentScroll, Delta: -edgeScroll},
		"bottom":      {Type: IntentScroll, Delta: edgeScroll},

		// Scene zoom
		"zoom_in":  {Type: IntentWheel, Delta: 1},
		"zoom_out": {Type: IntentWheel, Delta: -1},
	}

	// goto_page_1 .. goto_page_9, pages past the last are ignored by the shell
	for i := 0; i < 9; i++ {
		r["goto_page_"+string(rune('1'+i))] = Intent{Type: IntentNavTo, Delta: i}
	}
	return r
}

// ActionIntent returns the intent for a canonical action name
func ActionIntent(name string) (Intent, bool) {
	in, ok := actionRegistry[name]
	return in, ok
}

// ActionNames returns all bindable action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
