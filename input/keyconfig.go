package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keyNames is tcell's key name table, lowercased and reversed
var keyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// ParseKeyBindings turns key → action name pairs into a sparse override KeyTable
// Keys are single characters, rune aliases, or tcell key names ("Enter", "PgDn", "Ctrl-R")
// Returns every unknown key or action joined in one error, reported in key order
func ParseKeyBindings(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Intent),
		Runes: make(map[rune]Intent),
	}

	keys := make([]string, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var problems []string
	for _, keyStr := range keys {
		in, err := resolveAction(bindings[keyStr])
		if err != nil {
			problems = append(problems, fmt.Sprintf("key %q: %v", keyStr, err))
			continue
		}
		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = in
			continue
		}
		if k, ok := keyNames[strings.ToLower(keyStr)]; ok {
			kt.Keys[k] = in
			continue
		}
		problems = append(problems, fmt.Sprintf("unknown key name %q", keyStr))
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("key bindings: %s", strings.Join(problems, "; "))
	}
	return kt, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// resolveAction converts an action name string to an Intent
func resolveAction(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	in, ok := ActionIntent(name)
	if !ok {
		return Intent{}, fmt.Errorf("unknown action %q", name)
	}
	return in, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.Keys, override.Keys)
	return result
}

func mergeMap[K comparable](base, override map[K]Intent) {
	for k, v := range override {
		if v.Type == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
