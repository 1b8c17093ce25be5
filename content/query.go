package content

import (
	"slices"
	"time"
)

// Division groups team members under one division name
type Division struct {
	Name    string
	Members []Member
}

type datedEvent struct {
	start time.Time
	event Event
}

// dated parses every event start in now's location, skipping unparsable dates
func (c *Content) dated(now time.Time) []datedEvent {
	out := make([]datedEvent, 0, len(c.Events))
	for _, e := range c.Events {
		start, err := e.Start(now.Location())
		if err != nil {
			continue
		}
		out = append(out, datedEvent{start, e})
	}
	return out
}

// Upcoming returns events starting at or after now, soonest first
func (c *Content) Upcoming(now time.Time) []Event {
	var out []datedEvent
	for _, d := range c.dated(now) {
		if !d.start.Before(now) {
			out = append(out, d)
		}
	}
	slices.SortStableFunc(out, func(a, b datedEvent) int { return a.start.Compare(b.start) })
	return unwrap(out)
}

// Past returns events that started before now, most recent first
func (c *Content) Past(now time.Time) []Event {
	var out []datedEvent
	for _, d := range c.dated(now) {
		if d.start.Before(now) {
			out = append(out, d)
		}
	}
	slices.SortStableFunc(out, func(a, b datedEvent) int { return b.start.Compare(a.start) })
	return unwrap(out)
}

func unwrap(ds []datedEvent) []Event {
	events := make([]Event, len(ds))
	for i, d := range ds {
		events[i] = d.event
	}
	return events
}

// TeamByDivision groups members by division in order of first appearance
func (c *Content) TeamByDivision() []Division {
	var out []Division
	index := make(map[string]int)
	for _, m := range c.Team {
		i, ok := index[m.Division]
		if !ok {
			i = len(out)
			index[m.Division] = i
			out = append(out, Division{Name: m.Division})
		}
		out[i].Members = append(out[i].Members, m)
	}
	return out
}
