package analysis

import (
	"sort"

	"brentwatch/internal/model"
)

// EventFilter restricts an event collection. Zero-valued fields disable the
// corresponding facet: an empty Type passes every type, and an empty Start
// or End leaves that side of the window open.
type EventFilter struct {
	Type  string
	Start string
	End   string
}

// FilterEvents returns the subsequence of events matching the filter,
// preserving input order. The source slice is never mutated; with an empty
// filter the input is returned unchanged.
func FilterEvents(events []model.Event, f EventFilter) []model.Event {
	if f.Type == "" && f.Start == "" && f.End == "" {
		return events
	}
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if f.Type != "" && e.EventType != f.Type {
			continue
		}
		if f.Start != "" && e.Date < f.Start {
			continue
		}
		if f.End != "" && e.Date > f.End {
			continue
		}
		out = append(out, e)
	}
	return out
}

// EventTypes collects the distinct non-empty event types across the full
// collection, sorted so the result is independent of input order. This
// feeds the type-selector facet and must be rebuilt from the unfiltered
// collection whenever it changes.
func EventTypes(events []model.Event) []string {
	seen := make(map[string]struct{}, len(events))
	for _, e := range events {
		if e.EventType == "" {
			continue
		}
		seen[e.EventType] = struct{}{}
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
