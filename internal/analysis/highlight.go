package analysis

import (
	"time"

	"brentwatch/internal/model"
)

// ResolveHighlight converts a selected date and a symmetric window into the
// date range [selected-window, selected+window] for chart annotation. An
// empty or unparsable selection yields nil (no highlight). Date arithmetic
// is calendar-aware, so month and year boundaries roll over correctly.
func ResolveHighlight(selected string, window int) *model.HighlightRange {
	if selected == "" {
		return nil
	}
	start, err := shiftDate(selected, -window)
	if err != nil {
		return nil
	}
	end, _ := shiftDate(selected, window)
	return &model.HighlightRange{Start: start, End: end}
}

// shiftDate moves an ISO date by the given number of days.
func shiftDate(date string, days int) (string, error) {
	t, err := parseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(model.DateLayout), nil
}

func parseDate(date string) (time.Time, error) {
	return time.Parse(model.DateLayout, date)
}
