package analysis

import "testing"

func TestResolveHighlight(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		window   int
		start    string
		end      string
	}{
		{"symmetric window", "2025-08-05", 3, "2025-08-02", "2025-08-08"},
		{"zero window", "2025-08-05", 0, "2025-08-05", "2025-08-05"},
		{"month rollover", "2025-08-01", 3, "2025-07-29", "2025-08-04"},
		{"year rollover", "2026-01-01", 2, "2025-12-30", "2026-01-03"},
		{"leap day", "2024-03-01", 1, "2024-02-29", "2024-03-02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveHighlight(tt.selected, tt.window)
			if got == nil {
				t.Fatal("expected a highlight range")
			}
			if got.Start != tt.start || got.End != tt.end {
				t.Errorf("expected [%s, %s], got [%s, %s]", tt.start, tt.end, got.Start, got.End)
			}
		})
	}
}

func TestResolveHighlight_NoSelection(t *testing.T) {
	if got := ResolveHighlight("", 3); got != nil {
		t.Errorf("expected no highlight, got %+v", got)
	}
	if got := ResolveHighlight("not-a-date", 3); got != nil {
		t.Errorf("expected no highlight for malformed date, got %+v", got)
	}
}
