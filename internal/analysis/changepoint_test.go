package analysis

import (
	"math"
	"testing"
	"time"

	"brentwatch/internal/model"
)

func levelSeries(start string, levels ...struct {
	value float64
	days  int
}) []model.PricePoint {
	t, _ := time.Parse(model.DateLayout, start)
	var out []model.PricePoint
	for _, l := range levels {
		for i := 0; i < l.days; i++ {
			out = append(out, model.PricePoint{Date: t.Format(model.DateLayout), Price: l.value})
			t = t.AddDate(0, 0, 1)
		}
	}
	return out
}

type level = struct {
	value float64
	days  int
}

func TestDetectChangePoints_LevelShift(t *testing.T) {
	prices := levelSeries("2025-06-01", level{80, 20}, level{110, 20})
	events := []model.Event{{Date: "2025-06-20", EventType: "geopolitical", Title: "Supply shock"}}

	got := DetectChangePoints(prices, events, 5, 5.0)
	if len(got) != 1 {
		t.Fatalf("expected exactly one change point, got %d: %+v", len(got), got)
	}
	cp := got[0]
	if cp.Date != "2025-06-21" {
		t.Errorf("expected shift at 2025-06-21, got %s", cp.Date)
	}
	if math.Abs(cp.MeanBefore-80) > 1e-9 || math.Abs(cp.MeanAfter-110) > 1e-9 {
		t.Errorf("wrong window means: before=%.2f after=%.2f", cp.MeanBefore, cp.MeanAfter)
	}
	if math.Abs(cp.ChangeMagnitudePercent-37.5) > 1e-9 {
		t.Errorf("expected +37.5%% magnitude, got %.2f", cp.ChangeMagnitudePercent)
	}
	if cp.AssociatedEvents != "Supply shock" {
		t.Errorf("expected nearest event association, got %q", cp.AssociatedEvents)
	}
}

func TestDetectChangePoints_FlatSeries(t *testing.T) {
	prices := levelSeries("2025-06-01", level{80, 40})
	if got := DetectChangePoints(prices, nil, 5, 5.0); len(got) != 0 {
		t.Errorf("flat series must produce no change points, got %+v", got)
	}
}

func TestDetectChangePoints_TooLittleData(t *testing.T) {
	prices := levelSeries("2025-06-01", level{80, 6})
	if got := DetectChangePoints(prices, nil, 5, 5.0); got != nil {
		t.Errorf("expected nil for series shorter than two spans, got %+v", got)
	}
	if got := DetectChangePoints(prices, nil, 0, 5.0); got != nil {
		t.Errorf("expected nil for non-positive span, got %+v", got)
	}
}

func TestDetectChangePoints_NoEventWithinSpan(t *testing.T) {
	prices := levelSeries("2025-06-01", level{80, 20}, level{110, 20})
	events := []model.Event{{Date: "2025-09-01", Title: "Months later"}}

	got := DetectChangePoints(prices, events, 5, 5.0)
	if len(got) != 1 {
		t.Fatalf("expected one change point, got %d", len(got))
	}
	if got[0].AssociatedEvents != "" {
		t.Errorf("expected no association, got %q", got[0].AssociatedEvents)
	}
}
