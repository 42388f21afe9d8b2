package dashboard

import (
	"time"

	"brentwatch/internal/analysis"
	"brentwatch/internal/model"
)

// Mode tells whether the state holds live API data or the built-in sample.
type Mode string

const (
	ModeLoaded   Mode = "loaded"
	ModeFallback Mode = "fallback"
)

// Params are the user-facing controls. A refresh re-issues every fetch with
// the current parameters; nothing is updated incrementally.
type Params struct {
	Start        string
	End          string
	Roll         int
	EventWindow  int
	EventType    string
	SelectedDate string
}

// State is one immutable snapshot of fetched data plus the parameters that
// produced it. Every derived view is a pure projection of the snapshot, so
// a new refresh replaces the whole thing atomically.
type State struct {
	Mode         Mode
	Params       Params
	Prices       []model.PricePoint
	Forecast     []model.ForecastPoint
	Events       []model.Event
	ChangePoints []model.ChangePoint
	Metrics      *model.MetricsSummary
	RefreshedAt  time.Time
}

// Merged aligns the price and forecast series into chart rows.
func (s State) Merged() []model.MergedRow {
	return analysis.MergeSeries(s.Prices, s.Forecast)
}

// VisibleEvents applies the active window and type facet to the event table.
func (s State) VisibleEvents() []model.Event {
	return analysis.FilterEvents(s.Events, analysis.EventFilter{
		Type:  s.Params.EventType,
		Start: s.Params.Start,
		End:   s.Params.End,
	})
}

// EventTypes derives the type-selector values from the full, unfiltered
// event collection of this snapshot.
func (s State) EventTypes() []string {
	return analysis.EventTypes(s.Events)
}

// Highlight resolves the selected date into a chart annotation range, or
// nil when nothing is selected.
func (s State) Highlight() *model.HighlightRange {
	return analysis.ResolveHighlight(s.Params.SelectedDate, s.Params.EventWindow)
}
