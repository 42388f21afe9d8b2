package model

// EventImpact summarizes price behavior in the symmetric window around one
// event. AvgWindowPrice and EventDelta are nil when the window (or one of
// its sides) holds no price points, signaling insufficient data rather
// than a zero impact.
type EventImpact struct {
	Date           string   `json:"date"`
	Title          string   `json:"title"`
	EventType      string   `json:"event_type"`
	AvgWindowPrice *float64 `json:"avg_window_price"`
	EventDelta     *float64 `json:"event_delta"`
}

// Counts reports the sizes of the unfiltered source collections.
type Counts struct {
	Prices int `json:"prices"`
	Events int `json:"events"`
}

// MetricsSummary holds the KPI aggregates shown on the dashboard tiles.
type MetricsSummary struct {
	AnnualizedVolatility float64       `json:"annualized_volatility"`
	Counts               Counts        `json:"counts"`
	EventImpacts         []EventImpact `json:"event_impacts"`
}

// HighlightRange is the ephemeral date span highlighted on the chart when
// the user selects a date.
type HighlightRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
