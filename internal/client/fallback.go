package client

import "brentwatch/internal/model"

// Fallback sample: a fixed week of prices plus a short forecast tail and two
// annotated events, substituted wholesale when the API is unreachable so the
// dashboard stays populated for demonstration.

// FallbackPrices returns a fresh copy of the built-in price sample.
func FallbackPrices() []model.PricePoint {
	return []model.PricePoint{
		{Date: "2025-08-01", Price: 78.2},
		{Date: "2025-08-02", Price: 78.9},
		{Date: "2025-08-03", Price: 79.4},
		{Date: "2025-08-04", Price: 79.0},
		{Date: "2025-08-05", Price: 80.1},
		{Date: "2025-08-06", Price: 80.6},
		{Date: "2025-08-07", Price: 80.2},
	}
}

// FallbackForecast returns a fresh copy of the built-in forecast sample.
func FallbackForecast() []model.ForecastPoint {
	return []model.ForecastPoint{
		{Date: "2025-08-08", Forecast: 80.7},
		{Date: "2025-08-09", Forecast: 80.9},
		{Date: "2025-08-10", Forecast: 81.2},
	}
}

// FallbackEvents returns a fresh copy of the built-in event sample.
func FallbackEvents() []model.Event {
	return []model.Event{
		{Date: "2025-08-03", EventType: "geopolitical", Title: "Regional tension rises"},
		{Date: "2025-08-05", EventType: "policy_sanction", Title: "OPEC+ surprise comment"},
	}
}
