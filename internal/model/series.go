package model

// DateLayout is the calendar-day format used in every request and response.
// Dates are zero-padded ISO strings, so lexicographic comparison matches
// chronological comparison.
const DateLayout = "2006-01-02"

// PricePoint is a single observed Brent close. PriceSmooth is only populated
// when the server applied a rolling mean (roll > 1).
type PricePoint struct {
	Date        string   `json:"date"`
	Price       float64  `json:"price"`
	PriceSmooth *float64 `json:"price_smooth,omitempty"`
}

// ForecastPoint is a single forecast value. Forecast dates usually extend
// past the last observed price date.
type ForecastPoint struct {
	Date     string  `json:"date"`
	Forecast float64 `json:"forecast"`
}

// MergedRow is one chart row: a date present in the price series, the
// forecast series, or both. Fields missing from the source side stay nil so
// the chart layer can distinguish "no point" from zero.
type MergedRow struct {
	Date        string   `json:"date"`
	Price       *float64 `json:"price,omitempty"`
	PriceSmooth *float64 `json:"price_smooth,omitempty"`
	Forecast    *float64 `json:"forecast,omitempty"`
}
