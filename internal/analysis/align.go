package analysis

import (
	"sort"

	"brentwatch/internal/model"
)

// MergeSeries aligns a price series and a forecast series into one sequence
// with a single row per distinct date, sorted ascending. A date present in
// only one input yields a row whose other fields stay nil. Duplicate dates
// within the same input resolve to last write wins; the inputs are expected
// unique by date, so this is an edge case, not an averaging policy.
//
// Dates are compared as strings. Zero-padded ISO dates make lexicographic
// order exact; malformed dates are passed through uninterpreted and sort by
// plain string order.
func MergeSeries(prices []model.PricePoint, forecast []model.ForecastPoint) []model.MergedRow {
	rows := make(map[string]*model.MergedRow, len(prices)+len(forecast))

	for _, p := range prices {
		price := p.Price
		rows[p.Date] = &model.MergedRow{
			Date:        p.Date,
			Price:       &price,
			PriceSmooth: p.PriceSmooth,
		}
	}
	for _, f := range forecast {
		row, ok := rows[f.Date]
		if !ok {
			row = &model.MergedRow{Date: f.Date}
			rows[f.Date] = row
		}
		v := f.Forecast
		row.Forecast = &v
	}

	dates := make([]string, 0, len(rows))
	for d := range rows {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	merged := make([]model.MergedRow, len(dates))
	for i, d := range dates {
		merged[i] = *rows[d]
	}
	return merged
}
