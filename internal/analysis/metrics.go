package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"brentwatch/internal/model"
)

// tradingDaysPerYear scales daily return dispersion to an annualized basis.
const tradingDaysPerYear = 252

// Volatility computes the annualized volatility of the price series: the
// sample standard deviation of day-over-day simple returns scaled by
// sqrt(252). A positive lookback limits the estimate to the most recent
// lookback returns. Fewer than two usable returns yield 0, never an error.
func Volatility(prices []model.PricePoint, lookback int) float64 {
	returns := make([]float64, 0, len(prices))
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1].Price
		if prev == 0 {
			continue
		}
		returns = append(returns, prices[i].Price/prev-1)
	}
	if lookback > 0 && len(returns) > lookback {
		returns = returns[len(returns)-lookback:]
	}
	if len(returns) < 2 {
		return 0
	}
	return stat.StdDev(returns, nil) * math.Sqrt(tradingDaysPerYear)
}

// Reduce computes the full MetricsSummary from the unfiltered price and
// event collections. window is the number of days on each side of an event
// date; lookback bounds the volatility estimate (0 = use all returns).
// Empty inputs degrade to zeroed aggregates and an empty impact sequence.
func Reduce(prices []model.PricePoint, events []model.Event, window, lookback int) model.MetricsSummary {
	summary := model.MetricsSummary{
		AnnualizedVolatility: Volatility(prices, lookback),
		Counts: model.Counts{
			Prices: len(prices),
			Events: len(events),
		},
		EventImpacts: make([]model.EventImpact, 0, len(events)),
	}
	for _, e := range events {
		summary.EventImpacts = append(summary.EventImpacts, eventImpact(prices, e, window))
	}
	return summary
}

// eventImpact averages prices in the inclusive [date-window, date+window]
// span. The split for the delta counts the event date itself in the "after"
// side: before is [date-window, date), after is [date, date+window]. Either
// side empty, or a zero before-mean, leaves the delta nil.
func eventImpact(prices []model.PricePoint, e model.Event, window int) model.EventImpact {
	impact := model.EventImpact{
		Date:      e.Date,
		Title:     e.Title,
		EventType: e.EventType,
	}

	lo, err := shiftDate(e.Date, -window)
	if err != nil {
		return impact
	}
	hi, _ := shiftDate(e.Date, window)

	var full, before, after []float64
	for _, p := range prices {
		if p.Date < lo || p.Date > hi {
			continue
		}
		full = append(full, p.Price)
		if p.Date < e.Date {
			before = append(before, p.Price)
		} else {
			after = append(after, p.Price)
		}
	}
	if len(full) == 0 {
		return impact
	}

	avg := stat.Mean(full, nil)
	impact.AvgWindowPrice = &avg

	if len(before) > 0 && len(after) > 0 {
		meanBefore := stat.Mean(before, nil)
		meanAfter := stat.Mean(after, nil)
		if meanBefore != 0 {
			delta := (meanAfter - meanBefore) / meanBefore
			impact.EventDelta = &delta
		}
	}
	return impact
}

// AvgAbsChange is the mean absolute change-point magnitude, the "average
// price change" KPI tile. Empty input yields 0.
func AvgAbsChange(changePoints []model.ChangePoint) float64 {
	if len(changePoints) == 0 {
		return 0
	}
	sum := 0.0
	for _, cp := range changePoints {
		sum += math.Abs(cp.ChangeMagnitudePercent)
	}
	return sum / float64(len(changePoints))
}
