package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"brentwatch/internal/model"
)

// DetectChangePoints scans the price series for level shifts: dates where
// the mean of the span points after the date differs from the mean of the
// span points before it by at least threshold percent. Candidates are
// ranked by magnitude and accepted greedily with a minimum separation of
// span points, so one regime change produces one change point rather than a
// cluster. Each accepted point is associated with the nearest event within
// span days, when one exists.
func DetectChangePoints(prices []model.PricePoint, events []model.Event, span int, threshold float64) []model.ChangePoint {
	if span <= 0 || len(prices) < 2*span {
		return nil
	}

	values := make([]float64, len(prices))
	for i, p := range prices {
		values[i] = p.Price
	}

	type candidate struct {
		index      int
		before     float64
		after      float64
		magnitude  float64
	}
	var candidates []candidate
	for i := span; i+span <= len(values); i++ {
		before := stat.Mean(values[i-span:i], nil)
		after := stat.Mean(values[i:i+span], nil)
		if before == 0 {
			continue
		}
		mag := (after - before) / before * 100
		if math.Abs(mag) < threshold {
			continue
		}
		candidates = append(candidates, candidate{index: i, before: before, after: after, magnitude: mag})
	}

	// Strongest shifts first, then greedy separation.
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && math.Abs(candidates[j].magnitude) > math.Abs(candidates[j-1].magnitude); j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}
	var accepted []candidate
	for _, c := range candidates {
		tooClose := false
		for _, a := range accepted {
			if abs(c.index-a.index) < span {
				tooClose = true
				break
			}
		}
		if !tooClose {
			accepted = append(accepted, c)
		}
	}

	// Back to chronological order for the response.
	for i := 1; i < len(accepted); i++ {
		for j := i; j > 0 && accepted[j].index < accepted[j-1].index; j-- {
			accepted[j], accepted[j-1] = accepted[j-1], accepted[j]
		}
	}

	out := make([]model.ChangePoint, 0, len(accepted))
	for _, c := range accepted {
		date := prices[c.index].Date
		out = append(out, model.ChangePoint{
			Date:                   date,
			MeanBefore:             c.before,
			MeanAfter:              c.after,
			ChangeMagnitudePercent: c.magnitude,
			AssociatedEvents:       nearestEventTitle(events, date, span),
		})
	}
	return out
}

// nearestEventTitle returns the title of the event closest to date within
// maxDays, or "" when none qualifies.
func nearestEventTitle(events []model.Event, date string, maxDays int) string {
	best := ""
	bestDist := maxDays + 1
	for _, e := range events {
		d := dateDistanceDays(e.Date, date)
		if d < 0 {
			continue
		}
		if d < bestDist {
			bestDist = d
			best = e.Title
		}
	}
	return best
}

// dateDistanceDays returns the absolute day distance between two ISO dates,
// or -1 when either fails to parse.
func dateDistanceDays(a, b string) int {
	ta, errA := parseDate(a)
	tb, errB := parseDate(b)
	if errA != nil || errB != nil {
		return -1
	}
	d := int(ta.Sub(tb).Hours() / 24)
	if d < 0 {
		d = -d
	}
	return d
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
