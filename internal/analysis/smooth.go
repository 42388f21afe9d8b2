package analysis

import "brentwatch/internal/model"

// Smooth returns a copy of the price series with PriceSmooth set to the
// trailing mean over roll days. Windows at the head of the series are
// partial (the mean of however many points exist so far) rather than
// absent. roll <= 1 disables smoothing and returns the input as-is.
func Smooth(prices []model.PricePoint, roll int) []model.PricePoint {
	if roll <= 1 {
		return prices
	}
	out := make([]model.PricePoint, len(prices))
	sum := 0.0
	for i, p := range prices {
		sum += p.Price
		if i >= roll {
			sum -= prices[i-roll].Price
		}
		n := i + 1
		if n > roll {
			n = roll
		}
		mean := sum / float64(n)
		out[i] = p
		out[i].PriceSmooth = &mean
	}
	return out
}
