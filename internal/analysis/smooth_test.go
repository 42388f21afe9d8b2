package analysis

import (
	"math"
	"testing"

	"brentwatch/internal/model"
)

func pricesFrom(values ...float64) []model.PricePoint {
	out := make([]model.PricePoint, len(values))
	for i, v := range values {
		out[i] = model.PricePoint{Date: "2025-08-0" + string(rune('1'+i)), Price: v}
	}
	return out
}

func TestSmooth_TrailingMeanWithPartialHead(t *testing.T) {
	got := Smooth(pricesFrom(1, 2, 3, 4), 3)
	want := []float64{1, 1.5, 2, 3}
	for i, w := range want {
		if got[i].PriceSmooth == nil {
			t.Fatalf("index %d: smooth not populated", i)
		}
		if math.Abs(*got[i].PriceSmooth-w) > 1e-9 {
			t.Errorf("index %d: expected %.2f, got %.4f", i, w, *got[i].PriceSmooth)
		}
	}
}

func TestSmooth_RollAtMostOneIsOff(t *testing.T) {
	for _, roll := range []int{-1, 0, 1} {
		got := Smooth(pricesFrom(1, 2, 3), roll)
		for i := range got {
			if got[i].PriceSmooth != nil {
				t.Errorf("roll=%d: expected no smoothing at index %d", roll, i)
			}
		}
	}
}

func TestSmooth_DoesNotMutateInput(t *testing.T) {
	in := pricesFrom(1, 2, 3)
	Smooth(in, 2)
	for i, p := range in {
		if p.PriceSmooth != nil {
			t.Errorf("input index %d was mutated", i)
		}
	}
}
