package analysis

import (
	"testing"

	"brentwatch/internal/model"
)

func TestMergeSeries_OverlappingDates(t *testing.T) {
	prices := []model.PricePoint{
		{Date: "2025-08-01", Price: 78.2},
		{Date: "2025-08-02", Price: 78.9},
	}
	forecast := []model.ForecastPoint{
		{Date: "2025-08-02", Forecast: 79.5},
		{Date: "2025-08-03", Forecast: 80.0},
	}

	merged := MergeSeries(prices, forecast)
	if len(merged) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(merged))
	}

	if merged[0].Date != "2025-08-01" || merged[0].Price == nil || *merged[0].Price != 78.2 {
		t.Errorf("row 0 wrong: %+v", merged[0])
	}
	if merged[0].Forecast != nil {
		t.Errorf("row 0 should have no forecast, got %v", *merged[0].Forecast)
	}

	if merged[1].Date != "2025-08-02" {
		t.Fatalf("row 1 date = %s", merged[1].Date)
	}
	if merged[1].Price == nil || *merged[1].Price != 78.9 {
		t.Errorf("row 1 price wrong: %+v", merged[1])
	}
	if merged[1].Forecast == nil || *merged[1].Forecast != 79.5 {
		t.Errorf("row 1 forecast wrong: %+v", merged[1])
	}

	if merged[2].Date != "2025-08-03" {
		t.Fatalf("row 2 date = %s", merged[2].Date)
	}
	if merged[2].Price != nil {
		t.Errorf("forecast-only row should have nil price, got %v", *merged[2].Price)
	}
	if merged[2].Forecast == nil || *merged[2].Forecast != 80.0 {
		t.Errorf("row 2 forecast wrong: %+v", merged[2])
	}
}

func TestMergeSeries_DisjointDatesSortedAscending(t *testing.T) {
	prices := []model.PricePoint{
		{Date: "2025-08-05", Price: 80.1},
		{Date: "2025-08-01", Price: 78.2},
	}
	forecast := []model.ForecastPoint{
		{Date: "2025-08-03", Forecast: 79.5},
		{Date: "2025-08-07", Forecast: 80.9},
	}

	merged := MergeSeries(prices, forecast)
	if len(merged) != 4 {
		t.Fatalf("expected one row per distinct date (4), got %d", len(merged))
	}
	for i := 1; i < len(merged); i++ {
		if merged[i-1].Date >= merged[i].Date {
			t.Errorf("rows not strictly ascending: %s before %s", merged[i-1].Date, merged[i].Date)
		}
	}
}

func TestMergeSeries_CarriesSmoothedPrice(t *testing.T) {
	smooth := 78.5
	prices := []model.PricePoint{{Date: "2025-08-01", Price: 78.2, PriceSmooth: &smooth}}

	merged := MergeSeries(prices, nil)
	if len(merged) != 1 {
		t.Fatalf("expected 1 row, got %d", len(merged))
	}
	if merged[0].PriceSmooth == nil || *merged[0].PriceSmooth != 78.5 {
		t.Errorf("smoothed price not carried: %+v", merged[0])
	}
}

func TestMergeSeries_DuplicateDateLastWriteWins(t *testing.T) {
	prices := []model.PricePoint{
		{Date: "2025-08-01", Price: 78.2},
		{Date: "2025-08-01", Price: 79.0},
	}
	merged := MergeSeries(prices, nil)
	if len(merged) != 1 {
		t.Fatalf("duplicate dates must collapse to one row, got %d", len(merged))
	}
	if *merged[0].Price != 79.0 {
		t.Errorf("expected last write to win, got %v", *merged[0].Price)
	}
}

func TestMergeSeries_EmptyInputs(t *testing.T) {
	if got := MergeSeries(nil, nil); len(got) != 0 {
		t.Errorf("expected empty merge, got %d rows", len(got))
	}
}
