package server

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"brentwatch/internal/config"
	"brentwatch/internal/model"
	"brentwatch/internal/store"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	st := store.NewMemoryStore()
	err := st.Import(&store.Dataset{
		Prices: []model.PricePoint{
			{Date: "2025-08-01", Price: 78.2},
			{Date: "2025-08-02", Price: 78.9},
			{Date: "2025-08-03", Price: 79.4},
			{Date: "2025-08-04", Price: 79.0},
		},
		Forecast: []model.ForecastPoint{
			{Date: "2025-08-05", Forecast: 80.7},
		},
		Events: []model.Event{
			{Date: "2025-08-03", EventType: "geopolitical", Title: "Regional tension rises"},
			{Date: "2025-08-04", EventType: "policy_sanction", Title: "OPEC+ surprise comment"},
		},
		ChangePoints: []model.ChangePoint{
			{Date: "2025-08-03", MeanBefore: 78.5, MeanAfter: 79.2, ChangeMagnitudePercent: 0.89},
		},
	})
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	srv := New(cfg, st)
	ts := httptest.NewServer(srv.server.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if v != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	ts := testServer(t)
	var body map[string]string
	if status := getJSON(t, ts.URL+"/api/health", &body); status != http.StatusOK {
		t.Fatalf("status %d", status)
	}
	if body["status"] != "ok" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestPrices_WindowAndRoll(t *testing.T) {
	ts := testServer(t)

	var all []model.PricePoint
	if status := getJSON(t, ts.URL+"/api/prices", &all); status != http.StatusOK {
		t.Fatalf("status %d", status)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 prices, got %d", len(all))
	}
	if all[0].PriceSmooth != nil {
		t.Error("price_smooth must be absent without roll")
	}

	var windowed []model.PricePoint
	getJSON(t, ts.URL+"/api/prices?start=2025-08-02&end=2025-08-03", &windowed)
	if len(windowed) != 2 {
		t.Errorf("expected 2 prices in window, got %d", len(windowed))
	}

	var smoothed []model.PricePoint
	getJSON(t, ts.URL+"/api/prices?roll=2", &smoothed)
	if smoothed[1].PriceSmooth == nil {
		t.Fatal("expected price_smooth with roll=2")
	}
	if want := (78.2 + 78.9) / 2; math.Abs(*smoothed[1].PriceSmooth-want) > 1e-9 {
		t.Errorf("expected smooth %.3f, got %.15f", want, *smoothed[1].PriceSmooth)
	}

	if status := getJSON(t, ts.URL+"/api/prices?roll=abc", nil); status != http.StatusBadRequest {
		t.Errorf("malformed roll should 400, got %d", status)
	}
	if status := getJSON(t, ts.URL+"/api/prices?roll=-1", nil); status != http.StatusBadRequest {
		t.Errorf("negative roll should 400, got %d", status)
	}
}

func TestForecast(t *testing.T) {
	ts := testServer(t)
	var forecast []model.ForecastPoint
	getJSON(t, ts.URL+"/api/forecast?start=2025-08-01&end=2025-08-31", &forecast)
	if len(forecast) != 1 || forecast[0].Forecast != 80.7 {
		t.Errorf("forecast wrong: %+v", forecast)
	}
}

func TestEvents_TypeFacet(t *testing.T) {
	ts := testServer(t)
	var events []model.Event
	getJSON(t, ts.URL+"/api/events?type=geopolitical", &events)
	if len(events) != 1 || events[0].Title != "Regional tension rises" {
		t.Errorf("type facet wrong: %+v", events)
	}
}

func TestChangePoints(t *testing.T) {
	ts := testServer(t)
	var cps []model.ChangePoint
	getJSON(t, ts.URL+"/api/change_points", &cps)
	if len(cps) != 1 || cps[0].AssociatedEvents != "" {
		t.Errorf("change points wrong: %+v", cps)
	}
}

func TestMetrics(t *testing.T) {
	ts := testServer(t)
	var m model.MetricsSummary
	if status := getJSON(t, ts.URL+"/api/metrics?event_window=1", &m); status != http.StatusOK {
		t.Fatalf("status %d", status)
	}
	if m.Counts.Prices != 4 || m.Counts.Events != 2 {
		t.Errorf("counts wrong: %+v", m.Counts)
	}
	if len(m.EventImpacts) != 2 {
		t.Fatalf("expected 2 impacts, got %d", len(m.EventImpacts))
	}
	if m.EventImpacts[0].AvgWindowPrice == nil {
		t.Error("expected avg_window_price for covered event")
	}
	if m.AnnualizedVolatility <= 0 {
		t.Errorf("expected positive volatility, got %f", m.AnnualizedVolatility)
	}

	if status := getJSON(t, ts.URL+"/api/metrics?event_window=-1", nil); status != http.StatusBadRequest {
		t.Errorf("negative event_window should 400, got %d", status)
	}
}

func TestMethodGuard(t *testing.T) {
	ts := testServer(t)
	resp, err := http.Post(ts.URL+"/api/prices", "application/json", nil)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", resp.StatusCode)
	}
}
