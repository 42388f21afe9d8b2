package dashboard

import (
	"context"
	"log"
	"sync"
	"time"

	"brentwatch/internal/analysis"
	"brentwatch/internal/client"
)

// Dashboard orchestrates fetching and holds the reducer defaults.
type Dashboard struct {
	Fetcher  client.Fetcher
	Lookback int
}

// New creates a Dashboard on top of the given fetcher. lookback bounds the
// locally computed volatility estimate when the metrics endpoint is down.
func New(fetcher client.Fetcher, lookback int) *Dashboard {
	return &Dashboard{Fetcher: fetcher, Lookback: lookback}
}

// Refresh fetches everything with the given parameters and returns a fresh
// State. Prices, forecast, and events are fetched concurrently and awaited
// jointly; if any of the three fails, all of them fall back together to the
// built-in sample. Metrics and change points are fetched independently: a
// metrics failure is healed by computing the summary locally with the
// reducer, and a change point failure just leaves that annotation layer
// empty. Refresh never returns an error; every failure degrades to a
// populated state.
func (d *Dashboard) Refresh(ctx context.Context, p Params) State {
	st := State{Mode: ModeLoaded, Params: p, RefreshedAt: time.Now()}

	var wg sync.WaitGroup
	var pricesErr, forecastErr, eventsErr error
	wg.Add(3)
	go func() {
		defer wg.Done()
		st.Prices, pricesErr = d.Fetcher.FetchPrices(ctx, p.Start, p.End, p.Roll)
	}()
	go func() {
		defer wg.Done()
		st.Forecast, forecastErr = d.Fetcher.FetchForecast(ctx, p.Start, p.End)
	}()
	go func() {
		defer wg.Done()
		// events come back unfiltered; the type facet is applied locally in
		// VisibleEvents so the type selector still sees every type.
		st.Events, eventsErr = d.Fetcher.FetchEvents(ctx, p.Start, p.End, "")
	}()
	wg.Wait()

	for _, err := range []error{pricesErr, forecastErr, eventsErr} {
		if err != nil {
			log.Printf("[WARN] API unavailable, using fallback sample: %v", err)
			return d.fallback(p)
		}
	}

	if m, err := d.Fetcher.FetchMetrics(ctx, p.EventWindow); err != nil {
		log.Printf("[WARN] metrics fetch failed, computing locally: %v", err)
		local := analysis.Reduce(st.Prices, st.Events, p.EventWindow, d.Lookback)
		st.Metrics = &local
	} else {
		st.Metrics = m
	}

	if cps, err := d.Fetcher.FetchChangePoints(ctx); err != nil {
		log.Printf("[WARN] change point fetch failed: %v", err)
	} else {
		st.ChangePoints = cps
	}

	return st
}

// fallback substitutes the fixed built-in sample for every collection and
// computes the metrics locally so the KPI tiles agree with the sample.
func (d *Dashboard) fallback(p Params) State {
	st := State{
		Mode:        ModeFallback,
		Params:      p,
		RefreshedAt: time.Now(),
		Prices:      client.FallbackPrices(),
		Forecast:    client.FallbackForecast(),
		Events:      client.FallbackEvents(),
	}
	m := analysis.Reduce(st.Prices, st.Events, p.EventWindow, d.Lookback)
	st.Metrics = &m
	return st
}
