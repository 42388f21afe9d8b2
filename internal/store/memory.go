package store

import (
	"sort"
	"sync"

	"brentwatch/internal/analysis"
	"brentwatch/internal/model"
)

// MemoryStore serves the dataset from memory. It is the fallback when
// SQLite is not configured, and the seam for handler tests.
type MemoryStore struct {
	mu sync.RWMutex
	ds Dataset
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// Import replaces the held dataset wholesale, sorted by date.
func (m *MemoryStore) Import(ds *Dataset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ds = *ds
	sort.SliceStable(m.ds.Prices, func(i, j int) bool { return m.ds.Prices[i].Date < m.ds.Prices[j].Date })
	sort.SliceStable(m.ds.Forecast, func(i, j int) bool { return m.ds.Forecast[i].Date < m.ds.Forecast[j].Date })
	sort.SliceStable(m.ds.Events, func(i, j int) bool { return m.ds.Events[i].Date < m.ds.Events[j].Date })
	sort.SliceStable(m.ds.ChangePoints, func(i, j int) bool { return m.ds.ChangePoints[i].Date < m.ds.ChangePoints[j].Date })
	return nil
}

func (m *MemoryStore) Prices(start, end string) ([]model.PricePoint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.PricePoint, 0, len(m.ds.Prices))
	for _, p := range m.ds.Prices {
		if inWindow(p.Date, start, end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemoryStore) Forecast(start, end string) ([]model.ForecastPoint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.ForecastPoint, 0, len(m.ds.Forecast))
	for _, f := range m.ds.Forecast {
		if inWindow(f.Date, start, end) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *MemoryStore) Events(start, end, eventType string) ([]model.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	filtered := analysis.FilterEvents(m.ds.Events, analysis.EventFilter{
		Type:  eventType,
		Start: start,
		End:   end,
	})
	out := make([]model.Event, len(filtered))
	copy(out, filtered)
	return out, nil
}

func (m *MemoryStore) ChangePoints() ([]model.ChangePoint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.ChangePoint, len(m.ds.ChangePoints))
	copy(out, m.ds.ChangePoints)
	return out, nil
}

func (m *MemoryStore) Close() error { return nil }
