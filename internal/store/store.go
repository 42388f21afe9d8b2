package store

import "brentwatch/internal/model"

// Dataset bundles everything the API serves, as loaded from disk.
type Dataset struct {
	Prices       []model.PricePoint
	Forecast     []model.ForecastPoint
	Events       []model.Event
	ChangePoints []model.ChangePoint
}

// Store serves date-scoped reads for the API handlers. Empty start/end
// leave that side of the window open; an empty eventType passes every type.
// Implementations return rows ordered ascending by date.
type Store interface {
	Prices(start, end string) ([]model.PricePoint, error)
	Forecast(start, end string) ([]model.ForecastPoint, error)
	Events(start, end, eventType string) ([]model.Event, error)
	ChangePoints() ([]model.ChangePoint, error)
	Import(ds *Dataset) error
	Close() error
}

func inWindow(date, start, end string) bool {
	if start != "" && date < start {
		return false
	}
	if end != "" && date > end {
		return false
	}
	return true
}
