package client

import (
	"context"

	"brentwatch/internal/model"
)

// Fetcher defines the interface for fetching dashboard data.
type Fetcher interface {
	FetchPrices(ctx context.Context, start, end string, roll int) ([]model.PricePoint, error)
	FetchForecast(ctx context.Context, start, end string) ([]model.ForecastPoint, error)
	FetchEvents(ctx context.Context, start, end, eventType string) ([]model.Event, error)
	FetchChangePoints(ctx context.Context) ([]model.ChangePoint, error)
	FetchMetrics(ctx context.Context, eventWindow int) (*model.MetricsSummary, error)
	Name() string
}
