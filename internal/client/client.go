package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"brentwatch/internal/model"
)

// APIClient implements Fetcher against the dashboard HTTP API.
type APIClient struct {
	BaseURL string
	Client  *http.Client
}

// NewAPIClient creates a new client with optional proxy support.
func NewAPIClient(baseURL string, timeout time.Duration, proxyURL string) *APIClient {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

func (c *APIClient) Name() string { return "api" }

func (c *APIClient) FetchPrices(ctx context.Context, start, end string, roll int) ([]model.PricePoint, error) {
	q := dateWindow(start, end)
	if roll > 0 {
		q.Set("roll", strconv.Itoa(roll))
	}
	var prices []model.PricePoint
	if err := c.getJSON(ctx, "/api/prices", q, &prices); err != nil {
		return nil, fmt.Errorf("fetch prices: %w", err)
	}
	return prices, nil
}

func (c *APIClient) FetchForecast(ctx context.Context, start, end string) ([]model.ForecastPoint, error) {
	var forecast []model.ForecastPoint
	if err := c.getJSON(ctx, "/api/forecast", dateWindow(start, end), &forecast); err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}
	return forecast, nil
}

func (c *APIClient) FetchEvents(ctx context.Context, start, end, eventType string) ([]model.Event, error) {
	q := dateWindow(start, end)
	if eventType != "" {
		q.Set("type", eventType)
	}
	var events []model.Event
	if err := c.getJSON(ctx, "/api/events", q, &events); err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	return events, nil
}

func (c *APIClient) FetchChangePoints(ctx context.Context) ([]model.ChangePoint, error) {
	var cps []model.ChangePoint
	if err := c.getJSON(ctx, "/api/change_points", url.Values{}, &cps); err != nil {
		return nil, fmt.Errorf("fetch change points: %w", err)
	}
	return cps, nil
}

func (c *APIClient) FetchMetrics(ctx context.Context, eventWindow int) (*model.MetricsSummary, error) {
	q := url.Values{}
	q.Set("event_window", strconv.Itoa(eventWindow))
	var m model.MetricsSummary
	if err := c.getJSON(ctx, "/api/metrics", q, &m); err != nil {
		return nil, fmt.Errorf("fetch metrics: %w", err)
	}
	return &m, nil
}

func (c *APIClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func dateWindow(start, end string) url.Values {
	q := url.Values{}
	if start != "" {
		q.Set("start", start)
	}
	if end != "" {
		q.Set("end", end)
	}
	return q
}
