package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"brentwatch/internal/model"
)

// CSV file names expected under the data directory. Prices are required;
// the rest are optional and default to empty collections when missing.
const (
	PricesFile       = "brent_prices.csv"
	ForecastFile     = "forecast.csv"
	EventsFile       = "events.csv"
	ChangePointsFile = "change_points.csv"
)

// LoadDataset reads the CSV seed files from dir. Dates stay as the ISO
// strings found in the files; the server expects them pre-validated.
func LoadDataset(dir string) (*Dataset, error) {
	ds := &Dataset{}

	priceRows, err := readCSV(filepath.Join(dir, PricesFile))
	if err != nil {
		return nil, fmt.Errorf("load prices: %w", err)
	}
	for _, row := range priceRows {
		price, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parse price for %s: %w", row[0], err)
		}
		ds.Prices = append(ds.Prices, model.PricePoint{Date: row[0], Price: price})
	}

	forecastRows, err := readOptionalCSV(filepath.Join(dir, ForecastFile))
	if err != nil {
		return nil, fmt.Errorf("load forecast: %w", err)
	}
	for _, row := range forecastRows {
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parse forecast for %s: %w", row[0], err)
		}
		ds.Forecast = append(ds.Forecast, model.ForecastPoint{Date: row[0], Forecast: v})
	}

	eventRows, err := readOptionalCSV(filepath.Join(dir, EventsFile))
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	for _, row := range eventRows {
		e := model.Event{Date: row[0], EventType: row[1], Title: row[2]}
		if len(row) > 3 {
			e.Description = row[3]
		}
		if len(row) > 4 {
			e.Source = row[4]
		}
		ds.Events = append(ds.Events, e)
	}

	cpRows, err := readOptionalCSV(filepath.Join(dir, ChangePointsFile))
	if err != nil {
		return nil, fmt.Errorf("load change points: %w", err)
	}
	for _, row := range cpRows {
		cp := model.ChangePoint{Date: row[0]}
		if cp.MeanBefore, err = strconv.ParseFloat(row[1], 64); err != nil {
			return nil, fmt.Errorf("parse mean_before for %s: %w", row[0], err)
		}
		if cp.MeanAfter, err = strconv.ParseFloat(row[2], 64); err != nil {
			return nil, fmt.Errorf("parse mean_after for %s: %w", row[0], err)
		}
		if cp.ChangeMagnitudePercent, err = strconv.ParseFloat(row[3], 64); err != nil {
			return nil, fmt.Errorf("parse change_magnitude_percent for %s: %w", row[0], err)
		}
		if len(row) > 4 {
			cp.AssociatedEvents = row[4]
		}
		ds.ChangePoints = append(ds.ChangePoints, cp)
	}

	return ds, nil
}

// readCSV reads all data rows (header skipped) from a CSV file.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

// readOptionalCSV is readCSV, except a missing file is an empty collection.
func readOptionalCSV(path string) ([][]string, error) {
	rows, err := readCSV(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return rows, nil
}
