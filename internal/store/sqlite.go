package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"brentwatch/internal/model"
)

// SQLiteStore serves the dataset from a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the SQLite database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so API reads stay cheap while a reload is importing.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS prices (
			date  TEXT PRIMARY KEY,
			price REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS forecast (
			date     TEXT PRIMARY KEY,
			forecast REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			date        TEXT NOT NULL,
			event_type  TEXT,
			title       TEXT,
			description TEXT,
			source      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_date ON events(date)`,
		`CREATE TABLE IF NOT EXISTS change_points (
			date                     TEXT PRIMARY KEY,
			mean_before              REAL,
			mean_after               REAL,
			change_magnitude_percent REAL,
			associated_events        TEXT
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// Import replaces all stored rows with the given dataset in one transaction.
func (s *SQLiteStore) Import(ds *Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"prices", "forecast", "events", "change_points"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, p := range ds.Prices {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO prices (date, price) VALUES (?,?)`, p.Date, p.Price); err != nil {
			return fmt.Errorf("insert price %s: %w", p.Date, err)
		}
	}
	for _, f := range ds.Forecast {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO forecast (date, forecast) VALUES (?,?)`, f.Date, f.Forecast); err != nil {
			return fmt.Errorf("insert forecast %s: %w", f.Date, err)
		}
	}
	for _, e := range ds.Events {
		if _, err := tx.Exec(`INSERT INTO events (date, event_type, title, description, source) VALUES (?,?,?,?,?)`,
			e.Date, e.EventType, e.Title, e.Description, e.Source); err != nil {
			return fmt.Errorf("insert event %s: %w", e.Date, err)
		}
	}
	for _, cp := range ds.ChangePoints {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO change_points
			(date, mean_before, mean_after, change_magnitude_percent, associated_events)
			VALUES (?,?,?,?,?)`,
			cp.Date, cp.MeanBefore, cp.MeanAfter, cp.ChangeMagnitudePercent, cp.AssociatedEvents); err != nil {
			return fmt.Errorf("insert change point %s: %w", cp.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	log.Printf("[INFO] dataset imported: %d prices, %d forecast, %d events, %d change points",
		len(ds.Prices), len(ds.Forecast), len(ds.Events), len(ds.ChangePoints))
	return nil
}

func (s *SQLiteStore) Prices(start, end string) ([]model.PricePoint, error) {
	query, args := windowQuery(`SELECT date, price FROM prices`, start, end)
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query prices: %w", err)
	}
	defer rows.Close()

	var out []model.PricePoint
	for rows.Next() {
		var p model.PricePoint
		if err := rows.Scan(&p.Date, &p.Price); err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Forecast(start, end string) ([]model.ForecastPoint, error) {
	query, args := windowQuery(`SELECT date, forecast FROM forecast`, start, end)
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query forecast: %w", err)
	}
	defer rows.Close()

	var out []model.ForecastPoint
	for rows.Next() {
		var f model.ForecastPoint
		if err := rows.Scan(&f.Date, &f.Forecast); err != nil {
			return nil, fmt.Errorf("scan forecast: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Events(start, end, eventType string) ([]model.Event, error) {
	query := `SELECT date, event_type, title, description, source FROM events`
	var conds []string
	var args []any
	if start != "" {
		conds = append(conds, "date >= ?")
		args = append(args, start)
	}
	if end != "" {
		conds = append(conds, "date <= ?")
		args = append(args, end)
	}
	if eventType != "" {
		conds = append(conds, "event_type = ?")
		args = append(args, eventType)
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY date, id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.Date, &e.EventType, &e.Title, &e.Description, &e.Source); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) ChangePoints() ([]model.ChangePoint, error) {
	rows, err := s.db.Query(`SELECT date, mean_before, mean_after, change_magnitude_percent, associated_events
		FROM change_points ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("query change points: %w", err)
	}
	defer rows.Close()

	var out []model.ChangePoint
	for rows.Next() {
		var cp model.ChangePoint
		if err := rows.Scan(&cp.Date, &cp.MeanBefore, &cp.MeanAfter, &cp.ChangeMagnitudePercent, &cp.AssociatedEvents); err != nil {
			return nil, fmt.Errorf("scan change point: %w", err)
		}
		out = append(out, cp)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}

// windowQuery appends an optional inclusive date window and ordering to a
// single-table SELECT keyed by a date column.
func windowQuery(base, start, end string) (string, []any) {
	var args []any
	switch {
	case start != "" && end != "":
		base += " WHERE date >= ? AND date <= ?"
		args = append(args, start, end)
	case start != "":
		base += " WHERE date >= ?"
		args = append(args, start)
	case end != "":
		base += " WHERE date <= ?"
		args = append(args, end)
	}
	return base + " ORDER BY date", args
}
