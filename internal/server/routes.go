package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"brentwatch/internal/analysis"
	"brentwatch/internal/model"
)

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/health", get(s.handleHealth))
	mux.Handle("/api/prices", get(s.handlePrices))
	mux.Handle("/api/forecast", get(s.handleForecast))
	mux.Handle("/api/events", get(s.handleEvents))
	mux.Handle("/api/change_points", get(s.handleChangePoints))
	mux.Handle("/api/metrics", get(s.handleMetrics))
	return mux
}

// get rejects everything but GET before invoking the handler.
func get(h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	roll, ok := intParam(w, r, "roll", 0)
	if !ok {
		return
	}
	if roll < 0 {
		http.Error(w, "roll must be >= 0", http.StatusBadRequest)
		return
	}
	prices, err := s.store.Prices(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		serverError(w, "load price data", err)
		return
	}
	prices = analysis.Smooth(prices, roll)
	if prices == nil {
		prices = []model.PricePoint{}
	}
	writeJSON(w, prices)
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	forecast, err := s.store.Forecast(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		serverError(w, "load forecast data", err)
		return
	}
	if forecast == nil {
		forecast = []model.ForecastPoint{}
	}
	writeJSON(w, forecast)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	events, err := s.store.Events(q.Get("start"), q.Get("end"), q.Get("type"))
	if err != nil {
		serverError(w, "load event data", err)
		return
	}
	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, events)
}

func (s *Server) handleChangePoints(w http.ResponseWriter, r *http.Request) {
	cps, err := s.store.ChangePoints()
	if err != nil {
		serverError(w, "load change point data", err)
		return
	}
	if cps == nil {
		cps = []model.ChangePoint{}
	}
	writeJSON(w, cps)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	window, ok := intParam(w, r, "event_window", s.cfg.Analysis.DefaultEventWindow)
	if !ok {
		return
	}
	lookback, ok := intParam(w, r, "lookback", s.cfg.Analysis.DefaultLookback)
	if !ok {
		return
	}
	if window < 0 {
		http.Error(w, "event_window must be >= 0", http.StatusBadRequest)
		return
	}

	prices, err := s.store.Prices("", "")
	if err != nil {
		serverError(w, "load price data", err)
		return
	}
	events, err := s.store.Events("", "", "")
	if err != nil {
		serverError(w, "load event data", err)
		return
	}
	writeJSON(w, analysis.Reduce(prices, events, window, lookback))
}

// intParam parses an optional integer query parameter, writing a 400 and
// returning ok=false when the value is present but malformed.
func intParam(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, name+" must be an integer", http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func serverError(w http.ResponseWriter, what string, err error) {
	log.Printf("[ERROR] %s: %v", what, err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "failed to " + what})
}
