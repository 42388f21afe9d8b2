package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"brentwatch/internal/analysis"
	"brentwatch/internal/config"
	"brentwatch/internal/scheduler"
	"brentwatch/internal/server"
	"brentwatch/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] brentwatch server starting...")

	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] .env loaded")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init store
	var st store.Store
	if cfg.Data.SQLitePath != "" {
		ss, err := store.NewSQLiteStore(cfg.Data.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, serving from memory: %v", err)
			st = store.NewMemoryStore()
		} else {
			st = ss
		}
	} else {
		st = store.NewMemoryStore()
	}
	defer st.Close()

	// Initial dataset import
	if err := reload(cfg, st); err != nil {
		log.Fatalf("[FATAL] load dataset: %v", err)
	}

	// Scheduled reloads
	sched := scheduler.NewScheduler(func() error { return reload(cfg, st) })
	if err := sched.Register(cfg.Data.ReloadCron); err != nil {
		log.Fatalf("[FATAL] register reload task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// HTTP server
	srv := server.New(cfg, st)
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
	}()

	log.Println("[INFO] brentwatch server is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] shutdown: %v", err)
	}
	log.Println("[INFO] brentwatch server stopped")
}

// reload reads the CSV seed, fills in detected change points when the seed
// carries none, and swaps the dataset into the store.
func reload(cfg *config.Config, st store.Store) error {
	ds, err := store.LoadDataset(cfg.Data.Dir)
	if err != nil {
		return err
	}
	if len(ds.ChangePoints) == 0 {
		ds.ChangePoints = analysis.DetectChangePoints(ds.Prices, ds.Events,
			cfg.Analysis.ChangePointSpan, cfg.Analysis.ChangePointThreshold)
		log.Printf("[INFO] detected %d change points", len(ds.ChangePoints))
	}
	return st.Import(ds)
}
