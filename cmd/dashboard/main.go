package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"brentwatch/internal/client"
	"brentwatch/internal/config"
	"brentwatch/internal/dashboard"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] .env loaded")
	}

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	start := flag.String("start", cfg.Dashboard.Start, "window start date (YYYY-MM-DD)")
	end := flag.String("end", cfg.Dashboard.End, "window end date (YYYY-MM-DD)")
	roll := flag.Int("roll", 0, "smoothing window in days (0 = off)")
	window := flag.Int("window", cfg.Analysis.DefaultEventWindow, "event window in days on each side")
	eventType := flag.String("type", "", "event type facet (empty = all)")
	selected := flag.String("select", "", "date to highlight (YYYY-MM-DD)")
	flag.Parse()

	if *roll < 0 || *window < 0 {
		log.Fatalf("[FATAL] roll and window must be >= 0")
	}

	api := client.NewAPIClient(cfg.Dashboard.BaseURL,
		time.Duration(cfg.Dashboard.TimeoutSeconds)*time.Second, cfg.Proxy)
	d := dashboard.New(api, cfg.Analysis.DefaultLookback)

	st := d.Refresh(context.Background(), dashboard.Params{
		Start:        *start,
		End:          *end,
		Roll:         *roll,
		EventWindow:  *window,
		EventType:    *eventType,
		SelectedDate: *selected,
	})

	fmt.Print(dashboard.Render(st))
}
