package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`
	Data struct {
		Dir        string `yaml:"dir"`
		SQLitePath string `yaml:"sqlite_path"`
		ReloadCron string `yaml:"reload_cron"`
	} `yaml:"data"`
	Analysis struct {
		DefaultEventWindow   int     `yaml:"default_event_window"`
		DefaultLookback      int     `yaml:"default_lookback"`
		ChangePointSpan      int     `yaml:"change_point_span"`
		ChangePointThreshold float64 `yaml:"change_point_threshold"`
	} `yaml:"analysis"`
	Dashboard struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		Start          string `yaml:"start"`
		End            string `yaml:"end"`
	} `yaml:"dashboard"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("BRENT_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("BRENT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Data.SQLitePath = v
	}
	if v := os.Getenv("RELOAD_CRON"); v != "" {
		cfg.Data.ReloadCron = v
	}
	if v := os.Getenv("BRENT_API_BASE_URL"); v != "" {
		cfg.Dashboard.BaseURL = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data"
	}
	if cfg.Data.SQLitePath == "" {
		cfg.Data.SQLitePath = "data/brentwatch.db"
	}
	if cfg.Data.ReloadCron == "" {
		cfg.Data.ReloadCron = "0 0 6 * * *"
	}
	if cfg.Analysis.DefaultEventWindow == 0 {
		cfg.Analysis.DefaultEventWindow = 3
	}
	if cfg.Analysis.DefaultLookback == 0 {
		cfg.Analysis.DefaultLookback = 30
	}
	if cfg.Analysis.ChangePointSpan == 0 {
		cfg.Analysis.ChangePointSpan = 5
	}
	if cfg.Analysis.ChangePointThreshold == 0 {
		cfg.Analysis.ChangePointThreshold = 5.0
	}
	if cfg.Dashboard.BaseURL == "" {
		cfg.Dashboard.BaseURL = fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port)
	}
	if cfg.Dashboard.TimeoutSeconds == 0 {
		cfg.Dashboard.TimeoutSeconds = 30
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir is required")
	}
	if c.Analysis.DefaultEventWindow < 0 {
		return fmt.Errorf("analysis.default_event_window must be >= 0")
	}
	if c.Analysis.ChangePointSpan <= 0 {
		return fmt.Errorf("analysis.change_point_span must be positive")
	}
	if c.Analysis.ChangePointThreshold <= 0 {
		return fmt.Errorf("analysis.change_point_threshold must be positive")
	}
	return nil
}
