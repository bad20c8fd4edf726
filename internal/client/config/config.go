package config

import (
	"time"

	"github.com/dmitrijs2005/sitrack/internal/client/export"
)

// Config holds runtime settings for the SITRACK terminal client.
//
// Units: RequestTimeout bounds a single backend call; zero disables the
// transport timeout.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
	StorageSecret  string
	LogLevel       string
	ExportDir      string
	S3             export.S3Config
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.DatabasePath = "sitrack.db"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
	c.ExportDir = "exports"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
