package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/sitrack/internal/client/export"
	"github.com/dmitrijs2005/sitrack/internal/flagx"
	"github.com/dmitrijs2005/sitrack/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Pointer fields
// distinguish "absent" from "empty" so a partial file only overrides what
// it names.
type JsonConfig struct {
	APIBaseURL     *string          `json:"api_base_url"`
	DatabasePath   *string          `json:"database_path"`
	RequestTimeout *timex.Duration  `json:"request_timeout"`
	StorageSecret  *string          `json:"storage_secret"`
	LogLevel       *string          `json:"log_level"`
	ExportDir      *string          `json:"export_dir"`
	S3             *export.S3Config `json:"s3"`
}

// parseJson overlays Config with values loaded from a JSON file selected by
// -c/-config or the SITRACK_CONFIG environment variable. Read or decode
// errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:], os.Getenv)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	jc.apply(cfg)
}

func (jc JsonConfig) apply(cfg *Config) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&cfg.APIBaseURL, jc.APIBaseURL)
	set(&cfg.DatabasePath, jc.DatabasePath)
	set(&cfg.StorageSecret, jc.StorageSecret)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.ExportDir, jc.ExportDir)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.S3 != nil {
		cfg.S3 = *jc.S3
	}
}
