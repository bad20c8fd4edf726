package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv("SITRACK_CONFIG", "")

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_base_url":    "https://sitrack.example:9000",
		"request_timeout": "10s",
		"s3": map[string]any{
			"bucket":     "reports",
			"region":     "ap-southeast-3",
			"access_key": "ak",
			"secret_key": "sk",
		},
	})
	pathEnv := writeTempJSON(t, dir, "env.json", map[string]any{
		"database_path": "/var/lib/sitrack.db",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{LogLevel: "info"}
		parseJson(cfg)

		assert.Equal(t, "https://sitrack.example:9000", cfg.APIBaseURL)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "info", cfg.LogLevel, "absent keys keep earlier values")
		assert.True(t, cfg.S3.Enabled())
		assert.Equal(t, "ap-southeast-3", cfg.S3.Region)
	})

	t.Run("falls back to SITRACK_CONFIG", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("SITRACK_CONFIG", pathEnv)

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "/var/lib/sitrack.db", cfg.DatabasePath)
	})

	t.Run("no config source leaves values", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{APIBaseURL: "http://defaults:1234", RequestTimeout: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "http://defaults:1234", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
