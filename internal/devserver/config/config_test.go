package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapEnv map[string]string

func (m mapEnv) Getenv(key string) string { return m[key] }

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadConfigFromEnv(mapEnv{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 8*time.Hour, cfg.TokenExpiry)
	assert.Equal(t, "release", cfg.GinMode)
	assert.NotEmpty(t, cfg.Secret)
	assert.True(t, cfg.SeedUsers)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	cfg, err := LoadConfigFromEnv(mapEnv{
		"PORT":                 "9090",
		"SITRACK_SECRET":       "s3cret",
		"TOKEN_EXPIRY_SECONDS": "60",
		"GIN_MODE":             "debug",
		"LOG_LEVEL":            "debug",
		"SITRACK_SEED_USERS":   "false",
	})
	require.NoError(t, err)

	assert.Equal(t, Config{
		Port: 9090, Secret: "s3cret", TokenExpiry: time.Minute,
		GinMode: "debug", LogLevel: "debug", SeedUsers: false,
	}, cfg)
}

func TestLoadConfigFromEnv_Invalid(t *testing.T) {
	for name, env := range map[string]mapEnv{
		"port not a number": {"PORT": "http"},
		"port out of range": {"PORT": "70000"},
		"zero expiry":       {"TOKEN_EXPIRY_SECONDS": "0"},
		"bad seed flag":     {"SITRACK_SEED_USERS": "maybe"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfigFromEnv(env)
			assert.Error(t, err)
		})
	}
}
