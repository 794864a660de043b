package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t,
		[]string{"admetlab3", "admetlab2", "pubchem", "local", "demo"},
		cfg.Sources.Chain)

	// Boolean defaults must survive the env-only path: all remote sources on,
	// rate limiting on, redis off.
	assert.True(t, cfg.Sources.ADMETLab3.Enabled)
	assert.True(t, cfg.Sources.ADMETLab2.Enabled)
	assert.True(t, cfg.Sources.PubChem.Enabled)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.False(t, cfg.Redis.Enabled)

	assert.Equal(t, DefaultADMETLab3URL, cfg.Sources.ADMETLab3.URL)
	assert.Equal(t, 20*time.Second, cfg.Sources.ADMETLab3.Timeout)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("MOLSCREEN_SERVER_PORT", "9999")
	t.Setenv("MOLSCREEN_LOG_LEVEL", "debug")
	t.Setenv("MOLSCREEN_REDIS_ENABLED", "true")
	t.Setenv("MOLSCREEN_REDIS_ADDR", "redis:6379")
	t.Setenv("MOLSCREEN_SOURCES_ADMETLAB3_ENABLED", "false")
	t.Setenv("MOLSCREEN_SOURCES_ADMETLAB2_TIMEOUT", "5s")
	t.Setenv("MOLSCREEN_RATE_LIMIT_REQUESTS_PER_MINUTE", "120")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.False(t, cfg.Sources.ADMETLab3.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Sources.ADMETLab2.Timeout)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMinute)

	// Untouched settings keep their defaults.
	assert.True(t, cfg.Sources.ADMETLab2.Enabled)
	assert.True(t, cfg.Sources.PubChem.Enabled)
}

func TestLoadFromEnv_InvalidValueRejected(t *testing.T) {
	t.Setenv("MOLSCREEN_LOG_LEVEL", "verbose")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "server:\n  port: 9001\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("MOLSCREEN_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Server.Port)
	// Environment beats the file.
	assert.Equal(t, "error", cfg.Log.Level)
	// Keys absent from both fall back to defaults.
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.True(t, cfg.Sources.PubChem.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
