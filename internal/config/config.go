// Package config defines all configuration structures for the MolScreen
// platform.  No I/O or parsing logic lives here — only plain data types and
// validation.
package config

import (
	"fmt"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RedisConfig holds Redis connection parameters for the prediction cache.
type RedisConfig struct {
	// Enabled toggles the cache; when false the source chain queries remote
	// endpoints on every request.
	Enabled      bool          `mapstructure:"enabled"`
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	DefaultTTL   time.Duration `mapstructure:"default_ttl"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// SourceEndpointConfig holds the parameters of one remote prediction endpoint.
type SourceEndpointConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SourcesConfig holds the prediction data-source chain settings.
type SourcesConfig struct {
	// Chain is the ordered list of sources consulted per request:
	// "admetlab3", "admetlab2", "pubchem", "local", "demo".
	Chain []string `mapstructure:"chain"`

	ADMETLab3 SourceEndpointConfig `mapstructure:"admetlab3"`
	ADMETLab2 SourceEndpointConfig `mapstructure:"admetlab2"`
	PubChem   SourceEndpointConfig `mapstructure:"pubchem"`

	// CacheTTL is how long successful remote lookups stay in the cache.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// RateLimitConfig holds HTTP rate-limiting parameters.
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
	Burst             int  `mapstructure:"burst"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "json" | "console"
	Output string `mapstructure:"output"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure for the platform.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Sources   SourcesConfig   `mapstructure:"sources"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

// knownSources is the set of valid chain entries.
var knownSources = map[string]bool{
	"admetlab3": true,
	"admetlab2": true,
	"pubchem":   true,
	"local":     true,
	"demo":      true,
}

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	// Server
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	// Redis (only when the cache is on)
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required when redis.enabled is true")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("config: redis.db must be ≥ 0, got %d", c.Redis.DB)
	}

	// Sources
	if len(c.Sources.Chain) == 0 {
		return fmt.Errorf("config: sources.chain must name at least one data source")
	}
	for _, s := range c.Sources.Chain {
		if !knownSources[s] {
			return fmt.Errorf("config: sources.chain entry %q is unknown; expected admetlab3|admetlab2|pubchem|local|demo", s)
		}
	}
	if c.Sources.ADMETLab3.Enabled && c.Sources.ADMETLab3.URL == "" {
		return fmt.Errorf("config: sources.admetlab3.url is required when enabled")
	}
	if c.Sources.ADMETLab2.Enabled && c.Sources.ADMETLab2.URL == "" {
		return fmt.Errorf("config: sources.admetlab2.url is required when enabled")
	}
	if c.Sources.PubChem.Enabled && c.Sources.PubChem.URL == "" {
		return fmt.Errorf("config: sources.pubchem.url is required when enabled")
	}

	// Rate limiting
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMinute < 1 {
		return fmt.Errorf("config: rate_limit.requests_per_minute must be ≥ 1, got %d", c.RateLimit.RequestsPerMinute)
	}

	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}
