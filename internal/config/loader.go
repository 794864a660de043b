package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix used by all platform settings.
const envPrefix = "MOLSCREEN"

// newViper builds a pre-configured Viper instance with the platform's
// standard settings: YAML file type, MOLSCREEN_ env prefix, automatic env
// binding, and a key replacer that maps "." → "_" so that nested keys like
// "sources.cache_ttl" resolve to "MOLSCREEN_SOURCES_CACHE_TTL".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	return v
}

// setDefaults registers every configuration key with its platform default.
// Registration matters beyond defaulting: AutomaticEnv only resolves env
// variables for keys viper already knows, so every key must be seeded here
// for MOLSCREEN_* overrides to reach Unmarshal.
func setDefaults(v *viper.Viper) {
	def := NewDefaultConfig()

	v.SetDefault("server.port", def.Server.Port)
	v.SetDefault("server.mode", def.Server.Mode)
	v.SetDefault("server.read_timeout", def.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", def.Server.WriteTimeout)
	v.SetDefault("server.max_body_size", def.Server.MaxBodySize)
	v.SetDefault("server.shutdown_timeout", def.Server.ShutdownTimeout)

	v.SetDefault("redis.enabled", def.Redis.Enabled)
	v.SetDefault("redis.addr", def.Redis.Addr)
	v.SetDefault("redis.password", def.Redis.Password)
	v.SetDefault("redis.db", def.Redis.DB)
	v.SetDefault("redis.pool_size", def.Redis.PoolSize)
	v.SetDefault("redis.min_idle_conns", def.Redis.MinIdleConns)
	v.SetDefault("redis.dial_timeout", def.Redis.DialTimeout)
	v.SetDefault("redis.read_timeout", def.Redis.ReadTimeout)
	v.SetDefault("redis.write_timeout", def.Redis.WriteTimeout)
	v.SetDefault("redis.default_ttl", def.Redis.DefaultTTL)
	v.SetDefault("redis.key_prefix", def.Redis.KeyPrefix)

	v.SetDefault("sources.chain", def.Sources.Chain)
	v.SetDefault("sources.admetlab3.enabled", def.Sources.ADMETLab3.Enabled)
	v.SetDefault("sources.admetlab3.url", def.Sources.ADMETLab3.URL)
	v.SetDefault("sources.admetlab3.timeout", def.Sources.ADMETLab3.Timeout)
	v.SetDefault("sources.admetlab2.enabled", def.Sources.ADMETLab2.Enabled)
	v.SetDefault("sources.admetlab2.url", def.Sources.ADMETLab2.URL)
	v.SetDefault("sources.admetlab2.timeout", def.Sources.ADMETLab2.Timeout)
	v.SetDefault("sources.pubchem.enabled", def.Sources.PubChem.Enabled)
	v.SetDefault("sources.pubchem.url", def.Sources.PubChem.URL)
	v.SetDefault("sources.pubchem.timeout", def.Sources.PubChem.Timeout)
	v.SetDefault("sources.cache_ttl", def.Sources.CacheTTL)

	v.SetDefault("rate_limit.enabled", def.RateLimit.Enabled)
	v.SetDefault("rate_limit.requests_per_minute", def.RateLimit.RequestsPerMinute)
	v.SetDefault("rate_limit.burst", def.RateLimit.Burst)

	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.output", def.Log.Output)
}

// Load reads the YAML file at configPath, merges any MOLSCREEN_* environment
// variable overrides, applies platform defaults for unset fields, and
// validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config entirely from MOLSCREEN_* environment
// variables, with no config file required.  This is the preferred loading
// strategy for containerised (12-factor) deployments.
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath for changes and invokes onChange with the newly
// parsed Config whenever the file is modified on disk.  It is intended for
// hot-reloading non-critical settings such as log level and rate-limit
// thresholds; callers are responsible for applying only the safe subset of
// changes at runtime.
//
// Watch is non-blocking; it starts a background goroutine managed by viper.
// If the changed file fails to parse or validate, onChange is not called.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)

	// Initial read — errors are ignored here; callers should call Load first.
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			// The edited file produced an invalid config; skip the callback to
			// prevent the application from entering a broken state.
			return
		}
		onChange(cfg)
	})
}
