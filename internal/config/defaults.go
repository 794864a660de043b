package config

import "time"

// Version is the platform version reported by the CLI and the health
// endpoint.  Overridden at build time via -ldflags.
var Version = "0.3.0"

// Default endpoint URLs for the remote prediction services.  The ADMETlab
// URLs point at the public instances; deployments behind a proxy override
// them in configuration.
const (
	DefaultADMETLab3URL = "https://admetlab3.scbdd.com/api/predict"
	DefaultADMETLab2URL = "https://admetmesh.scbdd.com/api/predict"
	DefaultPubChemURL   = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
)

// NewDefaultConfig returns a Config populated with platform defaults.
// Every field set here can be overridden by the YAML file or a MOLSCREEN_*
// environment variable.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Mode:            "release",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			MaxBodySize:     1 << 20, // 1 MiB; SMILES payloads are tiny
			ShutdownTimeout: 30 * time.Second,
		},
		Redis: RedisConfig{
			Enabled:      false,
			Addr:         "localhost:6379",
			DB:           0,
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			DefaultTTL:   15 * time.Minute,
			KeyPrefix:    "molscreen:",
		},
		Sources: SourcesConfig{
			Chain: []string{"admetlab3", "admetlab2", "pubchem", "local", "demo"},
			ADMETLab3: SourceEndpointConfig{
				Enabled: true,
				URL:     DefaultADMETLab3URL,
				Timeout: 20 * time.Second,
			},
			ADMETLab2: SourceEndpointConfig{
				Enabled: true,
				URL:     DefaultADMETLab2URL,
				Timeout: 20 * time.Second,
			},
			PubChem: SourceEndpointConfig{
				Enabled: true,
				URL:     DefaultPubChemURL,
				Timeout: 15 * time.Second,
			},
			CacheTTL: 24 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 60,
			Burst:             10,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// ApplyDefaults fills any zero-valued field of cfg with the platform default.
// Boolean toggles are left untouched: an explicit false is indistinguishable
// from unset, so their defaults live in NewDefaultConfig only.
func ApplyDefaults(cfg *Config) {
	def := NewDefaultConfig()

	if cfg.Server.Port == 0 {
		cfg.Server.Port = def.Server.Port
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = def.Server.Mode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = def.Server.ReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = def.Server.WriteTimeout
	}
	if cfg.Server.MaxBodySize == 0 {
		cfg.Server.MaxBodySize = def.Server.MaxBodySize
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}

	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = def.Redis.Addr
	}
	if cfg.Redis.PoolSize == 0 {
		cfg.Redis.PoolSize = def.Redis.PoolSize
	}
	if cfg.Redis.MinIdleConns == 0 {
		cfg.Redis.MinIdleConns = def.Redis.MinIdleConns
	}
	if cfg.Redis.DialTimeout == 0 {
		cfg.Redis.DialTimeout = def.Redis.DialTimeout
	}
	if cfg.Redis.ReadTimeout == 0 {
		cfg.Redis.ReadTimeout = def.Redis.ReadTimeout
	}
	if cfg.Redis.WriteTimeout == 0 {
		cfg.Redis.WriteTimeout = def.Redis.WriteTimeout
	}
	if cfg.Redis.DefaultTTL == 0 {
		cfg.Redis.DefaultTTL = def.Redis.DefaultTTL
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = def.Redis.KeyPrefix
	}

	if len(cfg.Sources.Chain) == 0 {
		cfg.Sources.Chain = def.Sources.Chain
	}
	if cfg.Sources.ADMETLab3.URL == "" {
		cfg.Sources.ADMETLab3.URL = def.Sources.ADMETLab3.URL
	}
	if cfg.Sources.ADMETLab3.Timeout == 0 {
		cfg.Sources.ADMETLab3.Timeout = def.Sources.ADMETLab3.Timeout
	}
	if cfg.Sources.ADMETLab2.URL == "" {
		cfg.Sources.ADMETLab2.URL = def.Sources.ADMETLab2.URL
	}
	if cfg.Sources.ADMETLab2.Timeout == 0 {
		cfg.Sources.ADMETLab2.Timeout = def.Sources.ADMETLab2.Timeout
	}
	if cfg.Sources.PubChem.URL == "" {
		cfg.Sources.PubChem.URL = def.Sources.PubChem.URL
	}
	if cfg.Sources.PubChem.Timeout == 0 {
		cfg.Sources.PubChem.Timeout = def.Sources.PubChem.Timeout
	}
	if cfg.Sources.CacheTTL == 0 {
		cfg.Sources.CacheTTL = def.Sources.CacheTTL
	}

	if cfg.RateLimit.RequestsPerMinute == 0 {
		cfg.RateLimit.RequestsPerMinute = def.RateLimit.RequestsPerMinute
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = def.RateLimit.Burst
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = def.Log.Output
	}
}
