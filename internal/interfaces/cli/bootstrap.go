// Package cli implements the molscreen command tree and the shared service
// bootstrap used by both the CLI and the standalone API server binary.
package cli

import (
	"context"
	"time"

	"github.com/turtacn/MolScreen/internal/application/screening"
	"github.com/turtacn/MolScreen/internal/config"
	"github.com/turtacn/MolScreen/internal/infrastructure/database/redis"
	"github.com/turtacn/MolScreen/internal/infrastructure/monitoring/logging"
	prommetrics "github.com/turtacn/MolScreen/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/MolScreen/internal/infrastructure/prediction"
	ihttp "github.com/turtacn/MolScreen/internal/interfaces/http"
	"github.com/turtacn/MolScreen/internal/interfaces/http/handlers"
)

// App bundles the wired components of a running instance.
type App struct {
	Config  *config.Config
	Logger  logging.Logger
	Metrics *prommetrics.Metrics
	Service screening.Service
	Server  *ihttp.Server

	redisClient *redis.Client
}

// BuildApp wires the full server stack from configuration: logger, metrics,
// optional Redis cache, the prediction chain, the screening service, and the
// HTTP server.
func BuildApp(cfg *config.Config) (*App, error) {
	logCfg := logging.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	}
	if cfg.Log.Output != "" {
		logCfg.OutputPaths = []string{cfg.Log.Output}
	}
	logger, err := logging.NewLogger(logCfg)
	if err != nil {
		return nil, err
	}

	metrics := prommetrics.NewMetrics()

	var (
		cache       redis.Cache
		redisClient *redis.Client
		checkers    map[string]handlers.ReadinessChecker
	)
	if cfg.Redis.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		redisClient, err = redis.NewClient(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		cache = redis.NewCache(redisClient, logger,
			redis.WithPrefix(cfg.Redis.KeyPrefix),
			redis.WithDefaultTTL(cfg.Redis.DefaultTTL))
		checkers = map[string]handlers.ReadinessChecker{"redis": redisClient}
	}

	chain, err := prediction.BuildChain(cfg.Sources, cache, logger, metrics)
	if err != nil {
		closeQuietly(redisClient)
		return nil, err
	}

	service := screening.NewService(chain, logger, metrics)

	router, err := ihttp.NewRouter(ihttp.RouterDeps{
		Config:            cfg,
		Service:           service,
		Logger:            logger,
		Metrics:           metrics,
		ReadinessCheckers: checkers,
	})
	if err != nil {
		closeQuietly(redisClient)
		return nil, err
	}

	return &App{
		Config:      cfg,
		Logger:      logger,
		Metrics:     metrics,
		Service:     service,
		Server:      ihttp.NewServer(cfg.Server, router, logger),
		redisClient: redisClient,
	}, nil
}

// Close releases resources held by the app.
func (a *App) Close() {
	closeQuietly(a.redisClient)
}

func closeQuietly(c *redis.Client) {
	if c != nil {
		_ = c.Close()
	}
}

// BuildOfflineService wires a screening service for one-shot CLI use: no
// cache, no metrics, and a chain honoring the configured source list.
func BuildOfflineService(cfg *config.Config, logger logging.Logger) (screening.Service, error) {
	chain, err := prediction.BuildChain(cfg.Sources, nil, logger, nil)
	if err != nil {
		return nil, err
	}
	return screening.NewService(chain, logger, nil), nil
}
