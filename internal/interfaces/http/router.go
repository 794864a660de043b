// Package http assembles the gin router and the HTTP server lifecycle.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/turtacn/MolScreen/internal/application/screening"
	"github.com/turtacn/MolScreen/internal/config"
	"github.com/turtacn/MolScreen/internal/infrastructure/monitoring/logging"
	prommetrics "github.com/turtacn/MolScreen/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/MolScreen/internal/interfaces/http/handlers"
	"github.com/turtacn/MolScreen/internal/interfaces/http/middleware"
	"github.com/turtacn/MolScreen/internal/interfaces/http/web"
)

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	Config  *config.Config
	Service screening.Service
	Logger  logging.Logger
	Metrics *prommetrics.Metrics

	// ReadinessCheckers gates /readyz; keyed by dependency name.  May be nil.
	ReadinessCheckers map[string]handlers.ReadinessChecker
}

// NewRouter builds the gin engine with the full middleware stack and all
// routes: the web form, the JSON API, health probes, and metrics.
func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	gin.SetMode(ginMode(deps.Config.Server.Mode))

	engine := gin.New()
	engine.MaxMultipartMemory = deps.Config.Server.MaxBodySize

	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(),
	)
	if deps.Metrics != nil {
		engine.Use(middleware.Metrics(deps.Metrics))
	}

	screeningHandler := handlers.NewScreeningHandler(deps.Service, deps.Logger)
	healthHandler := handlers.NewHealthHandler(deps.ReadinessCheckers)
	webHandler, err := web.NewHandler(deps.Service, deps.Logger)
	if err != nil {
		return nil, err
	}

	// Probes and metrics stay outside the rate limit.
	engine.GET("/healthz", healthHandler.Healthz)
	engine.GET("/readyz", healthHandler.Readyz)
	if deps.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
			deps.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	var limited gin.IRoutes = engine
	if deps.Config.RateLimit.Enabled {
		group := engine.Group("/")
		group.Use(middleware.RateLimit(
			deps.Config.RateLimit.RequestsPerMinute,
			deps.Config.RateLimit.Burst))
		limited = group
	}

	limited.GET("/", webHandler.Index)
	limited.POST("/", webHandler.Index)

	limited.POST("/api/v1/screenings", screeningHandler.Create)
	limited.GET("/api/v1/examples", screeningHandler.Examples)
	limited.GET("/api/v1/sources", screeningHandler.Sources)

	return engine, nil
}

func ginMode(mode string) string {
	switch mode {
	case "debug":
		return gin.DebugMode
	case "test":
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}
