package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MolScreen/internal/config"
)

// ReadinessChecker is anything whose availability gates readiness.  The
// prediction cache is the only stateful dependency; when it is disabled the
// service is ready as soon as it is up.
type ReadinessChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	checkers map[string]ReadinessChecker
	started  time.Time
}

// NewHealthHandler builds the handler.  checkers maps dependency names to
// their probes; pass nil or an empty map when there are no dependencies.
func NewHealthHandler(checkers map[string]ReadinessChecker) *HealthHandler {
	return &HealthHandler{
		checkers: checkers,
		started:  time.Now(),
	}
}

// Healthz handles GET /healthz: process liveness only.
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": config.Version,
		"uptime":  time.Since(h.started).Round(time.Second).String(),
	})
}

// Readyz handles GET /readyz: verifies each registered dependency with a
// short deadline.  Degraded dependencies are reported per name.
func (h *HealthHandler) Readyz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := gin.H{}
	for name, checker := range h.checkers {
		if err := checker.Ping(ctx); err != nil {
			deps[name] = "unavailable"
			status = http.StatusServiceUnavailable
		} else {
			deps[name] = "ok"
		}
	}

	body := gin.H{"status": "ok"}
	if status != http.StatusOK {
		body["status"] = "degraded"
	}
	if len(deps) > 0 {
		body["dependencies"] = deps
	}
	c.JSON(status, body)
}
