package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MolScreen/internal/application/screening"
	"github.com/turtacn/MolScreen/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolScreen/pkg/errors"
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// ScreeningHandler serves the JSON screening API.
type ScreeningHandler struct {
	service screening.Service
	logger  logging.Logger
}

// NewScreeningHandler builds the handler.
func NewScreeningHandler(svc screening.Service, log logging.Logger) *ScreeningHandler {
	return &ScreeningHandler{
		service: svc,
		logger:  log.Named("screening_handler"),
	}
}

// Create handles POST /api/v1/screenings.
func (h *ScreeningHandler) Create(c *gin.Context) {
	var req mtypes.ScreeningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, errors.InvalidParam("request body must be JSON with a \"smiles\" field").WithCause(err))
		return
	}

	report, err := h.service.Screen(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// Examples handles GET /api/v1/examples.
func (h *ScreeningHandler) Examples(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"examples": h.service.Examples()})
}

// Sources handles GET /api/v1/sources.
func (h *ScreeningHandler) Sources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sources": h.service.Sources()})
}
