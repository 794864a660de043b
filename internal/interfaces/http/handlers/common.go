// Package handlers implements the gin HTTP handlers for the screening API.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/turtacn/MolScreen/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolScreen/pkg/errors"
	mtypes "github.com/turtacn/MolScreen/pkg/types/molecule"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error mtypes.ErrorDetail `json:"error"`
}

// respondError translates any error into the JSON error envelope with the
// HTTP status derived from its error code.  Non-AppError values map to a
// generic internal error without leaking internals.
func respondError(c *gin.Context, log logging.Logger, err error) {
	code := errors.GetCode(err)
	status := errors.HTTPStatusForCode(code)

	message := errors.DefaultMessageForCode(code)
	if appErr, ok := err.(*errors.AppError); ok {
		message = appErr.Message
		if appErr.Detail != "" && errors.IsClientError(code) {
			message = message + ": " + appErr.Detail
		}
	}

	if errors.IsServerError(code) {
		log.Error("request failed", logging.String("code", code.String()), logging.Err(err))
	}

	c.AbortWithStatusJSON(status, errorResponse{
		Error: mtypes.ErrorDetail{Code: code.String(), Message: message},
	})
}
