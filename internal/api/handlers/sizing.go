package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"station-sizing/internal/api/models"
	"station-sizing/internal/config"
	"station-sizing/internal/sizing"
	"station-sizing/internal/sizingerr"
)

// SizingHandler handles the sizing and load-curve computation endpoints.
type SizingHandler struct {
	tables config.Tables
	consts config.Constants
}

// NewSizingHandler builds a handler injected with the process-wide
// standard module tables and coefficients (no global mutable state, per
// the core's design note).
func NewSizingHandler(tables config.Tables, consts config.Constants) *SizingHandler {
	return &SizingHandler{tables: tables, consts: consts}
}

// RunSizing handles POST /api/v1/sizing.
func (h *SizingHandler) RunSizing(c *gin.Context) {
	var req models.SizingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	result, err := sizing.ComputeSizing(req.ToProject(), h.tables, h.consts)
	if err != nil {
		writeSizingError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.FromModelSizingResult(result))
}

// RunLoadCurve handles POST /api/v1/load-curve.
func (h *SizingHandler) RunLoadCurve(c *gin.Context) {
	var req models.SizingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	result, err := sizing.ComputeLoadCurve(req.ToProject(), h.tables, h.consts)
	if err != nil {
		writeSizingError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.FromModelLoadCurveResult(result))
}

// writeSizingError maps the sizingerr taxonomy to HTTP status codes:
// missing input and malformed time strings are 400, anything else is 500.
func writeSizingError(c *gin.Context, err error) {
	se, ok := sizingerr.As(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "UNEXPECTED", Message: err.Error()},
		})
		return
	}

	status := http.StatusInternalServerError
	switch se.Kind {
	case sizingerr.MissingInput, sizingerr.MalformedTimeString:
		status = http.StatusBadRequest
	}

	details := map[string]string{}
	if se.Field != "" {
		details["field"] = se.Field
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{Code: string(se.Kind), Message: se.Message, Details: details},
	})
}
