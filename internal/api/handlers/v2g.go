package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"station-sizing/internal/api/models"
	"station-sizing/internal/config"
	"station-sizing/internal/sizing"
)

// V2GHandler handles the vehicle-to-grid arbitrage computation endpoints.
type V2GHandler struct {
	consts   config.Constants
	projects *ProjectHandler
}

// NewV2GHandler builds a handler over the process-wide coefficients and the
// on-disk project listing (for the project-ID-bound endpoint).
func NewV2GHandler(consts config.Constants, projects *ProjectHandler) *V2GHandler {
	return &V2GHandler{consts: consts, projects: projects}
}

// RunV2G handles POST /api/v1/v2g.
func (h *V2GHandler) RunV2G(c *gin.Context) {
	var req models.V2GRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	result, err := sizing.ComputeV2G(req.ToProject(), h.consts)
	if err != nil {
		writeSizingError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.FromModelV2GResult(result))
}

// RunV2GForProject handles GET /api/v1/projects/:id/v2g: computeV2GForProject,
// with inputs loaded from the on-disk project file named by :id instead of a
// request body.
func (h *V2GHandler) RunV2GForProject(c *gin.Context) {
	id := c.Param("id")
	project, err := config.Load(h.projects.GetProjectPath(id))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "UNKNOWN_PROJECT", Message: err.Error()},
		})
		return
	}

	result, err := sizing.ComputeV2GForProject(*project, h.consts)
	if err != nil {
		writeSizingError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.FromModelV2GResult(result))
}

// RunV2GCompare handles POST /api/v1/v2g/compare: runs computeV2G once per
// named variation of a shared base station/fleet, for side-by-side sizing.
func (h *V2GHandler) RunV2GCompare(c *gin.Context) {
	var req models.V2GCompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	results := make([]models.V2GCompareResult, 0, len(req.Variations))
	for _, v := range req.Variations {
		result, err := sizing.ComputeV2G(req.VariantProject(v), h.consts)
		if err != nil {
			writeSizingError(c, err)
			return
		}
		results = append(results, models.V2GCompareResult{
			Label:  v.Label,
			Result: models.FromModelV2GResult(result),
		})
	}

	c.JSON(http.StatusOK, models.V2GCompareResponse{Results: results})
}
