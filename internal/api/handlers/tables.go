package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"station-sizing/internal/api/models"
	"station-sizing/internal/config"
	"station-sizing/internal/model"
)

// TableHandler serves the standard-module catalogues (transformer sizes,
// ESS models) that back the sizing selection.
type TableHandler struct {
	tables config.Tables
}

// NewTableHandler builds a handler over the given standard module tables.
func NewTableHandler(tables config.Tables) *TableHandler {
	return &TableHandler{tables: tables}
}

// ListCountries handles GET /api/v1/countries.
func (h *TableHandler) ListCountries(c *gin.Context) {
	log.Printf("TableHandler: ListCountries called")
	countries := []models.CountryInfo{}
	for _, code := range []string{model.CountryCN, model.CountryJP, model.CountryUK} {
		transformers, err := h.tables.TransformersFor(code)
		if err != nil {
			continue
		}
		essModels, err := h.tables.EssModelsFor(code)
		if err != nil {
			continue
		}
		countries = append(countries, models.CountryInfo{
			Code:               code,
			TransformerOptions: len(transformers),
			EssModelOptions:    len(essModels),
		})
	}
	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

// GetTransformerTable handles GET /api/v1/tables/:country/transformers.
func (h *TableHandler) GetTransformerTable(c *gin.Context) {
	country := c.Param("country")
	sizes, err := h.tables.TransformersFor(country)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "UNKNOWN_COUNTRY", Message: err.Error()},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"country": country, "transformers_kva": sizes})
}

// GetEssModelTable handles GET /api/v1/tables/:country/ess-models.
func (h *TableHandler) GetEssModelTable(c *gin.Context) {
	country := c.Param("country")
	essModels, err := h.tables.EssModelsFor(country)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "UNKNOWN_COUNTRY", Message: err.Error()},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"country": country, "ess_models": essModels})
}
