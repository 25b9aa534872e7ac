package handlers

import (
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"station-sizing/internal/api/models"
	apiconfig "station-sizing/internal/config"
	"station-sizing/internal/sizing"
)

// RankHandler ranks the on-disk projects by their projected cumulative
// profit, reusing ComputeSizing rather than a dedicated ranking
// algorithm: the 20-year projection already produces the number that
// matters.
type RankHandler struct {
	projects *ProjectHandler
	tables   apiconfig.Tables
	consts   apiconfig.Constants
}

// NewRankHandler builds a handler over the shared project listing and
// sizing tables.
func NewRankHandler(projects *ProjectHandler, tables apiconfig.Tables, consts apiconfig.Constants) *RankHandler {
	return &RankHandler{projects: projects, tables: tables, consts: consts}
}

// RankProjects handles GET /api/v1/rank. It sizes every on-disk project
// and orders them by final-year cumulative profit, descending.
func (h *RankHandler) RankProjects(c *gin.Context) {
	entries, err := os.ReadDir(h.projects.projectDir)
	if err != nil {
		c.JSON(http.StatusOK, models.RankResponse{Rankings: []models.Ranking{}})
		return
	}

	type scored struct {
		id     string
		profit decimal.Decimal
	}
	var results []scored

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".yaml")

		project, err := apiconfig.Load(h.projects.GetProjectPath(id))
		if err != nil {
			continue
		}
		sizingResult, err := sizing.ComputeSizing(*project, h.tables, h.consts)
		if err != nil || len(sizingResult.Years) == 0 {
			continue
		}
		lastYear := sizingResult.Years[len(sizingResult.Years)-1]
		results = append(results, scored{id: id, profit: lastYear.CumulativeProfit})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].profit.GreaterThan(results[j].profit)
	})

	rankings := make([]models.Ranking, 0, len(results))
	for i, r := range results {
		rankings = append(rankings, models.Ranking{
			Rank:             i + 1,
			ProjectID:        r.id,
			CumulativeProfit: r.profit,
		})
	}

	c.JSON(http.StatusOK, models.RankResponse{Rankings: rankings})
}
