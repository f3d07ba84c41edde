package handler

import (
	"github.com/gin-gonic/gin"

	"billkit/internal/service"
)

// StatsHandler handles dashboard statistics endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats handles GET /api/v1/stats
// @Summary Get dashboard statistics
// @Description Get document counts by category plus sales, tax, and receipts aggregates
// @Tags stats
// @Produce json
// @Success 200 {object} Response{data=domain.DocumentStats} "Aggregate statistics"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, stats)
}
