package handlers

import (
	"net/http"

	"eurobot-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the dashboard summary
type StatsHandler struct {
	service service.StatsServiceInterface
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service service.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetStats handles GET /api/stats
// @Summary Dashboard statistics
// @Description Collection totals, matches per serie and the top five teams of the latest ranked serie
// @Tags stats
// @Produce json
// @Success 200 {object} service.StatsResponse "Successfully computed statistics"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
