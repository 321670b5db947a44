package handlers

import (
	"net/http"

	"eurobot-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RankingHandler handles HTTP requests for rankings
type RankingHandler struct {
	service service.RankingServiceInterface
}

// NewRankingHandler creates a new ranking handler
func NewRankingHandler(service service.RankingServiceInterface) *RankingHandler {
	return &RankingHandler{service: service}
}

// ListRankings handles GET /api/rankings
// @Summary List rankings
// @Description Get rankings ordered by serie then position, optionally filtered by serie
// @Tags rankings
// @Produce json
// @Param serie query int false "Serie number"
// @Param limit query int false "Maximum number of rankings"
// @Success 200 {array} models.Ranking "Successfully retrieved rankings"
// @Failure 400 {object} ErrorResponse "Invalid query parameter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /rankings [get]
func (h *RankingHandler) ListRankings(c *gin.Context) {
	serie, err := optionalSerie(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	limit, err := optionalLimit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rankings, err := h.service.List(serie, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rankings)
}

// GetRankingsBySerie handles GET /api/rankings/serie/:serie
// @Summary Get the ranking table of a serie
// @Description Get the rankings of one serie ordered by position
// @Tags rankings
// @Produce json
// @Param serie path int true "Serie number"
// @Success 200 {array} models.Ranking "Successfully retrieved rankings"
// @Failure 400 {object} ErrorResponse "Invalid serie"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /rankings/serie/{serie} [get]
func (h *RankingHandler) GetRankingsBySerie(c *gin.Context) {
	serie, err := positiveIntParam(c, "serie")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rankings, err := h.service.GetBySerie(serie)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rankings)
}
