package handlers

import (
	"errors"
	"net/http"

	apperrors "eurobot-backend/internal/errors"
	"eurobot-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MatchHandler handles HTTP requests for matches
type MatchHandler struct {
	service service.MatchServiceInterface
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(service service.MatchServiceInterface) *MatchHandler {
	return &MatchHandler{service: service}
}

// ListMatches handles GET /api/matches
// @Summary List matches
// @Description Get matches ordered by serie then match number, optionally filtered by serie
// @Tags matches
// @Produce json
// @Param serie query int false "Serie number"
// @Param limit query int false "Maximum number of matches"
// @Success 200 {array} models.Match "Successfully retrieved matches"
// @Failure 400 {object} ErrorResponse "Invalid query parameter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
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

	matches, err := h.service.List(serie, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// GetMatch handles GET /api/matches/:id
// @Summary Get match by ID
// @Description Get a specific match by its UUID
// @Tags matches
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} models.Match "Successfully retrieved match"
// @Failure 400 {object} ErrorResponse "Invalid match ID"
// @Failure 404 {object} ErrorResponse "Match not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match ID"})
		return
	}

	match, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, match)
}
