package handlers

import (
	"errors"
	"net/http"

	apperrors "eurobot-backend/internal/errors"
	"eurobot-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SerieHandler handles HTTP requests for series
type SerieHandler struct {
	service service.SerieServiceInterface
}

// NewSerieHandler creates a new serie handler
func NewSerieHandler(service service.SerieServiceInterface) *SerieHandler {
	return &SerieHandler{service: service}
}

// ListSeries handles GET /api/series
// @Summary List series
// @Description Get every serie ordered by serie number
// @Tags series
// @Produce json
// @Success 200 {array} models.Serie "Successfully retrieved series"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /series [get]
func (h *SerieHandler) ListSeries(c *gin.Context) {
	series, err := h.service.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, series)
}

// GetSerie handles GET /api/series/:id
// @Summary Get serie by ID
// @Tags series
// @Produce json
// @Param id path string true "Serie ID (UUID)"
// @Success 200 {object} models.Serie "Successfully retrieved serie"
// @Failure 400 {object} ErrorResponse "Invalid serie ID"
// @Failure 404 {object} ErrorResponse "Serie not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /series/{id} [get]
func (h *SerieHandler) GetSerie(c *gin.Context) {
	id, ok := serieID(c)
	if !ok {
		return
	}

	serie, err := h.service.GetByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, serie)
}

// GetSerieByNumber handles GET /api/series/number/:number
// @Summary Get serie by number
// @Tags series
// @Produce json
// @Param number path int true "Serie number"
// @Success 200 {object} models.Serie "Successfully retrieved serie"
// @Failure 400 {object} ErrorResponse "Invalid serie number"
// @Failure 404 {object} ErrorResponse "Serie not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /series/number/{number} [get]
func (h *SerieHandler) GetSerieByNumber(c *gin.Context) {
	number, err := positiveIntParam(c, "number")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	serie, err := h.service.GetByNumber(number)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, serie)
}

// CreateSerie handles POST /api/series
// @Summary Create a serie
// @Description Create a new serie. Status defaults to upcoming.
// @Tags series
// @Accept json
// @Produce json
// @Param serie body service.CreateSerieRequest true "Serie data"
// @Success 201 {object} models.Serie "Successfully created serie"
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Missing or invalid admin token"
// @Failure 409 {object} ErrorResponse "Serie number already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /series [post]
func (h *SerieHandler) CreateSerie(c *gin.Context) {
	var req service.CreateSerieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	serie, err := h.service.Create(&req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serie)
}

// UpdateSerie handles PUT /api/series/:id
// @Summary Update a serie
// @Description Apply a partial update. The merged record must pass the creation rules.
// @Tags series
// @Accept json
// @Produce json
// @Param id path string true "Serie ID (UUID)"
// @Param serie body service.UpdateSerieRequest true "Fields to change"
// @Success 200 {object} models.Serie "Successfully updated serie"
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} ErrorResponse "Missing or invalid admin token"
// @Failure 404 {object} ErrorResponse "Serie not found"
// @Failure 409 {object} ErrorResponse "Serie number already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /series/{id} [put]
func (h *SerieHandler) UpdateSerie(c *gin.Context) {
	id, ok := serieID(c)
	if !ok {
		return
	}

	var req service.UpdateSerieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	serie, err := h.service.Update(id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, serie)
}

// DeleteSerie handles DELETE /api/series/:id
// @Summary Delete a serie
// @Tags series
// @Produce json
// @Param id path string true "Serie ID (UUID)"
// @Success 200 {object} map[string]string "Serie deleted"
// @Failure 400 {object} ErrorResponse "Invalid serie ID"
// @Failure 401 {object} ErrorResponse "Missing or invalid admin token"
// @Failure 404 {object} ErrorResponse "Serie not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /series/{id} [delete]
func (h *SerieHandler) DeleteSerie(c *gin.Context) {
	id, ok := serieID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Serie deleted successfully"})
}

// GetSerieStats handles GET /api/series/:id/stats
// @Summary Get serie statistics
// @Description Match count, ranked team count, total and average combined score for one serie
// @Tags series
// @Produce json
// @Param id path string true "Serie ID (UUID)"
// @Success 200 {object} service.SerieStatsResponse "Successfully computed statistics"
// @Failure 400 {object} ErrorResponse "Invalid serie ID"
// @Failure 404 {object} ErrorResponse "Serie not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /series/{id}/stats [get]
func (h *SerieHandler) GetSerieStats(c *gin.Context) {
	id, ok := serieID(c)
	if !ok {
		return
	}

	stats, err := h.service.GetStats(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func serieID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid serie ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *SerieHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrSerieNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrSerieExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
