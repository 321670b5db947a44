package handlers

import (
	"context"
	"net/http"

	"eurobot-backend/internal/ingest"
	"eurobot-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Reseeder runs a full ingestion
type Reseeder interface {
	Run(ctx context.Context) (*ingest.Report, error)
}

// AdminHandler handles administrative operations
type AdminHandler struct {
	reseeder Reseeder
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(reseeder Reseeder) *AdminHandler {
	return &AdminHandler{reseeder: reseeder}
}

// ReseedResponse is returned by the reseed endpoint
type ReseedResponse struct {
	Message string         `json:"message" example:"Database reseeded successfully"`
	Report  *ingest.Report `json:"report"`
}

// Reseed handles POST /api/reseed
// @Summary Reseed the database
// @Description Re-read the CSV exports and replace teams, matches, rankings and series. Runs synchronously.
// @Tags admin
// @Produce json
// @Success 200 {object} ReseedResponse "Reseed completed"
// @Failure 401 {object} ErrorResponse "Missing or invalid admin token"
// @Failure 500 {object} map[string]interface{} "Reseed failed"
// @Security BearerAuth
// @Router /reseed [post]
func (h *AdminHandler) Reseed(c *gin.Context) {
	ctx := c.Request.Context()
	report, err := h.reseeder.Run(ctx)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Error("Reseed request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "report": report})
		return
	}

	c.JSON(http.StatusOK, ReseedResponse{
		Message: "Database reseeded successfully",
		Report:  report,
	})
}
