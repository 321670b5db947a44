package handlers

import (
	"errors"
	"net/http"

	apperrors "eurobot-backend/internal/errors"
	"eurobot-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for teams
type TeamHandler struct {
	service service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(service service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{service: service}
}

// GetAllTeams handles GET /api/teams
// @Summary List teams
// @Description Get every team ordered by name
// @Tags teams
// @Produce json
// @Success 200 {array} models.Team "Successfully retrieved teams"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [get]
func (h *TeamHandler) GetAllTeams(c *gin.Context) {
	teams, err := h.service.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /api/teams/:id
// @Summary Get team by ID
// @Description Get a specific team by its UUID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} models.Team "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	team, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetTeamMatches handles GET /api/teams/:id/matches where :id is the team name
// @Summary Get matches of a team
// @Description Get every match in which the named team played, ordered by serie then match number
// @Tags teams
// @Produce json
// @Param id path string true "Team name (URL encoded)"
// @Success 200 {array} models.Match "Successfully retrieved matches"
// @Failure 400 {object} ErrorResponse "Invalid team name"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id}/matches [get]
func (h *TeamHandler) GetTeamMatches(c *gin.Context) {
	// the router unescapes path values
	name := c.Param("id")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team name"})
		return
	}

	matches, err := h.service.GetMatches(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, matches)
}
