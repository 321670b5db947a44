package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger checks connectivity of a backing service
type Pinger interface {
	Ping() error
}

// PingFunc adapts a function to Pinger
type PingFunc func() error

// Ping calls f
func (f PingFunc) Ping() error {
	return f()
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db      Pinger
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		version: version,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status" example:"OK"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "OK",
		Timestamp: time.Now(),
		Version:   h.version,
		Services:  make(map[string]string),
	}

	if err := h.db.Ping(); err != nil {
		response.Status = "unhealthy"
		response.Services["database"] = "error: " + err.Error()
	} else {
		response.Services["database"] = "healthy"
	}

	statusCode := http.StatusOK
	if response.Status != "OK" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
