package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"apichat/internal/util"
)

// HealthHandler handles health check requests
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check handles health check requests
// @Summary Health check
// @Description Healthcheck endpoint
// @Tags Health
// @Produce json
// @Success 200 {string} string "API is running"
// @Router /api/healthcheck [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, util.HealthMessage)
}
