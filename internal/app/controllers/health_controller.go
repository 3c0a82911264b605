package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentroster/internal/app/models/dto"
	"github.com/yigit/studentroster/internal/db"
	"github.com/yigit/studentroster/internal/pkg/logger"
)

// HealthController reports whether the database can be reached
type HealthController struct {
	db db.Gateway
}

// NewHealthController creates a new HealthController
func NewHealthController(gateway db.Gateway) *HealthController {
	return &HealthController{db: gateway}
}

// Health godoc
// @Summary Service health
// @Description Reports healthy when a database connection can be acquired and used
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Database connected"
// @Failure 500 {object} dto.HealthResponse "Database disconnected"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	if err := c.db.Ping(ctx.Request.Context()); err != nil {
		logger.Warn().Err(err).Msg("Health check failed")
		ctx.JSON(http.StatusInternalServerError, dto.HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}
