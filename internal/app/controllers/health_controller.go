package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/technova/placement/internal/app/models/dto"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves liveness and readiness checks
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new HealthController. db may be nil.
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Ping is a liveness probe
func (c *HealthController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Health reports database reachability
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse "Healthy"
// @Failure 503 {object} dto.ErrorResponse "Database unreachable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	if c.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := c.db.Ping(pingCtx); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database unreachable")
			ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
}
