package controller

import (
	"time"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/util"
	"github.com/gin-gonic/gin"
)

type HealthController struct {
	startedAt time.Time
	version   string
}

func NewHealthController(version string) *HealthController {
	return &HealthController{startedAt: time.Now(), version: version}
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce  json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status":  "ok",
		"version": c.version,
		"uptime":  time.Since(c.startedAt).Round(time.Second).String(),
	})
}
