package controller

import (
	"github.com/cultivatecmx-maker/cultivatec-school/internal/service"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/util"
	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// GetOverview godoc
// @Summary Dashboard overview
// @Description School-wide counters plus every chart series, cached briefly when Redis is enabled
// @Tags dashboard
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Overview}
// @Router /api/dashboard [get]
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	util.Success(ctx, c.DashboardService.Overview(ctx.Request.Context()))
}

// GetModules godoc
// @Summary Per-module rollups over the fixed catalog
// @Tags dashboard
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ModuleProgress}
// @Router /api/modules [get]
func (c *DashboardController) GetModules(ctx *gin.Context) {
	util.Success(ctx, c.DashboardService.Modules())
}
