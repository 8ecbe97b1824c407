package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/service"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/util"
	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

func attachmentName(base, ext string) string {
	return fmt.Sprintf("%s-%s.%s", base, time.Now().Format("2006-01-02"), ext)
}

// StudentsCSV godoc
// @Summary Download the student rollups as CSV
// @Tags reports
// @Produce  text/csv
// @Security ApiKeyAuth
// @Success 200 {string} string "CSV file"
// @Router /api/reports/students.csv [get]
func (c *ReportController) StudentsCSV(ctx *gin.Context) {
	data, err := c.ReportService.StudentsCSV()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", "attachment; filename="+attachmentName("estudiantes", "csv"))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// Workbook godoc
// @Summary Download the full report workbook
// @Tags reports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Success 200 {string} string "XLSX file"
// @Router /api/reports/workbook.xlsx [get]
func (c *ReportController) Workbook(ctx *gin.Context) {
	data, err := c.ReportService.WorkbookXLSX()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", "attachment; filename="+attachmentName("reporte", "xlsx"))
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// Summary godoc
// @Summary Plain-text progress digest
// @Tags reports
// @Produce  plain
// @Security ApiKeyAuth
// @Success 200 {string} string "summary text"
// @Router /api/reports/summary [get]
func (c *ReportController) Summary(ctx *gin.Context) {
	ctx.String(http.StatusOK, c.ReportService.SummaryText())
}
