package controller

import (
	"errors"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/service"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/util"
	"github.com/gin-gonic/gin"
)

// ProgressController handles the per-student module progress
// endpoints. Rows are addressed by the (studentId, module) pair.
type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// GetProgress godoc
// @Summary List progress rows
// @Tags progress
// @Produce  json
// @Security ApiKeyAuth
// @Param   classId query string false "Filter by class"
// @Param   studentId query string false "Filter by student"
// @Success 200 {object} util.Response{data=[]model.StudentProgress}
// @Router /api/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	util.Success(ctx, c.ProgressService.List(ctx.Query("classId"), ctx.Query("studentId")))
}

// GetStudents godoc
// @Summary Per-student rollups with headline counters
// @Tags progress
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.StudentsOverview}
// @Router /api/students [get]
func (c *ProgressController) GetStudents(ctx *gin.Context) {
	util.Success(ctx, c.ProgressService.Students())
}

// AddProgress godoc
// @Summary Record a progress row
// @Tags progress
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   progress body model.StudentProgress true "Progress row"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response "unknown module or score out of range"
// @Failure 409 {object} util.Response "row already exists for this student and module"
// @Router /api/progress [post]
func (c *ProgressController) AddProgress(ctx *gin.Context) {
	var row model.StudentProgress
	if err := ctx.ShouldBindJSON(&row); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProgressService.Add(ctx.Request.Context(), row); err != nil {
		switch {
		case errors.Is(err, util.ErrUnknownModule), errors.Is(err, util.ErrInvalidScore):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrDuplicateProgress):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, row)
}

// UpdateProgress godoc
// @Summary Update a progress row
// @Description Merges partial fields; the score is clamped to [0,100] and lastUpdated is restamped
// @Tags progress
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   studentId path string true "Student ID"
// @Param   module path string true "Module name"
// @Param   progress body model.ProgressUpdate true "Fields to change"
// @Success 200 {object} util.Response{data=model.StudentProgress}
// @Failure 404 {object} util.Response "no row for this student and module"
// @Router /api/progress/{studentId}/{module} [put]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	var data model.ProgressUpdate
	if err := ctx.ShouldBindJSON(&data); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	row, err := c.ProgressService.Update(ctx.Request.Context(), ctx.Param("studentId"), ctx.Param("module"), data)
	if err != nil {
		if errors.Is(err, util.ErrProgressNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, row)
}

// DeleteProgress godoc
// @Summary Delete a progress row
// @Tags progress
// @Produce  json
// @Security ApiKeyAuth
// @Param   studentId path string true "Student ID"
// @Param   module path string true "Module name"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "no row for this student and module"
// @Router /api/progress/{studentId}/{module} [delete]
func (c *ProgressController) DeleteProgress(ctx *gin.Context) {
	err := c.ProgressService.Delete(ctx.Request.Context(), ctx.Param("studentId"), ctx.Param("module"))
	if err != nil {
		if errors.Is(err, util.ErrProgressNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
