package controller

import (
	"errors"

	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/service"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/util"
	"github.com/gin-gonic/gin"
)

// ClassController handles the class CRUD endpoints.
type ClassController struct {
	ClassService *service.ClassService
}

func NewClassController(classService *service.ClassService) *ClassController {
	return &ClassController{ClassService: classService}
}

// GetClasses godoc
// @Summary List classes
// @Tags classes
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Class}
// @Router /api/classes [get]
func (c *ClassController) GetClasses(ctx *gin.Context) {
	util.Success(ctx, c.ClassService.List())
}

// GetClass godoc
// @Summary Class detail with per-student rollups
// @Tags classes
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Class ID"
// @Success 200 {object} util.Response{data=service.ClassDetail}
// @Failure 404 {object} util.Response "class not found"
// @Router /api/classes/{id} [get]
func (c *ClassController) GetClass(ctx *gin.Context) {
	detail, err := c.ClassService.Detail(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, detail)
}

// CreateClass godoc
// @Summary Create a class
// @Description Creates a class with a generated id and, when omitted, a generated join code
// @Tags classes
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   class body model.ClassInput true "Class fields"
// @Success 201 {object} util.Response{data=model.Class}
// @Failure 400 {object} util.Response "missing class name"
// @Failure 409 {object} util.Response "join code already in use"
// @Router /api/classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	var in model.ClassInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cls, err := c.ClassService.Create(ctx.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmptyClassName):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrDuplicateJoinCode):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, cls)
}

// UpdateClass godoc
// @Summary Update a class
// @Tags classes
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Class ID"
// @Param   class body model.ClassUpdate true "Fields to change"
// @Success 200 {object} util.Response{data=model.Class}
// @Failure 404 {object} util.Response "class not found"
// @Failure 409 {object} util.Response "join code already in use"
// @Router /api/classes/{id} [put]
func (c *ClassController) UpdateClass(ctx *gin.Context) {
	var data model.ClassUpdate
	if err := ctx.ShouldBindJSON(&data); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cls, err := c.ClassService.Update(ctx.Request.Context(), ctx.Param("id"), data)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrClassNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrDuplicateJoinCode):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, cls)
}

// DeleteClass godoc
// @Summary Delete a class and its progress rows
// @Tags classes
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Class ID"
// @Success 200 {object} util.Response "deleted, with cascaded row count"
// @Failure 404 {object} util.Response "class not found"
// @Router /api/classes/{id} [delete]
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	cascaded, err := c.ClassService.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrClassNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true, "cascadedProgress": cascaded})
}
