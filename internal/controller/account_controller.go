package controller

import (
	"github.com/cultivatecmx-maker/cultivatec-school/internal/model"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/service"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/util"
	"github.com/gin-gonic/gin"
)

// AccountController serves the settings page: teacher profile and
// school record, including image uploads.
type AccountController struct {
	AccountService *service.AccountService
}

func NewAccountController(accountService *service.AccountService) *AccountController {
	return &AccountController{AccountService: accountService}
}

// GetProfile godoc
// @Summary Current teacher profile
// @Tags account
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/profile [get]
func (c *AccountController) GetProfile(ctx *gin.Context) {
	util.Success(ctx, c.AccountService.User())
}

// UpdateProfile godoc
// @Summary Update the teacher profile
// @Tags account
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   profile body model.UserUpdate true "Fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/profile [put]
func (c *AccountController) UpdateProfile(ctx *gin.Context) {
	var data model.UserUpdate
	if err := ctx.ShouldBindJSON(&data); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, c.AccountService.UpdateUser(data))
}

// UploadAvatar godoc
// @Summary Upload the teacher avatar
// @Tags account
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "Image file"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "missing or unsupported file"
// @Router /api/profile/avatar [post]
func (c *AccountController) UploadAvatar(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	user, err := c.AccountService.UploadAvatar(ctx.Request.Context(), file)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, user)
}

// GetSchool godoc
// @Summary School record
// @Tags account
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.School}
// @Router /api/school [get]
func (c *AccountController) GetSchool(ctx *gin.Context) {
	util.Success(ctx, c.AccountService.School())
}

// UpdateSchool godoc
// @Summary Update the school record
// @Tags account
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   school body model.SchoolUpdate true "Fields to change"
// @Success 200 {object} util.Response{data=model.School}
// @Router /api/school [put]
func (c *AccountController) UpdateSchool(ctx *gin.Context) {
	var data model.SchoolUpdate
	if err := ctx.ShouldBindJSON(&data); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, c.AccountService.UpdateSchool(data))
}

// UploadLogo godoc
// @Summary Upload the school logo
// @Tags account
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "Image file"
// @Success 200 {object} util.Response{data=model.School}
// @Failure 400 {object} util.Response "missing or unsupported file"
// @Router /api/school/logo [post]
func (c *AccountController) UploadLogo(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	school, err := c.AccountService.UploadLogo(ctx.Request.Context(), file)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, school)
}
