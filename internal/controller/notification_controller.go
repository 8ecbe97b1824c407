package controller

import (
	"github.com/cultivatecmx-maker/cultivatec-school/internal/notify"
	"github.com/cultivatecmx-maker/cultivatec-school/internal/util"
	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Center *notify.Center
}

func NewNotificationController(center *notify.Center) *NotificationController {
	return &NotificationController{Center: center}
}

// GetNotifications godoc
// @Summary Pending toasts, oldest first
// @Tags notifications
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]notify.Toast}
// @Router /api/notifications [get]
func (c *NotificationController) GetNotifications(ctx *gin.Context) {
	util.Success(ctx, c.Center.List())
}

// DismissNotification godoc
// @Summary Dismiss a toast
// @Description Removes the toast and cancels its expiry timer; unknown ids are a no-op
// @Tags notifications
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Toast ID"
// @Success 200 {object} util.Response
// @Router /api/notifications/{id} [delete]
func (c *NotificationController) DismissNotification(ctx *gin.Context) {
	c.Center.Dismiss(ctx.Param("id"))
	util.Success(ctx, gin.H{"dismissed": true})
}
